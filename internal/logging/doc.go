// Package logging provides structured logging for the verseek CLI using slog.
//
// The package supports both text and JSON output formats, configurable log
// levels, and helpers for testing. All loggers are based on the standard
// library's [log/slog] package.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("seeking", "path", path, "version", version)
//
// # Verbosity
//
// CLI verbosity flags map to levels via [LevelFromVerbosity]: 0 is Warn,
// 1 is Info, 2 is Debug, and 3 or more enables Trace.
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
package logging
