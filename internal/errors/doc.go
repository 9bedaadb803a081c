// Package errors provides error handling conventions for the verseek CLI.
//
// This package defines an ExitError type for CLI exit code handling, exit
// code constants following standard Unix conventions, and aliases for the
// cockroachdb/errors primitives so the rest of the tree imports one errors
// package.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (bad arguments, unknown version, etc.)
//   - ExitSystem (2): System-related error (I/O, network, external tool failure)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports error unwrapping via [errors.Unwrap] and [errors.As]:
//
//	err := verrors.NewUserError(err, "run 'verseek <path> --list' to see versions")
//	var exitErr *verrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
