// Package commands implements the CLI commands for verseek.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/turnkeylinux/verseek/cmd"
	"github.com/turnkeylinux/verseek/internal/config"
	"github.com/turnkeylinux/verseek/internal/errors"
	"github.com/turnkeylinux/verseek/internal/logging"
	"github.com/turnkeylinux/verseek/internal/seek"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// listFlag holds the value of the -l/--list flag.
var listFlag bool

// interactiveFlag holds the value of the -i/--interactive flag.
var interactiveFlag bool

// cfg is the effective configuration, loaded by initConfig.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")

	rootCmd.Flags().BoolVarP(&listFlag, "list", "l", false,
		"list the versions recoverable at <path>, newest first")
	rootCmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false,
		"pick the version to seek to interactively")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("verseek version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "verseek <path> [version]",
	Short: "Seek to any version of a source package",
	Long: `verseek switches a source package between the versions recoverable
from whatever storage backs it: a git repository holding many packages, a
single-package auto-versioned repository, a Sumo overlay arena, or a plain
directory (which only ever holds its latest version).

Seeking checks out the chosen version in place and remembers where the
repository was. Running verseek on the path with no version returns it to
that remembered state.`,
	Example: `  # List recoverable versions, newest first
  verseek path/to/package --list

  # Seek to a version
  verseek path/to/package 1.2

  # Return to the pre-seek state
  verseek path/to/package`,
	Args: cobra.RangeArgs(1, 2),
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(cmd)
	},
	RunE: runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	path := args[0]

	// Reject non-directories before any backend probing.
	info, err := os.Stat(path)
	if err != nil {
		return errors.NewUserError(errors.Newf("no such directory %q", path), "")
	}
	if !info.IsDir() {
		return errors.NewUserError(errors.Newf("not a directory %q", path), "")
	}

	if configLoadErr != nil {
		return errors.NewUserError(configLoadErr, "")
	}

	backend, err := seek.New(path, seek.WithConfig(cfg))
	if err != nil {
		return exitError(err)
	}

	switch {
	case listFlag:
		if len(args) > 1 || interactiveFlag {
			return errors.NewUserError(errors.New("--list takes no version argument"), "")
		}
		entries, err := backend.ListVersions()
		if err != nil {
			return exitError(err)
		}
		for _, e := range entries {
			fmt.Fprintln(cmd.OutOrStdout(), e.Version)
		}
		return nil

	case interactiveFlag:
		if len(args) > 1 {
			return errors.NewUserError(errors.New("--interactive takes no version argument"), "")
		}
		return exitError(runInteractive(cmd.OutOrStdout(), backend))

	case len(args) == 2:
		return exitError(backend.Seek(args[1]))

	default:
		return exitError(backend.Restore())
	}
}

// exitError attaches exit semantics to backend failures: bad input stays a
// user error, failing tools and missing connectivity are system errors.
func exitError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	switch {
	case errors.Is(err, seek.ErrVersionNotFound):
		return errors.NewUserError(err, "Run with --list to see the available versions")
	case errors.Is(err, seek.ErrUnsupportedSeek):
		return errors.NewUserError(err, "Plain directories only hold their latest version")
	case errors.Is(err, seek.ErrNotAPackage):
		return errors.NewUserError(err, "Expected a debian/control file in the package directory")
	case errors.Is(err, seek.ErrNetworkUnavailable):
		return errors.NewSystemError(err, "Check connectivity and retry")
	case errors.Is(err, seek.ErrCheckoutFailed):
		return errors.NewSystemError(err, "")
	default:
		return errors.NewUserError(err, "")
	}
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("VERSEEK_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		handler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
