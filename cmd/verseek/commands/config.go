package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/turnkeylinux/verseek/internal/config"
	"github.com/turnkeylinux/verseek/internal/errors"
	"github.com/turnkeylinux/verseek/internal/paths"
	"github.com/turnkeylinux/verseek/pkg/fileutil"
)

// writeFlag holds the value of the --write flag.
var writeFlag bool

func init() {
	configCmd.Flags().BoolVar(&writeFlag, "write", false,
		"write the default configuration to the config file")
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or scaffold verseek configuration",
	Long: `Show the effective configuration after defaults, the config file and
VERSEEK_* environment variables are merged.

With --write, writes the default configuration to the config file so it can
be edited. Existing files are left untouched.`,
	Example: `  # Show the effective configuration
  verseek config

  # Create the default config file
  verseek config --write`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if configLoadErr != nil {
		return errors.NewUserError(configLoadErr, "")
	}

	if writeFlag {
		return writeDefaultConfig(cmd)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "rendering configuration")
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}

func writeDefaultConfig(cmd *cobra.Command) error {
	path := paths.ConfigFile()
	if _, err := os.Stat(path); err == nil {
		return errors.NewUserError(errors.Newf("config file already exists at %q", path), "")
	}

	if err := paths.EnsureDir(paths.ConfigDir(), 0); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	if err := fileutil.AtomicWriteYAML(path, config.Default()); err != nil {
		return errors.Wrap(err, "writing config file")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
