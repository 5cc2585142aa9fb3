// Package commands provides the command-line interface for the gokuz tool.
//
// It implements commands for:
//   - file encryption and decryption
//   - single block encryption and decryption
//   - hex helper tools
//   - the HTTP service
//   - the built-in self test
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gokuz/internal/config"
)

// preRun returns a PreRunE handler that resolves positional args into cfg.Files
// and validates the configuration.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			cfg.Files = []string{"."}
		} else {
			cfg.Files = args
		}

		return cfg.Validate()
	}
}

// validate returns a PreRunE handler that only validates the configuration.
func validate(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		return cfg.Validate()
	}
}

// run wraps a RunE handler so that --show prints the configuration instead.
func run(cfg *config.Config, fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if cfg.Show {
			return show(cmd.OutOrStdout(), cfg)
		}

		return fn(cmd, args)
	}
}
