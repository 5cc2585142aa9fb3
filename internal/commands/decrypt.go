package commands

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/idelchi/gokuz/internal/config"
	"github.com/idelchi/gokuz/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(fs afero.Fs, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] [paths...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt files produced by encrypt",
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = true

			return preRun(cfg)(cmd, args)
		},
		RunE: run(cfg, func(cmd *cobra.Command, _ []string) error {
			return logic.Run(fs, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		}),
	}

	fileFlags(cmd)

	return cmd
}
