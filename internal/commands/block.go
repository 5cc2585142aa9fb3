package commands

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/idelchi/gokuz/internal/config"
	"github.com/idelchi/gokuz/internal/logic"
)

// NewBlockCommand creates the block command with its encrypt and decrypt subcommands.
func NewBlockCommand(fs afero.Fs, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block command [flags] [hex...]",
		Short: "Encrypt or decrypt single 16-byte blocks",
	}

	cmd.PersistentFlags().String("from", "", "JSONC file with an array of additional hex blocks")

	newSub := func(use, short string, decrypt bool) *cobra.Command {
		return &cobra.Command{
			Use:   use + " [flags] [hex...]",
			Short: short,
			Args:  cobra.ArbitraryArgs,
			PreRunE: func(cmd *cobra.Command, args []string) error {
				cfg.Decrypt = decrypt

				return validate(cfg)(cmd, args)
			},
			RunE: run(cfg, func(cmd *cobra.Command, args []string) error {
				return logic.RunBlocks(fs, cfg, args, cmd.OutOrStdout())
			}),
		}
	}

	cmd.AddCommand(
		newSub("encrypt", "Encrypt blocks of up to 32 hex characters, left-padded with zeros", false),
		newSub("decrypt", "Decrypt 32-character hex blocks, printing them without leading zero bytes", true),
	)

	return cmd
}
