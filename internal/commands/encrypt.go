package commands

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/idelchi/gokuz/internal/config"
	"github.com/idelchi/gokuz/internal/logic"
)

// fileFlags adds the flags shared by the file commands.
func fileFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("delete", "d", false, "Delete the original file after successful encryption/decryption")
	cmd.Flags().Bool("dry", false, "Show which files would be processed without writing anything")
	cmd.Flags().Bool("stats", false, "Print statistics after processing")
	cmd.Flags().Bool("preserve-timestamps", false, "Copy the modification time of the input to the output")
	cmd.Flags().String("encrypt-ext", ".kuz", "Suffix to append to encrypted files")
	cmd.Flags().String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	patternFlags(cmd)
}

// patternFlags adds the flags selecting files during directory walks.
func patternFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("include", "i", nil, "Patterns of files to include during directory walks (find -path semantics)")
	cmd.Flags().StringSliceP("exclude", "e", nil, "Patterns of files to exclude during directory walks, applied after includes")
	cmd.Flags().String("include-from", "", "Path to a JSON(C) file with an array of include patterns")
	cmd.Flags().String("exclude-from", "", "Path to a JSON(C) file with an array of exclude patterns")
}

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(fs afero.Fs, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] [paths...]",
		Aliases: []string{"enc"},
		Short:   "Encrypt hex block files, one block per line",
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = false

			return preRun(cfg)(cmd, args)
		},
		RunE: run(cfg, func(cmd *cobra.Command, _ []string) error {
			return logic.Run(fs, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		}),
	}

	fileFlags(cmd)

	return cmd
}
