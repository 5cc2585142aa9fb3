package commands

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/idelchi/gokuz/internal/config"
	"github.com/idelchi/gokuz/internal/logic"
)

// NewCheckCommand creates a new cobra command for the check subcommand.
func NewCheckCommand(fs afero.Fs, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] [paths...]",
		Short: "Run the GOST R 34.12-2015 known-answer tests and validate path patterns",
		Long: `Run the GOST R 34.12-2015 known-answer tests.
When include or exclude patterns are given, also report how many files under
the paths each pattern selects and fail if any pattern selects none.`,
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg),
		RunE: run(cfg, func(cmd *cobra.Command, _ []string) error {
			return logic.RunCheck(fs, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		}),
	}

	patternFlags(cmd)

	return cmd
}
