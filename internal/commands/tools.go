package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gokuz/internal/config"
	"github.com/idelchi/gokuz/internal/logic"
)

// NewToolsCommand creates the tools command with the hex helpers.
func NewToolsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools command <value>",
		Short: "Hex conversion helpers",
	}

	for _, tool := range []struct{ name, short string }{
		{logic.ToolStrToHex, "Convert a string of up to 25 characters to hex"},
		{logic.ToolHexToStr, "Convert a hex string to UTF-8 text"},
		{logic.ToolHexInfo, "Print the length of a hex string in characters, bytes and bits"},
	} {
		cmd.AddCommand(&cobra.Command{
			Use:     tool.name + " <value>",
			Short:   tool.short,
			Args:    cobra.ExactArgs(1),
			PreRunE: validate(cfg),
			RunE: run(cfg, func(cmd *cobra.Command, args []string) error {
				return logic.RunTool(tool.name, args[0], cmd.OutOrStdout())
			}),
		})
	}

	return cmd
}
