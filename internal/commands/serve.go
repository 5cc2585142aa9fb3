package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gokuz/internal/codec"
	"github.com/idelchi/gokuz/internal/config"
	"github.com/idelchi/gokuz/internal/log"
	"github.com/idelchi/gokuz/internal/server"
)

const defaultPort = 8000

// NewServeCommand creates a new cobra command for the HTTP service.
func NewServeCommand(cfg *config.Config, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve [flags]",
		Short:   "Serve the cipher and hex tools over HTTP",
		Args:    cobra.NoArgs,
		PreRunE: validate(cfg),
		RunE: run(cfg, func(cmd *cobra.Command, _ []string) error {
			logger := log.NewLogger(log.Options{
				Level:   cfg.Level,
				Format:  cfg.Format,
				Version: version,
				Out:     cmd.ErrOrStderr(),
			})

			srv, err := server.New(cfg.Server, codec.ByteOrder(cfg.ByteOrder), version, logger)
			if err != nil {
				return err //nolint:wrapcheck // already descriptive
			}

			return srv.Run(cmd.Context()) //nolint:wrapcheck // already descriptive
		}),
	}

	cmd.Flags().String("title", "Kuznechik", "Service title reported at /")
	cmd.Flags().String("host", "0.0.0.0", "Address to listen on")
	cmd.Flags().IntP("port", "p", defaultPort, "Port to listen on")
	cmd.Flags().String("base-path", "", "Path prefix for all routes, e.g. /api")

	return cmd
}
