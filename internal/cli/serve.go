package cli

import (
	"github.com/rocketscienceinc/gomoku-backend/transport/rest"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only HTTP API for exported histories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.Logger.Info("Starting HTTP server", "port", app.Config.HTTPPort)

			return rest.Start(cmd.Context(), app.Config.HTTPPort, rest.NewRouter(app.Logger, app.Records))
		},
	}
}
