package cli

import (
	"github.com/spf13/cobra"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/api"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/config"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/factory"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory.New(cmd.Context(), factory.FromConfig(appCfg, logger))
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			router := api.NewRouter(api.RouterConfig{
				Logger:         logger,
				GameController: app.GameController,
				BotService:     app.BotService,
				Wheel:          app.Wheel,
				RoundDefaults:  appCfg.Round,
			})

			serverCfg := api.DefaultServerConfig()
			serverCfg.Port = appCfg.Port
			return api.NewServer(router, serverCfg, logger).Run(cmd.Context())
		},
	}
	cmd.Flags().Int(config.KeyPort, 8080, "Port to listen on (env: WHEEL_PORT)")
	return cmd
}
