package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/doeshing/cosmo-health/internal/app"
	"github.com/doeshing/cosmo-health/internal/infrastructure/web"
)

func newServeCommand(container *app.Container) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the vital-signs form over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := container.AnalysisService(cmd.Context())
			if err != nil {
				return referenceFailure(err)
			}
			settings := container.Config.Server
			if addr != "" {
				settings.Addr = addr
			}
			server, err := web.NewServer(svc, container.Logger, settings)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.Start(ctx, settings.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}
