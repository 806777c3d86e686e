package cmd

import (
	"context"

	"github.com/spf13/cobra"
	appctx "github.com/yeisme/hellodemo/pkg/context"
	"github.com/yeisme/hellodemo/pkg/server"
	"github.com/yeisme/hellodemo/pkg/utils/hotload"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the greeting on " + server.Addr,
	Long: `
Bind 0.0.0.0:8000 and answer every request with the fixed greeting until
SIGINT or SIGTERM is received.

If the address cannot be bound the command fails immediately with a non-zero
exit status.

With watch.enabled set in the config file, edits to that file are picked up
and the log level is re-applied without a restart.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context(), appCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// runServe binds before starting any goroutine so a bind failure is returned
// directly.
func runServe(ctx context.Context, app *appctx.AppContext) error {
	srv := server.New(app.Config.Server, app.Logger)
	if err := srv.Listen(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(gctx)
	})

	if file := app.Viper.ConfigFileUsed(); app.Config.Watch.Enabled && file != "" {
		g.Go(func() error {
			err := hotload.Watch(gctx, file, app.Config.Watch.DebounceDuration(), app.Logger, func() {
				if _, err := app.Reload(); err != nil {
					app.Logger.Error().Err(err).Msg("reload config")
				}
			})
			if err != nil {
				// 监听失败不影响服务
				app.Logger.Warn().Err(err).Msg("config watch disabled")
			}
			return nil
		})
	}

	return g.Wait()
}
