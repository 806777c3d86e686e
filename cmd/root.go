// Package cmd provides the command-line interface for hellodemo
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	appctx "github.com/yeisme/hellodemo/pkg/context"
	"github.com/yeisme/hellodemo/pkg/utils/version"
)

var (
	appCtx      *appctx.AppContext
	globalFlags appctx.GlobalFlags
)

// rootCmd serves when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hellodemo",
	Short: "hellodemo answers every HTTP request with a fixed greeting",
	Long: `hellodemo is a demo service for exercising a deployment pipeline.

It listens on 0.0.0.0:8000 and answers every request, whatever the method or
path, with "200 OK" and the body "Hello from CI/CD demo app!".

Running hellodemo without a subcommand is the same as "hellodemo serve".`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if globalFlags.VersionEnable {
			return nil
		}
		ctx, err := appctx.InitAppContext(cmd.Context(), globalFlags)
		if err != nil {
			return err
		}
		appCtx = ctx
		appCtx.Logger.Debug().Msgf("Execute Command: %s", cmd.CommandPath())
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		if globalFlags.VersionEnable {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
			return nil
		}
		return runServe(cmd.Context(), appCtx)
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "config file")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Debug, "debug", false, "enable debug logging (includes access log)")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "V", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Quiet, "quiet", false, "suppress all log output")
	rootCmd.Flags().BoolVarP(&globalFlags.VersionEnable, "version", "v", false, "show version information")
}
