package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yeisme/hellodemo/pkg/style"
	"github.com/yeisme/hellodemo/pkg/utils/version"
)

var (
	// Version command flags
	versionDetailed bool
	versionJSON     bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `
Display version information for hellodemo.

Examples:
  # Show short version info (default)
  hellodemo version

  # Show detailed version info
  hellodemo version --detailed

  # Show version info in JSON format
  hellodemo version --json`,
	Args: cobra.NoArgs,
	// 不需要加载配置
	PersistentPreRun: func(*cobra.Command, []string) {},
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		info := version.GetVersion()
		switch {
		case versionJSON:
			return style.PrintJSON(out, info)
		case versionDetailed:
			if err := style.PrintHeading(out, "hellodemo"); err != nil {
				return err
			}
			return style.PrintKeyValues(out, []style.KV{
				{Key: "Version", Value: info.Version},
				{Key: "Git commit", Value: info.GitCommit},
				{Key: "Build date", Value: info.BuildDate},
				{Key: "Go version", Value: info.GoVersion},
				{Key: "Platform", Value: info.Platform},
			})
		default:
			_, err := fmt.Fprintln(out, version.GetShortVersionString())
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVarP(&versionDetailed, "detailed", "d", false, "show detailed version information")
	versionCmd.Flags().BoolVarP(&versionJSON, "json", "j", false, "output version information in JSON format")
}
