package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/hellodemo/pkg/configs"
)

var (
	noColor bool

	configCmd = &cobra.Command{
		Use:     "config",
		Short:   "Manage hellodemo configuration",
		Long:    `hellodemo config allows you to view and manage logging and server settings. The listen address is fixed and not part of the configuration.`,
		Aliases: []string{"c"},
	}

	configValidateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate hellodemo configuration",
		Long:  `hellodemo config validate checks that a configuration file is found and that its values are valid.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fileUsed := appCtx.Viper.ConfigFileUsed()
			if fileUsed == "" {
				return fmt.Errorf("no config file found (use --config or run 'hellodemo config init')")
			}
			// PersistentPreRunE 已经完成了读取与校验
			fmt.Fprintf(cmd.OutOrStdout(), "Config file is valid: %s\n", fileUsed)
			return nil
		},
		Aliases: []string{"check", "verify"},
	}

	configListCmd = &cobra.Command{
		Use:   "list [section]",
		Short: "List hellodemo configuration",
		Long: `hellodemo config list displays the current configuration settings.

You can specify a section to display only that part of the configuration:
  - app: Application settings
  - log: Logging settings
  - server: Server timeouts and access log
  - watch: Config file hot reload

Examples:
  hellodemo config list                    # Show all configuration (viper raw data)
  hellodemo config list --all              # Show all configuration with defaults
  hellodemo config list log                # Show only log settings
  hellodemo config list --format json      # Output in JSON format
  hellodemo config list server --all --toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) > 0 {
				section = args[0]
			}

			format := configs.GetOutputFormatFromFlags(cmd)
			showAll, _ := cmd.Flags().GetBool("all")

			data, err := configs.GetConfigSection(appCtx.Viper, section, showAll)
			if err != nil {
				return err
			}

			return configs.OutputData(data, format, cmd.OutOrStdout(), !noColor)
		},
		Aliases: []string{"ls"},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Initialize hellodemo configuration",
		Long: `hellodemo config init creates a new configuration file with default settings.

Examples:
  hellodemo config init                    # Create .hellodemo.yaml in current directory
  hellodemo config init --path /etc/hellodemo/hellodemo.yaml
  hellodemo config init --format toml      # Create TOML format config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("path")
			formatStr, _ := cmd.Flags().GetString("format")

			format, err := configs.ParseOutputFormat(formatStr)
			if err != nil {
				return err
			}

			// 未指定路径时使用默认文件名
			if path == "" {
				path = ".hellodemo." + string(format)
			}

			if err := configs.CreateDefaultConfig(path, format); err != nil {
				return err
			}

			appCtx.Logger.Info().Msgf("Config file created successfully: %s", path)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(
		configListCmd,
		configValidateCmd,
		configInitCmd,
	)

	configListCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	configListCmd.Flags().StringP("format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(configs.ValidFormats(), ", ")))
	configListCmd.Flags().Bool("yaml", false, "Output in YAML format")
	configListCmd.Flags().Bool("json", false, "Output in JSON format")
	configListCmd.Flags().Bool("toml", false, "Output in TOML format")
	configListCmd.Flags().Bool("text", false, "Output in plain text format")
	configListCmd.Flags().BoolP("all", "a", false, "Show complete configuration with defaults (processed struct)")

	configInitCmd.Flags().StringP("path", "p", "", "Path to the config file")
	configInitCmd.Flags().StringP("format", "f", "yaml", "Format of the config file (yaml, json, toml)")
}
