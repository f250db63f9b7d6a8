package cmd

import (
	"bytes"
	"fmt"
	"os"

	config "github.com/inference-gateway/coordpick/config"
	services "github.com/inference-gateway/coordpick/internal/services"
	cobra "github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage coordpick configuration",
	Long:  `Manage the coordpick configuration settings.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new project configuration",
	Long: `Initialize a new .coordpick/config.yaml configuration file in the current directory.
This creates a local project configuration with default settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := configFilePath(cmd)
		overwrite, _ := cmd.Flags().GetBool("overwrite")
		return initConfigFile(cmd, configPath, overwrite)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after defaults, the config file and COORDPICK_* environment variables are merged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromViper()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return printConfig(cmd, cfg)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Long: `Set a configuration value using dot notation and save it to the config file.

Examples:
  coordpick config set gallery.mode deferred
  coordpick config set web.port 9000`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromViper()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := services.NewConfigService(V, cfg).SetValue(args[0], args[1]); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", args[0], args[1], V.ConfigFileUsed())
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("overwrite", false, "overwrite an existing configuration file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func configFilePath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.DefaultConfigPath
}

func initConfigFile(cmd *cobra.Command, configPath string, overwrite bool) error {
	if _, err := os.Stat(configPath); err == nil && !overwrite {
		return fmt.Errorf("configuration file %s already exists (use --overwrite to replace)", configPath)
	}

	if err := config.DefaultConfig().SaveConfig(configPath); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Successfully created %s\n", configPath)
	_, _ = fmt.Fprintln(out, "You can now customize the configuration for this project.")
	return nil
}

func printConfig(cmd *cobra.Command, cfg *config.Config) error {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to close YAML encoder: %w", err)
	}

	_, err := cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
