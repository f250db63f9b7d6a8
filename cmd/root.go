package cmd

import (
	"fmt"
	"os"

	config "github.com/inference-gateway/coordpick/config"
	logger "github.com/inference-gateway/coordpick/internal/logger"
	cobra "github.com/spf13/cobra"
	viper "github.com/spf13/viper"
)

// V holds the merged configuration: defaults, config file and COORDPICK_* env
var V *viper.Viper

var rootCmd = &cobra.Command{
	Use:   "coordpick",
	Short: "Pick logical screen coordinates from images",
	Long: `coordpick loads images from URLs, data URLs or local files, normalizes them
to a fixed logical resolution (1920x1080 by default) and turns clicks on the
displayed image into logical "x, y" coordinates copied to the clipboard.

Run 'coordpick serve' to open the gallery in a browser.`,
	SilenceUsage: true,
}

func Execute() {
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", fmt.Sprintf("config file (default is %s)", config.DefaultConfigPath))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	configPath, _ := rootCmd.PersistentFlags().GetString("config")

	v, err := config.NewViper(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	V = v

	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
	logger.Init(verbose || V.GetBool("logging.debug"))
}

// getConfigFromViper decodes the merged configuration
func getConfigFromViper() (*config.Config, error) {
	if V == nil {
		return config.DefaultConfig(), nil
	}
	return config.FromViper(V)
}
