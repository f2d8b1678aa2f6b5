// Package cmd implements the muscle-overlay command line.
package cmd

import (
	"fmt"
	"os"

	"muscle-overlay/internal/config"
	"muscle-overlay/internal/logging"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	settings config.Settings
	log      = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "muscle-overlay",
	Short: "Annotate facial muscles on face images",
	Long: `muscle-overlay records which face landmarks belong to each facial muscle
and draws semi-transparent muscle bands between the origin and insertion
centroids on new images.

Landmarks come from a sidecar JSON file next to each image or from an
external detector command, as configured in muscle-overlay.yaml.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ./muscle-overlay.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	_ = viper.BindPFlag("logLevel", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}

func loadSettings(cmd *cobra.Command, args []string) error {
	if err := config.Load(cfgFile); err != nil {
		return err
	}

	s, err := config.Current()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	settings = s

	log = logging.New(settings.LogLevel, os.Stderr)
	if used := config.Used(); used != "" {
		log.Debug().Str("file", used).Msg("Loaded config")
	}
	return nil
}
