// SPDX-License-Identifier: EPL-2.0

// Package cmd wires the clipwash CLI: info, analyze, clean and convert
// subcommands over the library pipeline.
package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idosh/clipwash/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "clipwash",
	Short: "Audio cleanup and conversion tool",
	Long: `clipwash cleans up voice recordings: it measures objective quality,
removes noise, clicks, echo and silence, normalizes levels, and converts
between common audio formats.

Supported formats: wav, mp3, ogg, flac, m4a (m4a and lossy encoding need
an ffmpeg binary on PATH).`,
	Version: "1.0.0",
}

// Execute runs the CLI. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.clipwash.yaml)")
	rootCmd.PersistentFlags().String("format", "", "input format hint (wav, mp3, ogg, flac, m4a); sniffed when empty")

	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("log-output", "stderr", "log output (stderr, stdout, file path)")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("logging.output", rootCmd.PersistentFlags().Lookup("log-output"))

	viper.SetEnvPrefix("CLIPWASH")
	viper.AutomaticEnv()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".clipwash")
	}

	configFileUsed := ""
	if err := viper.ReadInConfig(); err == nil {
		configFileUsed = viper.ConfigFileUsed()
	}

	err := logger.Initialize(&logger.Config{
		Level:  viper.GetString("logging.level"),
		Format: viper.GetString("logging.format"),
		Output: viper.GetString("logging.output"),
	})
	cobra.CheckErr(err)

	if configFileUsed != "" {
		logger.Info().Str("config_file", configFileUsed).Msg("loaded configuration file")
	}
}

// formatHint resolves the input format: the --format flag wins, otherwise
// the file extension, otherwise empty for magic-byte sniffing.
func formatHint(path string) string {
	if f := viper.GetString("format"); f != "" {
		return f
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "wav", "mp3", "ogg", "flac", "m4a":
		return ext
	}
	return ""
}
