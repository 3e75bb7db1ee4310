package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/psantana5/tempo/pkg/logging"
)

var (
	cfgFile      string
	outputFormat string
	verbose      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tempo",
	Short: "Ad-hoc wall-clock benchmarking of function calls",
	Long: `tempo times built-in workloads over parameter sweeps and reports the
collected wall-clock durations as tables, JSON, CSV or Prometheus metrics.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tempo/config)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "", "output format: table or json")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

// initConfig reads in config file and environment variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}
		viper.AddConfigPath(filepath.Join(home, ".tempo"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("tempo")
	viper.AutomaticEnv()
	viper.SetDefault("output", "table")

	// Config file is optional.
	_ = viper.ReadInConfig()

	if outputFormat == "" {
		outputFormat = viper.GetString("output")
	}
}

// IsJSONOutput returns true if JSON output is requested
func IsJSONOutput() bool {
	return outputFormat == "json"
}

func newLogger() *logging.Logger {
	level := logging.INFO
	if verbose {
		level = logging.DEBUG
	}
	return logging.NewLogger(level, false)
}
