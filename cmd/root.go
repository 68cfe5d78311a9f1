package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mlfq-sim/config"
)

var (
	configPath string // Path to the YAML config file
	logLevel   string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "mlfq-sim",
	Short:         "Multi-level feedback queue CPU scheduling simulator",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// loadConfig reads the config file and applies the log level, letting the
// --log flag win over the file.
func loadConfig(cmd *cobra.Command) (*config.SchedulerConfig, error) {
	var cfg *config.SchedulerConfig
	if configPath == "" {
		cfg = config.GetSchedulerConfig()
	} else {
		var err error
		cfg, err = config.LoadSchedulerConfig(configPath)
		if err != nil {
			return nil, err
		}
	}

	level := cfg.LogLevel
	if cmd.Flags().Changed("log") || level == "" {
		level = logLevel
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", level)
	}
	logrus.SetLevel(parsed)
	return cfg, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./config.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
