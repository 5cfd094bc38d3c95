package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/config"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "cpusched",
	Short: "Simulate CPU scheduling algorithms over a process workload",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logLevel
		if level == "" {
			level = loadConfig().LogLevel
		}
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			logrus.Fatalf("Invalid log level %q: %v", level, err)
		}
		logrus.SetLevel(lvl)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func loadConfig() *config.SchedulerConfig {
	if configPath == "" {
		return config.GetSchedulerConfig()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		logrus.Fatalf("Failed to load config %s: %v", configPath, err)
	}
	return cfg
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "", "Log level (trace, debug, info, warn, error)")
}
