package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/api"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if servePort != 0 {
			cfg.Port = servePort
		}
		app := api.NewApp(cfg)
		logrus.Infof("listening on :%d", cfg.Port)
		logrus.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config)")
	rootCmd.AddCommand(serveCmd)
}
