package cmd

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mlfq-sim/api"
	"mlfq-sim/internal/metrics"
)

var port int // HTTP listen port

// serveCmd exposes the simulator over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulator over an HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("port") && cfg.Port != 0 {
			port = cfg.Port
		}
		registry, err := cfg.Registry()
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		recorder := metrics.NewRecorder(reg)
		app := api.NewApp(api.NewSchedulerHandlerImpl(registry, recorder), reg)

		logrus.Infof("listening on :%d", port)
		return app.Listen(fmt.Sprintf(":%d", port))
	},
}

func init() {
	serveCmd.Flags().IntVar(&port, "port", 9095, "HTTP listen port")

	rootCmd.AddCommand(serveCmd)
}
