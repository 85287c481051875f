package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"motionview/internal/config"
	"motionview/internal/metrics"
	"motionview/internal/server"
	"motionview/internal/viewer"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the event viewer",
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func runServe() {
	conf, err := config.InitConfig(configFile)
	if err != nil {
		logrus.Fatal("initConfig error, ", err.Error())
	}

	logrus.Infof("config: %+v", conf)

	m := metrics.NewMetrics()
	v, err := viewer.NewViewer(conf, m)
	if err != nil {
		logrus.Fatalf("newViewer error, %s", err.Error())
	}

	ctx, cancelFunc := context.WithCancel(context.Background())

	srv, err := server.NewServer(ctx, conf, v, m)
	if err != nil {
		cancelFunc()
		logrus.Fatalf("newServer error, %s", err.Error())
		return
	}
	go srv.Start()

	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)

	<-termChan
	logrus.Infof("server is shutting down...")
	srv.Shutdown()
	cancelFunc()
}
