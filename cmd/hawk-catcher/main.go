// Command hawk-catcher sends a test event to the Hawk collector using
// the configured integration token. It is the smoke tool for verifying
// an integration before wiring the library into an application.
package main

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	hawk "github.com/hawk-tracker/catcher-go"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("while loading configuration")
	}

	if cfg.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.Infof("Starting %s %s", hawk.Name, hawk.Version)

	if cfg.MetricsListen != "" {
		go serveMetrics(cfg.MetricsListen)
	}

	if err := hawk.Init(cfg.Settings); err != nil {
		logrus.WithError(err).Fatal("while initializing the catcher")
	}

	hawk.Test()
	if !hawk.Flush(30 * time.Second) {
		logrus.Warn("timed out waiting for the test event delivery")
		return
	}
	logrus.Info("test event handed to the collector, check the Hawk garage")
}

// serveMetrics exposes the delivery self-metrics for scraping.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		logrus.WithError(err).Error("metrics listener stopped")
	}
}
