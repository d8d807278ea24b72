package main

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"
	metricsconfig "github.com/vanet-dev/trust-node/cmd/trust-node/config/metrics"
	"github.com/vanet-dev/trust-node/pkg/metrics"
	httputil "github.com/vanet-dev/trust-node/pkg/util/http"
	"go.uber.org/zap"
)

func initMetrics(c *cfg) {
	if !metricsconfig.Enabled(c.appCfg) {
		c.log.Info("prometheus is disabled")
		return
	}

	c.metrics = metrics.NewNodeMetrics()

	c.metricsSrv = httputil.New(
		httputil.Prm{
			Address: metricsconfig.Address(c.appCfg),
			Handler: promhttp.Handler(),
		},
		httputil.WithShutdownTimeout(
			metricsconfig.ShutdownTimeout(c.appCfg),
		),
	)
}

func serveMetrics(c *cfg) {
	if c.metricsSrv == nil {
		return
	}

	go func() {
		if err := c.metricsSrv.Serve(); err != nil {
			c.log.Error("metrics server failure",
				zap.Error(err),
			)
		}
	}()
}
