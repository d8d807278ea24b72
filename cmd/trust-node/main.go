package main

import (
	"flag"
	"log"

	"go.uber.org/zap"
)

func fatalOnErr(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	configFile := flag.String("config", "", "path to config")
	flag.Parse()

	c := initCfg(*configFile)

	initApp(c)

	bootUp(c)

	wait(c)

	shutdown(c)
}

func initApp(c *cfg) {
	initStorage(c)
	initMetrics(c)
	initTrustService(c)
	initBroker(c)
}

func bootUp(c *cfg) {
	serveMetrics(c)
	serveBroker(c)
	startRecomputeTicker(c)
}

func wait(c *cfg) {
	<-c.ctx.Done()
}

func shutdown(c *cfg) {
	c.cfgTrust.pool.Release()

	if c.metricsSrv != nil {
		if err := c.metricsSrv.Shutdown(); err != nil {
			c.log.Error("could not shut down metrics server",
				zap.Error(err),
			)
		}
	}

	if err := c.cfgStorage.persistent.Close(); err != nil {
		c.log.Error("could not close record storage",
			zap.Error(err),
		)
	}

	c.log.Info("trust node stopped")
}
