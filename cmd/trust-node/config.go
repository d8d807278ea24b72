package main

import (
	"context"
	"time"

	"github.com/vanet-dev/trust-node/cmd/trust-node/config"
	loggerconfig "github.com/vanet-dev/trust-node/cmd/trust-node/config/logger"
	"github.com/vanet-dev/trust-node/pkg/metrics"
	brokernats "github.com/vanet-dev/trust-node/pkg/services/trust/broker/nats"
	"github.com/vanet-dev/trust-node/pkg/services/trust/dispatcher"
	eigentrustctrl "github.com/vanet-dev/trust-node/pkg/services/trust/eigentrust/controller"
	cachestorage "github.com/vanet-dev/trust-node/pkg/services/trust/storage/cache"
	"github.com/vanet-dev/trust-node/pkg/services/trust/storage/persistent"
	"github.com/vanet-dev/trust-node/pkg/util"
	"github.com/vanet-dev/trust-node/pkg/util/grace"
	httputil "github.com/vanet-dev/trust-node/pkg/util/http"
	"github.com/vanet-dev/trust-node/pkg/util/logger"
	"go.uber.org/atomic"
)

type cfg struct {
	ctx context.Context

	appCfg *config.Config

	log *logger.Logger

	cfgStorage cfgStorage

	cfgTrust cfgTrust

	cfgBroker cfgBroker

	metrics *metrics.NodeMetrics

	metricsSrv *httputil.Server
}

type cfgStorage struct {
	persistent *persistent.Storage

	cached *cachestorage.Storage
}

type cfgTrust struct {
	dispatcher *dispatcher.Dispatcher

	controller *eigentrustctrl.Controller

	pool util.WorkerPool

	recomputeInterval time.Duration

	epoch *atomic.Uint64
}

type cfgBroker struct {
	listener *brokernats.Listener

	endpoint string
}

func initCfg(path string) *cfg {
	var p config.Prm

	var opts []config.Option
	if path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}

	appCfg := config.New(p, opts...)

	log, err := logger.New(logger.Prm{
		Level: loggerconfig.Level(appCfg),
	})
	fatalOnErr(err)

	c := &cfg{
		appCfg: appCfg,
		log:    log,
	}

	c.ctx = grace.NewGracefulContext(log)
	c.cfgTrust.epoch = atomic.NewUint64(0)

	return c
}
