package main

import (
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	engineconfig "github.com/vanet-dev/trust-node/cmd/trust-node/config/engine"
	"github.com/vanet-dev/trust-node/pkg/services/trust"
	"github.com/vanet-dev/trust-node/pkg/services/trust/common"
	"github.com/vanet-dev/trust-node/pkg/services/trust/decay"
	"github.com/vanet-dev/trust-node/pkg/services/trust/dispatcher"
	eigentrustcalc "github.com/vanet-dev/trust-node/pkg/services/trust/eigentrust/calculator"
	eigentrustctrl "github.com/vanet-dev/trust-node/pkg/services/trust/eigentrust/controller"
	"github.com/vanet-dev/trust-node/pkg/services/trust/pairwise"
)

// systemClock implements common.Clock on the wall clock.
type systemClock struct{}

func (systemClock) Now() int64 {
	return time.Now().Unix()
}

// storageWriterProvider implements common.WriterProvider
// on the record storage. Written records are cached and
// committed in a single batch on Close.
type storageWriterProvider struct {
	storage common.Putter
}

type storageWriter struct {
	storage common.Putter

	batch []trust.PeerRecord
}

func (p *storageWriterProvider) InitWriter(common.Context) (common.Writer, error) {
	return &storageWriter{storage: p.storage}, nil
}

func (w *storageWriter) Write(rec trust.PeerRecord) error {
	w.batch = append(w.batch, rec)
	return nil
}

func (w *storageWriter) Close() error {
	return w.storage.PutBatch(w.batch)
}

func initTrustService(c *cfg) {
	decayer := decay.New(decay.Prm{
		Factor: engineconfig.DecayFactor(c.appCfg),
	})

	pairwiseCalc := pairwise.New(
		pairwise.Prm{
			FeedbackWeight: engineconfig.FeedbackWeight(c.appCfg),
			Decayer:        decayer,
		},
		pairwise.WithLogger(c.log),
	)

	eigenCalc := eigentrustcalc.New(
		eigentrustcalc.Prm{
			Alpha:      engineconfig.Alpha(c.appCfg),
			BaseTrust:  engineconfig.BaseTrust(c.appCfg),
			Iterations: engineconfig.Iterations(c.appCfg),
			WeightSource: eigentrustcalc.NewThresholdWeightSource(
				engineconfig.VoteThreshold(c.appCfg),
			),
		},
		eigentrustcalc.WithLogger(c.log),
	)

	// single worker: recompute rounds materialize the whole
	// record set, running them in parallel has no point
	pool, err := ants.NewPool(1, ants.WithNonblocking(true))
	fatalOnErr(err)

	c.cfgTrust.pool = pool

	// shared between the dispatcher and the recompute controller
	guard := new(sync.Mutex)

	ctrlOpts := []eigentrustctrl.Option{
		eigentrustctrl.WithLogger(c.log),
	}
	if c.metrics != nil {
		ctrlOpts = append(ctrlOpts, eigentrustctrl.WithMetricsRegister(c.metrics))
	}

	c.cfgTrust.controller = eigentrustctrl.New(
		eigentrustctrl.Prm{
			Calculator:   eigenCalc,
			RecordSource: c.cfgStorage.cached,
			ResultTarget: &storageWriterProvider{storage: c.cfgStorage.cached},
			Clock:        systemClock{},
			WorkerPool:   pool,
			Guard:        guard,
		},
		ctrlOpts...,
	)

	dspOpts := []dispatcher.Option{
		dispatcher.WithLogger(c.log),
	}
	if c.metrics != nil {
		dspOpts = append(dspOpts, dispatcher.WithMetricsRegister(c.metrics))
	}

	c.cfgTrust.dispatcher = dispatcher.New(
		dispatcher.Prm{
			Storage:    c.cfgStorage.cached,
			Pairwise:   pairwiseCalc,
			Recomputer: c.cfgTrust.controller,
			Clock:      systemClock{},
			Guard:      guard,
		},
		dspOpts...,
	)

	c.cfgTrust.recomputeInterval = engineconfig.RecomputeInterval(c.appCfg)
}
