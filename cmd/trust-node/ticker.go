package main

import (
	"time"

	"github.com/vanet-dev/trust-node/pkg/services/trust/dispatcher"
	"go.uber.org/zap"
)

func startRecomputeTicker(c *cfg) {
	go func() {
		t := time.NewTicker(c.cfgTrust.recomputeInterval)
		defer t.Stop()

		for {
			select {
			case <-c.ctx.Done():
				return
			case <-t.C:
				epoch := c.cfgTrust.epoch.Inc()

				if c.metrics != nil {
					c.metrics.SetEpoch(epoch)
				}

				c.log.Debug("triggering periodic recompute",
					zap.Uint64("epoch", epoch),
				)

				var prm dispatcher.RecomputePrm

				prm.SetEpoch(epoch)

				c.cfgTrust.dispatcher.RecomputeScores(prm)
			}
		}
	}()
}
