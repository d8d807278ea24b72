package eigentrustctrl

import (
	"context"
	"time"

	"github.com/vanet-dev/trust-node/pkg/services/trust"
	eigentrustcalc "github.com/vanet-dev/trust-node/pkg/services/trust/eigentrust/calculator"
	"go.uber.org/zap"
)

// RecomputePrm groups the required parameters of the Controller.Recompute method.
type RecomputePrm struct {
	epoch uint64
}

// SetEpoch sets the number of the recompute round.
func (p *RecomputePrm) SetEpoch(e uint64) {
	p.epoch = e
}

// Epoch returns the number of the recompute round.
func (p RecomputePrm) Epoch() uint64 {
	return p.epoch
}

type recomputeContext struct {
	context.Context

	epoch uint64
}

func (c recomputeContext) Epoch() uint64 {
	return c.epoch
}

// Recompute runs one global recompute round.
//
// A round for an epoch number is acquired exclusively: a trigger
// for an epoch whose round is still running is silently dropped.
// The round itself is submitted to the worker pool, so the call
// returns without waiting for completion.
func (c *Controller) Recompute(prm RecomputePrm) {
	ctx, ok := c.acquireRound(prm.epoch)
	if !ok {
		return
	}

	err := c.prm.WorkerPool.Submit(func() {
		defer c.freeRound(prm.epoch)

		c.round(ctx)
	})
	if err != nil {
		c.freeRound(prm.epoch)

		c.opts.log.Debug("could not submit recompute round",
			zap.Uint64("epoch", prm.epoch),
			zap.String("error", err.Error()),
		)
	}
}

// Stop interrupts the running recompute round of the epoch, if any.
func (c *Controller) Stop(epoch uint64) {
	c.freeRound(epoch)
}

func (c *Controller) acquireRound(epoch uint64) (recomputeContext, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.mCtx[epoch] != nil {
		c.opts.log.Debug("recompute round is already started",
			zap.Uint64("epoch", epoch),
		)

		return recomputeContext{}, false
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.mCtx[epoch] = cancel

	return recomputeContext{
		Context: ctx,
		epoch:   epoch,
	}, true
}

func (c *Controller) freeRound(epoch uint64) {
	c.mtx.Lock()

	cancel := c.mCtx[epoch]
	if cancel != nil {
		cancel()
		delete(c.mCtx, epoch)
	}

	c.mtx.Unlock()
}

func (c *Controller) round(ctx recomputeContext) {
	log := c.opts.log.With(
		zap.Uint64("epoch", ctx.Epoch()),
	)

	log.Debug("starting global trust recompute")

	// held until write-back so the batch cannot go stale
	c.prm.Guard.Lock()
	defer c.prm.Guard.Unlock()

	start := time.Now()

	var batch []trust.PeerRecord

	err := c.prm.RecordSource.Iterate(func(rec trust.PeerRecord) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		batch = append(batch, rec)

		return nil
	})
	if err != nil {
		log.Debug("could not assemble record batch",
			zap.String("error", err.Error()),
		)

		return
	}

	var calcPrm eigentrustcalc.CalculatePrm

	calcPrm.SetRecords(batch)
	calcPrm.SetNow(c.prm.Clock.Now())

	res, err := c.prm.Calculator.Calculate(calcPrm)
	if err != nil {
		log.Debug("recompute failed",
			zap.String("error", err.Error()),
		)

		return
	}

	writer, err := c.prm.ResultTarget.InitWriter(ctx)
	if err != nil {
		log.Debug("could not initialize recompute result target",
			zap.String("error", err.Error()),
		)

		return
	}

	for i := range res {
		if err := writer.Write(res[i]); err != nil {
			log.Debug("could not write recomputed record",
				zap.Stringer("peer", res[i].ID),
				zap.String("error", err.Error()),
			)

			return
		}
	}

	if err := writer.Close(); err != nil {
		log.Debug("could not finish writing recomputed records",
			zap.String("error", err.Error()),
		)

		return
	}

	c.opts.metrics.ObserveRound(time.Since(start))

	log.Debug("global trust recompute finished",
		zap.Int("records", len(res)),
	)
}
