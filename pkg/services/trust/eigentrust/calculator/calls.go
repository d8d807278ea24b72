package eigentrustcalc

import (
	"github.com/pkg/errors"
	"github.com/vanet-dev/trust-node/pkg/services/trust"
	"go.uber.org/zap"
)

// CalculatePrm groups the required parameters of the Calculator.Calculate method.
type CalculatePrm struct {
	records []trust.PeerRecord

	now int64
}

// SetRecords sets the batch of records to recompute.
//
// The slice order defines the iteration order and, therefore,
// the exact floating-point result: callers that need bit-identical
// results across invocations must pass identically ordered batches.
func (p *CalculatePrm) SetRecords(recs []trust.PeerRecord) {
	p.records = recs
}

// SetNow sets the current Unix time, in seconds.
func (p *CalculatePrm) SetNow(now int64) {
	p.now = now
}

// Calculate runs the configured number of propagation iterations
// over the batch and returns the recomputed records in the order
// of the input.
//
// Per iteration, every vehicle collects votes of all the others,
// normalized by the total value of the voting population, and the
// damped result is mixed with the base prior. Each iteration reads
// the values produced by the previous one, never the original
// snapshot, so trust propagates through the set. Every resulting
// value is within the allowed range, and every record is stamped
// with now unless it already carries a later timestamp.
//
// An empty batch is returned unchanged. A batch of one has no
// voters, so its value is pulled to the damped prior.
//
// Returns trust.ErrInvalidValue if a value of any input record
// is out of range.
func (c *Calculator) Calculate(prm CalculatePrm) ([]trust.PeerRecord, error) {
	n := len(prm.records)
	if n == 0 {
		c.opts.log.Debug("no records to recompute")
		return prm.records, nil
	}

	cur := make([]float64, n)
	next := make([]float64, n)

	for i := range prm.records {
		if v := prm.records[i].Record.Value(); v.Valid() {
			cur[i] = v.Float64()
		} else {
			return nil, errors.Wrapf(trust.ErrInvalidValue, "record of %s", prm.records[i].ID)
		}
	}

	for it := uint32(0); it < c.prm.Iterations; it++ {
		for i := range prm.records {
			var weightedSum, totalVoterTrust float64

			for j := range prm.records {
				if j == i {
					continue
				}

				weightedSum += c.prm.WeightSource.Weight(
					prm.records[j].ID, trust.Value(cur[j]),
					prm.records[i].ID, trust.Value(cur[i]),
				)

				totalVoterTrust += cur[j]
			}

			var normalized float64
			if totalVoterTrust > 0 {
				normalized = weightedSum / totalVoterTrust
			}

			v := trust.Value(c.prm.Alpha*normalized + (1.0-c.prm.Alpha)*c.prm.BaseTrust)
			v.Clamp()

			next[i] = v.Float64()
		}

		cur, next = next, cur
	}

	res := make([]trust.PeerRecord, n)

	for i := range prm.records {
		res[i] = prm.records[i]
		res[i].Record.SetValue(trust.Value(cur[i]))
		res[i].Record.Stamp(prm.now)
	}

	c.opts.log.Debug("global trust recomputed",
		zap.Int("records", n),
		zap.Uint32("iterations", c.prm.Iterations),
	)

	return res, nil
}
