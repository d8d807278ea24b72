package eigentrustcalc

import (
	"github.com/vanet-dev/trust-node/pkg/services/trust"
)

// WeightSource provides the vote weight of one vehicle toward
// another within a recompute iteration.
//
// The calculator itself keeps no trust-relationship graph: the
// weight of every implicit edge is delegated here, so an explicit
// edge-weight provider can replace the self-referential default
// without changing the iteration structure.
type WeightSource interface {
	// Weight must return the vote weight of the voter toward the
	// subject given their values current for the iteration.
	//
	// Must be deterministic. Returned weight must not be negative.
	Weight(voter trust.PeerID, voterVal trust.Value, subject trust.PeerID, subjectVal trust.Value) float64
}

type thresholdWeightSource struct {
	threshold float64
}

// NewThresholdWeightSource returns a WeightSource in which every
// vehicle votes with a weight equal to its own current value, and
// only subjects whose current value exceeds the threshold receive
// votes at all.
func NewThresholdWeightSource(threshold float64) WeightSource {
	return thresholdWeightSource{
		threshold: threshold,
	}
}

func (x thresholdWeightSource) Weight(_ trust.PeerID, voterVal trust.Value, _ trust.PeerID, subjectVal trust.Value) float64 {
	if subjectVal.Float64() > x.threshold {
		return voterVal.Float64()
	}

	return 0
}
