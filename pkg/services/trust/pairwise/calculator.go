package pairwise

import (
	"fmt"

	"github.com/vanet-dev/trust-node/pkg/services/trust/decay"
)

// Prm groups the required parameters of the Calculator's constructor.
//
// All values must comply with the requirements imposed on them.
// Passing incorrect parameter values will result in constructor
// failure (error or panic depending on the implementation).
type Prm struct {
	// FeedbackWeight scales the influence of a single outcome
	// report on the subject's trust value.
	//
	// Must be in [0, 1]. Zero degenerates the update to plain
	// decay of both records.
	FeedbackWeight float64

	// Component for reducing confidence in stored values
	// before use.
	//
	// Must not be nil.
	Decayer *decay.Decayer
}

// Calculator represents the pairwise trust update engine.
//
// A single Apply call reads and writes exactly two records, the
// reporter's and the subject's, and never touches any other state.
//
// For correct operation, the Calculator must be created using
// the constructor (New) based on the required parameters and
// optional components. After successful creation, the Calculator
// is immediately ready to work.
type Calculator struct {
	prm Prm

	opts *options
}

const invalidPrmValFmt = "invalid parameter %s (%T):%v"

func panicOnPrmValue(n string, v interface{}) {
	panic(fmt.Sprintf(invalidPrmValFmt, n, v, v))
}

// New creates a new instance of the Calculator.
//
// Panics if at least one value of the parameters is invalid.
//
// The created Calculator does not require additional
// initialization and is completely ready for work.
func New(prm Prm, opts ...Option) *Calculator {
	switch {
	case prm.Decayer == nil:
		panicOnPrmValue("Decayer", prm.Decayer)
	case prm.FeedbackWeight < 0 || prm.FeedbackWeight > 1:
		panicOnPrmValue("FeedbackWeight", prm.FeedbackWeight)
	}

	o := defaultOpts()

	for _, opt := range opts {
		opt(o)
	}

	return &Calculator{
		prm:  prm,
		opts: o,
	}
}
