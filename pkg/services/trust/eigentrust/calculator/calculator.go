package eigentrustcalc

import (
	"fmt"
)

// Prm groups the required parameters of the Calculator's constructor.
//
// All values must comply with the requirements imposed on them.
// Passing incorrect parameter values will result in constructor
// failure (error or panic depending on the implementation).
type Prm struct {
	// Alpha is a damping factor balancing propagated trust
	// against the fixed prior.
	//
	// Must be in (0, 1).
	Alpha float64

	// BaseTrust is a fixed prior every value is pulled toward.
	//
	// Must be in [0, 1].
	BaseTrust float64

	// Iterations is a number of propagation iterations performed
	// per recompute. The loop is bounded by this count rather
	// than by a convergence test.
	//
	// Must be positive.
	Iterations uint32

	// Source of pairwise vote weights.
	//
	// Must not be nil.
	WeightSource WeightSource
}

// Calculator represents the global trust recompute engine.
//
// A single Calculate call materializes the whole record set and
// iterates over it a fixed number of times, so the cost is a hard
// function of the set size and the iteration count. The engine is
// synchronous and performs no I/O.
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
	case prm.Alpha <= 0 || prm.Alpha >= 1:
		panicOnPrmValue("Alpha", prm.Alpha)
	case prm.BaseTrust < 0 || prm.BaseTrust > 1:
		panicOnPrmValue("BaseTrust", prm.BaseTrust)
	case prm.Iterations == 0:
		panicOnPrmValue("Iterations", prm.Iterations)
	case prm.WeightSource == nil:
		panicOnPrmValue("WeightSource", prm.WeightSource)
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
