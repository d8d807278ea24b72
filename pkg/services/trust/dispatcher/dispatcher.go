package dispatcher

import (
	"fmt"
	"sync"

	"github.com/vanet-dev/trust-node/pkg/services/trust/common"
	"github.com/vanet-dev/trust-node/pkg/services/trust/pairwise"
)

// Prm groups the required parameters of the Dispatcher's constructor.
//
// All values must comply with the requirements imposed on them.
// Passing incorrect parameter values will result in constructor
// failure (error or panic depending on the implementation).
type Prm struct {
	// Storage of the trust records.
	//
	// Must not be nil.
	Storage common.Storage

	// Component applying single outcome reports.
	//
	// Must not be nil.
	Pairwise *pairwise.Calculator

	// Component triggering global recompute rounds.
	//
	// Must not be nil.
	Recomputer Recomputer

	// Time source requests are stamped with.
	//
	// Must not be nil.
	Clock common.Clock

	// Guard serializing record-modifying requests against each
	// other and against global recompute rounds. The recompute
	// controller must be given the same instance.
	//
	// Must not be nil.
	Guard sync.Locker
}

// Dispatcher serves the request surface of the trust engine:
// vehicle initialization, outcome reports and global recompute
// triggers. It loads the involved records from the storage,
// invokes the engines and writes the results back.
//
// Each request is processed within the single call: all
// resulting records of the request are written back in a single
// commit, or an error is returned and the storage is left as is.
// Record-modifying requests are serialized through the shared
// guard, so concurrent requests touching the same vehicle never
// interleave.
//
// For correct operation, the Dispatcher must be created using
// the constructor (New) based on the required parameters and
// optional components. After successful creation, the Dispatcher
// is immediately ready to work.
type Dispatcher struct {
	prm Prm

	opts *options
}

const invalidPrmValFmt = "invalid parameter %s (%T):%v"

func panicOnPrmValue(n string, v interface{}) {
	panic(fmt.Sprintf(invalidPrmValFmt, n, v, v))
}

// New creates a new instance of the Dispatcher.
//
// Panics if at least one value of the parameters is invalid.
//
// The created Dispatcher does not require additional
// initialization and is completely ready for work.
func New(prm Prm, opts ...Option) *Dispatcher {
	switch {
	case prm.Storage == nil:
		panicOnPrmValue("Storage", prm.Storage)
	case prm.Pairwise == nil:
		panicOnPrmValue("Pairwise", prm.Pairwise)
	case prm.Recomputer == nil:
		panicOnPrmValue("Recomputer", prm.Recomputer)
	case prm.Clock == nil:
		panicOnPrmValue("Clock", prm.Clock)
	case prm.Guard == nil:
		panicOnPrmValue("Guard", prm.Guard)
	}

	o := defaultOpts()

	for _, opt := range opts {
		opt(o)
	}

	return &Dispatcher{
		prm:  prm,
		opts: o,
	}
}
