package eigentrustctrl

import (
	"context"
	"fmt"
	"sync"

	"github.com/vanet-dev/trust-node/pkg/services/trust/common"
	eigentrustcalc "github.com/vanet-dev/trust-node/pkg/services/trust/eigentrust/calculator"
	"github.com/vanet-dev/trust-node/pkg/util"
)

// Prm groups the required parameters of the Controller's constructor.
//
// All values must comply with the requirements imposed on them.
// Passing incorrect parameter values will result in constructor
// failure (error or panic depending on the implementation).
type Prm struct {
	// Component computing the recomputed trust values of a batch.
	//
	// Must not be nil.
	Calculator *eigentrustcalc.Calculator

	// Source of the stored records the batch is assembled from.
	//
	// Must not be nil.
	RecordSource common.Iterator

	// Target of the recomputed records.
	//
	// Must not be nil.
	ResultTarget common.WriterProvider

	// Time source the records are stamped with.
	//
	// Must not be nil.
	Clock common.Clock

	// Routine execution pool for a single recompute round.
	//
	// Must not be nil.
	WorkerPool util.WorkerPool

	// Guard serializing recompute rounds against concurrent
	// record-modifying requests. The request dispatcher must be
	// given the same instance.
	//
	// Must not be nil.
	Guard sync.Locker
}

// Controller represents the global recompute controller.
//
// Controller's main goal is to tie the recompute engine to its
// collaborators: it assembles the full batch from the record
// source, runs the calculator on the worker pool and writes the
// results back. At most one round per epoch number runs at a
// time, duplicate triggers are ignored. A round holds the shared
// guard from batch assembly through write-back, so no report is
// applied between the snapshot and the results and then lost to
// stale recompute output.
//
// For correct operation, the Controller must be created using
// the constructor (New) based on the required parameters and
// optional components. After successful creation, the Controller
// is immediately ready to work.
type Controller struct {
	prm Prm

	opts *options

	mtx  sync.Mutex
	mCtx map[uint64]context.CancelFunc
}

const invalidPrmValFmt = "invalid parameter %s (%T):%v"

func panicOnPrmValue(n string, v interface{}) {
	panic(fmt.Sprintf(invalidPrmValFmt, n, v, v))
}

// New creates a new instance of the Controller.
//
// Panics if at least one value of the parameters is invalid.
//
// The created Controller does not require additional
// initialization and is completely ready for work.
func New(prm Prm, opts ...Option) *Controller {
	switch {
	case prm.Calculator == nil:
		panicOnPrmValue("Calculator", prm.Calculator)
	case prm.RecordSource == nil:
		panicOnPrmValue("RecordSource", prm.RecordSource)
	case prm.ResultTarget == nil:
		panicOnPrmValue("ResultTarget", prm.ResultTarget)
	case prm.Clock == nil:
		panicOnPrmValue("Clock", prm.Clock)
	case prm.WorkerPool == nil:
		panicOnPrmValue("WorkerPool", prm.WorkerPool)
	case prm.Guard == nil:
		panicOnPrmValue("Guard", prm.Guard)
	}

	o := defaultOpts()

	for _, opt := range opts {
		opt(o)
	}

	return &Controller{
		prm:  prm,
		opts: o,
		mCtx: make(map[uint64]context.CancelFunc),
	}
}
