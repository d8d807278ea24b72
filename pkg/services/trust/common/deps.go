package common

import (
	"context"
	"io"

	"github.com/vanet-dev/trust-node/pkg/services/trust"
)

// Context wraps stdlib context with accompanying meta values.
type Context interface {
	context.Context

	// Epoch must return the number of the recompute round
	// the values are processed within.
	Epoch() uint64
}

// Getter describes read access to the trust record storage.
type Getter interface {
	// Get reads the trust record of the vehicle.
	//
	// Must return an error kept by the storage implementation
	// if there is no record for the ID.
	Get(trust.PeerID) (trust.Record, error)
}

// Putter describes write access to the trust record storage.
type Putter interface {
	// Put saves the trust record of the vehicle, overwriting
	// the previous one if it exists.
	Put(trust.PeerID, trust.Record) error

	// PutBatch saves all the passed records in a single commit:
	// either every record is written, or none is and an error
	// is returned.
	PutBatch([]trust.PeerRecord) error
}

// Iterator must iterate over all stored records and call the
// passed handler on them.
type Iterator interface {
	Iterate(trust.RecordHandler) error
}

// Storage groups the full access interface to the trust
// record storage.
type Storage interface {
	Getter
	Putter
	Iterator
}

// Writer describes the interface for storing recomputed
// trust records.
type Writer interface {
	// Write performs a write operation of the record
	// and returns any error encountered.
	//
	// All values after the Close call must be flushed to the
	// physical target. Implementations can cache values before
	// Close operation.
	//
	// Write must not be called after Close.
	Write(trust.PeerRecord) error

	// Closer closes exits with method-providing Writer.
	//
	// All cached values must be flushed before
	// the Close's return.
	//
	// Methods must not be called after Close.
	io.Closer
}

// WriterProvider is a group of methods provided by an entity
// which generates keepers of recomputed trust records.
type WriterProvider interface {
	// InitWriter should return an initialized Writer.
	//
	// Initialization problems are reported via error.
	// If no error was returned, then the Writer must not be nil.
	InitWriter(Context) (Writer, error)
}

// Clock abstracts the time source of the hosting environment.
//
// The engines never read wall-clock time themselves: the current
// moment is always passed in, which keeps them deterministic.
type Clock interface {
	// Now returns the current Unix time, in seconds.
	Now() int64
}
