package decay

import (
	"fmt"

	"github.com/vanet-dev/trust-node/pkg/services/trust"
)

// Prm groups the required parameters of the Decayer's constructor.
//
// All values must comply with the requirements imposed on them.
// Passing incorrect parameter values will result in constructor
// failure (error or panic depending on the implementation).
type Prm struct {
	// Factor is a linear per-second decay rate of the stored
	// trust value.
	//
	// Must not be negative. Zero disables decay.
	Factor float64
}

// Decayer reduces confidence in a stored trust value based on
// the time elapsed since the value was last updated.
//
// Decayer is pure: identical inputs always produce identical
// results, and no call has side effects.
//
// For correct operation, Decayer must be created using the
// constructor (New) based on the required parameters.
type Decayer struct {
	factor float64
}

func panicOnPrmValue(n string, v interface{}) {
	panic(fmt.Sprintf("invalid parameter %s (%T):%v", n, v, v))
}

// New creates a new instance of the Decayer.
//
// Panics if at least one value of the parameters is invalid.
//
// The created Decayer does not require additional
// initialization and is completely ready for work.
func New(prm Prm) *Decayer {
	if prm.Factor < 0 {
		panicOnPrmValue("Factor", prm.Factor)
	}

	return &Decayer{
		factor: prm.Factor,
	}
}

// Decay returns the value v reduced for the time elapsed between
// updated and now, both in Unix seconds.
//
// Elapsed time is clamped at zero: now earlier than updated is
// treated as no elapsed time rather than negative decay, which
// keeps stale or clock-skewed requests from inflating the value.
// The result always stays within the allowed value range.
func (d *Decayer) Decay(v trust.Value, updated, now int64) trust.Value {
	elapsed := now - updated
	if elapsed < 0 {
		elapsed = 0
	}

	res := trust.Value(v.Float64() * (1.0 - d.factor*float64(elapsed)))
	res.Clamp()

	return res
}
