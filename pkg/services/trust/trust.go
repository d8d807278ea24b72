package trust

// Value represents the level of trust in a vehicle.
//
// Values are kept within [MinValue, MaxValue]. All engine operations
// clamp their results into this range instead of failing.
type Value float64

const (
	// MinValue is a minimum of the trust value range.
	MinValue Value = 0

	// MaxValue is a maximum of the trust value range.
	MaxValue Value = 1
)

// Float64 converts Value to float64.
func (v Value) Float64() float64 {
	return float64(v)
}

// Valid checks if Value is within the allowed range.
func (v Value) Valid() bool {
	return v >= MinValue && v <= MaxValue
}

// Clamp pulls Value into the allowed range.
//
// Out-of-range results of arithmetic are silent recoveries,
// not errors: the triggering operation is preserved.
func (v *Value) Clamp() {
	switch {
	case *v < MinValue:
		*v = MinValue
	case *v > MaxValue:
		*v = MaxValue
	}
}
