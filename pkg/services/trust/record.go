package trust

// Record is a persisted trust state of a single vehicle.
type Record struct {
	val Value

	updated int64
}

// Value returns the stored trust value.
func (x Record) Value() Value {
	return x.val
}

// SetValue sets the stored trust value.
func (x *Record) SetValue(v Value) {
	x.val = v
}

// Updated returns Unix seconds of the last record update.
func (x Record) Updated() int64 {
	return x.updated
}

// SetUpdated sets Unix seconds of the last record update.
func (x *Record) SetUpdated(ts int64) {
	x.updated = ts
}

// Stamp advances the update time to ts. A ts earlier than the
// stored time is ignored, so the timestamp of a record never
// decreases under clock skew.
func (x *Record) Stamp(ts int64) {
	if ts > x.updated {
		x.updated = ts
	}
}

// PeerRecord groups a vehicle identifier with its trust record.
type PeerRecord struct {
	// ID of the vehicle the record belongs to.
	ID PeerID

	// Trust state of the vehicle.
	Record Record
}

// RecordHandler describes the signature of the PeerRecord
// processing function.
type RecordHandler func(PeerRecord) error
