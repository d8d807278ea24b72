package trust

import (
	"errors"
)

// ErrInvalidValue is returned when a trust value read from
// the upstream record is out of the [MinValue, MaxValue] range.
// Such a record is treated as corrupted and is never silently
// clamped.
var ErrInvalidValue = errors.New("trust value is out of range")
