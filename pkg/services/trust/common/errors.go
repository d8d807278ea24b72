package common

import (
	"errors"
)

// ErrRecordNotFound is a sentinel returned by Getter
// implementations when there is no record stored for the
// requested vehicle.
var ErrRecordNotFound = errors.New("trust record not found")
