package eigentrustctrl

import (
	"time"
)

// MetricsRegister tracks the recompute activity.
type MetricsRegister interface {
	// ObserveRound must account the duration of one finished
	// recompute round.
	ObserveRound(time.Duration)
}
