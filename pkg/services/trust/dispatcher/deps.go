package dispatcher

import (
	eigentrustctrl "github.com/vanet-dev/trust-node/pkg/services/trust/eigentrust/controller"
)

// Recomputer triggers a global recompute round.
type Recomputer interface {
	// Recompute must start the recompute round described by
	// the parameters, or silently drop the trigger if such a
	// round already runs.
	Recompute(eigentrustctrl.RecomputePrm)
}

// MetricsRegister tracks the request surface activity.
type MetricsRegister interface {
	// AddReportProcessed must account one applied outcome report.
	AddReportProcessed(truthful bool)

	// AddVehicleInitialized must account one initialized vehicle.
	AddVehicleInitialized()
}
