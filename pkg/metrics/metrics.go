package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "trust_node"

const (
	dispatcherSubsystem = "dispatcher"
	recomputeSubsystem  = "recompute"
)

// NodeMetrics groups the metrics of the trust node exposed
// via prometheus.
type NodeMetrics struct {
	reportsProcessed *prometheus.CounterVec

	vehiclesInitialized prometheus.Counter

	recomputeDuration prometheus.Histogram

	epoch prometheus.Gauge
}

// NewNodeMetrics creates and registers node metrics.
func NewNodeMetrics() *NodeMetrics {
	reportsProcessed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: dispatcherSubsystem,
		Name:      "reports_processed_total",
		Help:      "Number of applied outcome reports.",
	}, []string{"outcome"})
	prometheus.MustRegister(reportsProcessed)

	vehiclesInitialized := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: dispatcherSubsystem,
		Name:      "vehicles_initialized_total",
		Help:      "Number of initialized vehicles.",
	})
	prometheus.MustRegister(vehiclesInitialized)

	recomputeDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: recomputeSubsystem,
		Name:      "duration_seconds",
		Help:      "Duration of global trust recompute rounds.",
	})
	prometheus.MustRegister(recomputeDuration)

	epoch := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: recomputeSubsystem,
		Name:      "epoch",
		Help:      "Number of the last triggered recompute round.",
	})
	prometheus.MustRegister(epoch)

	return &NodeMetrics{
		reportsProcessed:    reportsProcessed,
		vehiclesInitialized: vehiclesInitialized,
		recomputeDuration:   recomputeDuration,
		epoch:               epoch,
	}
}

// AddReportProcessed accounts one applied outcome report.
func (m *NodeMetrics) AddReportProcessed(truthful bool) {
	outcome := "false"
	if truthful {
		outcome = "truthful"
	}

	m.reportsProcessed.With(prometheus.Labels{"outcome": outcome}).Inc()
}

// AddVehicleInitialized accounts one initialized vehicle.
func (m *NodeMetrics) AddVehicleInitialized() {
	m.vehiclesInitialized.Inc()
}

// ObserveRound accounts the duration of one recompute round.
func (m *NodeMetrics) ObserveRound(d time.Duration) {
	m.recomputeDuration.Observe(d.Seconds())
}

// SetEpoch updates the epoch metric.
func (m *NodeMetrics) SetEpoch(epoch uint64) {
	m.epoch.Set(float64(epoch))
}
