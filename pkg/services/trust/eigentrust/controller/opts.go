package eigentrustctrl

import (
	"time"

	"go.uber.org/zap"
)

// Option sets an optional parameter of Controller.
type Option func(*options)

type options struct {
	log *zap.Logger

	metrics MetricsRegister
}

type noopMetrics struct{}

func (noopMetrics) ObserveRound(time.Duration) {}

func defaultOpts() *options {
	return &options{
		log:     zap.L(),
		metrics: noopMetrics{},
	}
}

// WithLogger returns an option to specify the logging component.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMetricsRegister returns an option to specify the metrics component.
func WithMetricsRegister(m MetricsRegister) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}
