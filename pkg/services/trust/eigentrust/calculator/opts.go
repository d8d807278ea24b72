package eigentrustcalc

import (
	"go.uber.org/zap"
)

// Option sets an optional parameter of Calculator.
type Option func(*options)

type options struct {
	log *zap.Logger
}

func defaultOpts() *options {
	return &options{
		log: zap.L(),
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
