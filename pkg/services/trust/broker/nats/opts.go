package nats

import (
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

type opts struct {
	log *zap.Logger

	subjectPrefix string

	nOpts []nats.Option
}

// Option allows to set an optional parameter of the Listener
// and the Writer.
type Option func(*opts)

// WithLogger returns an option to specify the logging component.
func WithLogger(l *zap.Logger) Option {
	return func(o *opts) {
		if l != nil {
			o.log = l
		}
	}
}

// WithSubjectPrefix returns an option to override the subject
// prefix of the trust request stream.
func WithSubjectPrefix(prefix string) Option {
	return func(o *opts) {
		if prefix != "" {
			o.subjectPrefix = prefix
		}
	}
}

// WithConnectionName returns an option to set the name of the
// established NATS connection.
func WithConnectionName(name string) Option {
	return func(o *opts) {
		o.nOpts = append(o.nOpts, nats.Name(name))
	}
}

// WithTimeout returns an option to specify a timeout of the
// NATS connection dial.
func WithTimeout(timeout time.Duration) Option {
	return func(o *opts) {
		o.nOpts = append(o.nOpts, nats.Timeout(timeout))
	}
}

func (o opts) subject(suffix string) string {
	return o.subjectPrefix + "." + suffix
}

func (o opts) streamName() string {
	return strings.ReplaceAll(o.subjectPrefix, ".", "-")
}
