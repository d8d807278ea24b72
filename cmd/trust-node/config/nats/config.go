package natsconfig

import (
	"time"

	"github.com/vanet-dev/trust-node/cmd/trust-node/config"
	broker "github.com/vanet-dev/trust-node/pkg/services/trust/broker/nats"
)

const (
	// EndpointDefault is a default NATS server endpoint.
	EndpointDefault = "nats://127.0.0.1:4222"

	// TimeoutDefault is a default NATS connection dial timeout.
	TimeoutDefault = 5 * time.Second
)

func sub(c *config.Config) *config.Config {
	return c.Sub("nats")
}

// Endpoint returns the value of "endpoint" config parameter
// from "nats" section.
//
// Returns EndpointDefault if the value is not a non-empty string.
func Endpoint(c *config.Config) string {
	if v := config.StringSafe(sub(c), "endpoint"); v != "" {
		return v
	}

	return EndpointDefault
}

// SubjectPrefix returns the value of "subject_prefix" config
// parameter from "nats" section.
//
// Returns broker.DefaultSubjectPrefix if the value is not a
// non-empty string.
func SubjectPrefix(c *config.Config) string {
	if v := config.StringSafe(sub(c), "subject_prefix"); v != "" {
		return v
	}

	return broker.DefaultSubjectPrefix
}

// Timeout returns the value of "timeout" config parameter
// from "nats" section.
//
// Returns TimeoutDefault if the value is not a positive duration.
func Timeout(c *config.Config) time.Duration {
	if v := config.DurationSafe(sub(c), "timeout"); v > 0 {
		return v
	}

	return TimeoutDefault
}
