package metricsconfig

import (
	"time"

	"github.com/vanet-dev/trust-node/cmd/trust-node/config"
)

const (
	// ShutdownTimeoutDefault is a default value for metrics HTTP
	// service timeout to shut down.
	ShutdownTimeoutDefault = 30 * time.Second

	// AddressDefault is a default value for metrics HTTP
	// service endpoint.
	AddressDefault = "127.0.0.1:9090"
)

func sub(c *config.Config) *config.Config {
	return c.Sub("metrics")
}

// Enabled returns the value of "enabled" config parameter
// from "metrics" section.
func Enabled(c *config.Config) bool {
	return config.BoolSafe(sub(c), "enabled")
}

// ShutdownTimeout returns the value of "shutdown_timeout" config
// parameter from "metrics" section.
//
// Returns ShutdownTimeoutDefault if the value is not a
// positive duration.
func ShutdownTimeout(c *config.Config) time.Duration {
	if v := config.DurationSafe(sub(c), "shutdown_timeout"); v > 0 {
		return v
	}

	return ShutdownTimeoutDefault
}

// Address returns the value of "address" config parameter
// from "metrics" section.
//
// Returns AddressDefault if the value is not a non-empty string.
func Address(c *config.Config) string {
	if v := config.StringSafe(sub(c), "address"); v != "" {
		return v
	}

	return AddressDefault
}
