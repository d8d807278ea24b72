package engineconfig

import (
	"time"

	"github.com/vanet-dev/trust-node/cmd/trust-node/config"
)

const (
	// FeedbackWeightDefault is a default influence of a single
	// outcome report.
	FeedbackWeightDefault = 0.1

	// DecayFactorDefault is a default linear per-second decay
	// rate of stored trust values.
	DecayFactorDefault = 0.0001

	// AlphaDefault is a default damping factor of the global
	// recompute.
	AlphaDefault = 0.85

	// BaseTrustDefault is a default fixed prior of the global
	// recompute.
	BaseTrustDefault = 0.5

	// VoteThresholdDefault is a default minimum value a vehicle
	// must hold to receive positive votes.
	VoteThresholdDefault = 0.5

	// IterationsDefault is a default number of propagation
	// iterations per recompute round.
	IterationsDefault = 5

	// RecomputeIntervalDefault is a default period of the
	// automatic recompute rounds.
	RecomputeIntervalDefault = 10 * time.Minute
)

func sub(c *config.Config) *config.Config {
	return c.Sub("engine")
}

func float(c *config.Config, name string, def float64) float64 {
	if sub(c).Value(name) != nil {
		return config.Float64Safe(sub(c), name)
	}

	return def
}

// FeedbackWeight returns the value of "feedback_weight" config
// parameter from "engine" section.
//
// Returns FeedbackWeightDefault if the value is not set.
func FeedbackWeight(c *config.Config) float64 {
	return float(c, "feedback_weight", FeedbackWeightDefault)
}

// DecayFactor returns the value of "decay_factor" config
// parameter from "engine" section.
//
// Returns DecayFactorDefault if the value is not set.
func DecayFactor(c *config.Config) float64 {
	return float(c, "decay_factor", DecayFactorDefault)
}

// Alpha returns the value of "alpha" config parameter
// from "engine" section.
//
// Returns AlphaDefault if the value is not set.
func Alpha(c *config.Config) float64 {
	return float(c, "alpha", AlphaDefault)
}

// BaseTrust returns the value of "base_trust" config parameter
// from "engine" section.
//
// Returns BaseTrustDefault if the value is not set.
func BaseTrust(c *config.Config) float64 {
	return float(c, "base_trust", BaseTrustDefault)
}

// VoteThreshold returns the value of "vote_threshold" config
// parameter from "engine" section.
//
// Returns VoteThresholdDefault if the value is not set.
func VoteThreshold(c *config.Config) float64 {
	return float(c, "vote_threshold", VoteThresholdDefault)
}

// Iterations returns the value of "iterations" config parameter
// from "engine" section.
//
// Returns IterationsDefault if the value is not a positive number.
func Iterations(c *config.Config) uint32 {
	if v := config.Uint32Safe(sub(c), "iterations"); v > 0 {
		return v
	}

	return IterationsDefault
}

// RecomputeInterval returns the value of "recompute_interval"
// config parameter from "engine" section.
//
// Returns RecomputeIntervalDefault if the value is not a
// positive duration.
func RecomputeInterval(c *config.Config) time.Duration {
	if v := config.DurationSafe(sub(c), "recompute_interval"); v > 0 {
		return v
	}

	return RecomputeIntervalDefault
}
