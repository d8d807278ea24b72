package config

import (
	"time"

	"github.com/spf13/cast"
)

// String reads configuration value
// from c by name and casts it to string.
//
// Panics if value can not be casted.
func String(c *Config, name string) string {
	x, err := cast.ToStringE(c.Value(name))
	if err != nil {
		panic(err)
	}

	return x
}

// StringSafe reads configuration value
// from c by name and casts it to string.
//
// Returns "" if value can not be casted.
func StringSafe(c *Config, name string) string {
	return cast.ToString(c.Value(name))
}

// BoolSafe reads configuration value
// from c by name and casts it to bool.
//
// Returns false if value can not be casted.
func BoolSafe(c *Config, name string) bool {
	return cast.ToBool(c.Value(name))
}

// Uint32Safe reads configuration value
// from c by name and casts it to uint32.
//
// Returns 0 if value can not be casted.
func Uint32Safe(c *Config, name string) uint32 {
	return cast.ToUint32(c.Value(name))
}

// IntSafe reads configuration value
// from c by name and casts it to int.
//
// Returns 0 if value can not be casted.
func IntSafe(c *Config, name string) int {
	return cast.ToInt(c.Value(name))
}

// Float64Safe reads configuration value
// from c by name and casts it to float64.
//
// Returns 0 if value can not be casted.
func Float64Safe(c *Config, name string) float64 {
	return cast.ToFloat64(c.Value(name))
}

// DurationSafe reads configuration value
// from c by name and casts it to time.Duration.
//
// Returns 0 if value can not be casted.
func DurationSafe(c *Config, name string) time.Duration {
	return cast.ToDuration(c.Value(name))
}
