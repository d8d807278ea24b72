package storageconfig

import (
	"github.com/vanet-dev/trust-node/cmd/trust-node/config"
)

const (
	// PathDefault is a default path to the record database file.
	PathDefault = "trust.db"

	// CacheSizeDefault is a default capacity of the record
	// read cache.
	CacheSizeDefault = 1000
)

func sub(c *config.Config) *config.Config {
	return c.Sub("storage")
}

// Path returns the value of "path" config parameter
// from "storage" section.
//
// Returns PathDefault if the value is not a non-empty string.
func Path(c *config.Config) string {
	if v := config.StringSafe(sub(c), "path"); v != "" {
		return v
	}

	return PathDefault
}

// CacheSize returns the value of "cache_size" config parameter
// from "storage" section.
//
// Returns CacheSizeDefault if the value is not a positive number.
func CacheSize(c *config.Config) int {
	if v := config.IntSafe(sub(c), "cache_size"); v > 0 {
		return v
	}

	return CacheSizeDefault
}
