package httputil

import (
	"fmt"
	"net/http"
	"time"
)

// Prm groups the required parameters of the Server's constructor.
//
// All values must comply with the requirements imposed on them.
// Passing incorrect parameter values will result in constructor
// failure (error or panic depending on the implementation).
type Prm struct {
	// TCP address for the server to listen on.
	//
	// Must be a valid TCP address.
	Address string

	// Must not be nil.
	Handler http.Handler
}

// Server represents a wrapper over http.Server
// that provides an interface to start and stop
// listening routine.
//
// For correct operation, Server must be created
// using the constructor (New) based on the required
// parameters and optional components.
type Server struct {
	shutdownTimeout time.Duration

	srv *http.Server
}

const invalidValFmt = "invalid %s %s (%T): %v"

func panicOnPrmValue(n string, v interface{}) {
	panic(fmt.Sprintf(invalidValFmt, "parameter", n, v, v))
}

// Option sets an optional parameter of Server.
type Option func(*cfg)

type cfg struct {
	shutdownTimeout time.Duration
}

func defaultCfg() *cfg {
	return &cfg{
		shutdownTimeout: 15 * time.Second,
	}
}

// WithShutdownTimeout returns an option to set the timeout
// of the graceful shutdown.
//
// Must be positive.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(c *cfg) {
		if timeout > 0 {
			c.shutdownTimeout = timeout
		}
	}
}

// New creates a new instance of the Server.
//
// Panics if at least one value of the parameters is invalid.
//
// The created Server does not require additional
// initialization and is completely ready for work.
func New(prm Prm, opts ...Option) *Server {
	switch {
	case prm.Address == "":
		panicOnPrmValue("Address", prm.Address)
	case prm.Handler == nil:
		panicOnPrmValue("Handler", prm.Handler)
	}

	c := defaultCfg()

	for _, opt := range opts {
		opt(c)
	}

	return &Server{
		shutdownTimeout: c.shutdownTimeout,
		srv: &http.Server{
			Addr:    prm.Address,
			Handler: prm.Handler,
		},
	}
}
