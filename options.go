package eograph

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures a Builder or an analysis run.
type Option func(*config)

type config struct {
	logger *log.Logger
	start  State
}

func defaultConfig() *config {
	return &config{
		logger: log.NewWithOptions(io.Discard, log.Options{}),
		start:  Solved,
	}
}

func newConfig(opts []Option) *config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithLogger sets the logger used for progress messages.
// By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStart sets the state Analyze searches from.
// Defaults to Solved.
func WithStart(s State) Option {
	return func(c *config) {
		c.start = s
	}
}
