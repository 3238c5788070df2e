package interp

import (
	"github.com/sirupsen/logrus"

	"interp/options"
	"interp/pool"
)

type Option func(*Engine)

// WithFlags replaces the engine flags. options.FlagIntern is still added when a pool is
// set with WithPool, whatever the option order.
func WithFlags(flags options.Flag) Option {
	return func(e *Engine) {
		e.flags = flags
	}
}

// WithPool interns user-defined text in p. It implies options.FlagIntern.
func WithPool(p *pool.Pool) Option {
	return func(e *Engine) {
		e.pool = p
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) {
		e.log = log
	}
}
