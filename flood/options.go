// SPDX-License-Identifier: MIT

package flood

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/ndmines/tensor"
)

// Option configures Run.
type Option func(*options)

type options struct {
	log      logrus.FieldLogger
	onReveal func(c tensor.Coord) // called per newly uncovered cell, in visit order
}

func defaultOptions() options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return options{log: l, onReveal: func(tensor.Coord) {}}
}

// WithLogger routes fill diagnostics to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithOnReveal registers a hook called with each newly uncovered coordinate.
func WithOnReveal(fn func(c tensor.Coord)) Option {
	return func(o *options) {
		if fn != nil {
			o.onReveal = fn
		}
	}
}
