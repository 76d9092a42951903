// SPDX-License-Identifier: MIT

package game

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	log logrus.FieldLogger
	id  uuid.UUID
}

func defaultOptions() sessionOptions {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return sessionOptions{log: l}
}

// WithLogger routes move diagnostics to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *sessionOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// WithID fixes the session ID instead of generating a random one.
func WithID(id uuid.UUID) Option {
	return func(o *sessionOptions) {
		o.id = id
	}
}
