// SPDX-License-Identifier: MIT

package minefield

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a Field at construction.
type Option func(*fieldOptions)

type fieldOptions struct {
	log logrus.FieldLogger
}

// discardLogger returns a logger that drops everything.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

func defaultOptions() fieldOptions {
	return fieldOptions{log: discardLogger()}
}

// WithLogger routes setup diagnostics to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *fieldOptions) {
		if l != nil {
			o.log = l
		}
	}
}
