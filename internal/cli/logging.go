// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/ndmines/internal/config"
)

// newLogger builds the process logger. --verbose forces debug; otherwise the
// level comes from NDMINES_LOG_LEVEL.
func newLogger(w io.Writer, env config.Env, verbose bool) (*logrus.Logger, error) {
	lvl := logrus.DebugLevel
	if !verbose {
		var err error
		if lvl, err = env.Level(); err != nil {
			return nil, err
		}
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return log, nil
}
