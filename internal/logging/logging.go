// Package logging configures the structured logger for the CLI.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New builds a logger writing to w. Debug wins over level; an empty or
// unparseable level falls back to warn so normal CLI output stays clean.
func New(w io.Writer, debug bool, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	switch {
	case debug:
		log.SetLevel(logrus.DebugLevel)
	case level != "":
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			lvl = logrus.WarnLevel
		}
		log.SetLevel(lvl)
	default:
		log.SetLevel(logrus.WarnLevel)
	}

	return log
}
