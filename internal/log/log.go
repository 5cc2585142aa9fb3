// Package log builds the diagnostic logger used by the service and the CLI.
package log

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options selects the level, format and destination of the logger.
type Options struct {
	Level   string
	Format  string
	Version string
	Out     io.Writer
}

// NewLogger returns a logger tagged with the application version.
// GOKUZ_LOG_LEVEL overrides the configured level when set to a valid level.
func NewLogger(opts Options) *logrus.Entry {
	log := logrus.New()

	log.SetLevel(getLogLevel(opts.Level))

	if opts.Out != nil {
		log.SetOutput(opts.Out)
	} else {
		log.SetOutput(os.Stderr)
	}

	if strings.EqualFold(opts.Format, "json") {
		log.Formatter = &logrus.JSONFormatter{}
	} else {
		log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	}

	return log.WithFields(logrus.Fields{
		"version": opts.Version,
	})
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard

	return logrus.NewEntry(log)
}

func getLogLevel(configured string) logrus.Level {
	if level, err := logrus.ParseLevel(os.Getenv("GOKUZ_LOG_LEVEL")); err == nil {
		return level
	}

	level, err := logrus.ParseLevel(configured)
	if err != nil {
		return logrus.InfoLevel
	}

	return level
}
