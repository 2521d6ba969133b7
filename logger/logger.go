// Package logger builds the logrus loggers handed to simulation components
package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options selects level, format and destination
// Level accepts any logrus level name; Format is "text" or "json"
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// New builds a logger from opts
// An empty level means info; a nil output discards
func New(opts Options) (*logrus.Logger, error) {
	log := logrus.New()

	name := opts.Level
	if name == "" {
		name = "info"
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)

	switch strings.ToLower(opts.Format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			DisableColors:    true,
			QuoteEmptyFields: true,
		})
	default:
		return nil, fmt.Errorf("log format %q: want text or json", opts.Format)
	}

	out := opts.Output
	if out == nil {
		out = io.Discard
	}
	log.SetOutput(out)

	return log, nil
}

// Discard returns a logger that drops everything
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}

// Component scopes log to a named component
func Component(log logrus.FieldLogger, name string) logrus.FieldLogger {
	if log == nil {
		log = Discard()
	}
	return log.WithFields(logrus.Fields{"component": name})
}
