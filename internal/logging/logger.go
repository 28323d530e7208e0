// Package logging builds the logrus loggers used across the service.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	Level string
	// File, when set, receives a copy of every entry through a rotating writer.
	File   string
	Output io.Writer
}

// New returns a text logger writing to Output (stdout by default).
func New(opts Options) (*logrus.Logger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.File != "" {
		out = io.MultiWriter(out, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)

	if opts.Level != "" {
		if err := SetTraceLevel(logger, opts.Level); err != nil {
			return nil, err
		}
	}
	return logger, nil
}

// SetTraceLevel switches logger to the named level. The level is left
// unchanged when name is not a logrus level.
func SetTraceLevel(logger *logrus.Logger, name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("set trace level: %w", err)
	}
	logger.SetLevel(level)
	return nil
}

// Module tags every entry of logger with the component name.
func Module(logger logrus.FieldLogger, name string) logrus.FieldLogger {
	return OrDiscard(logger).WithField(FieldModule, name)
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// OrDiscard returns logger, or a discarding logger when logger is nil.
func OrDiscard(logger logrus.FieldLogger) logrus.FieldLogger {
	if logger == nil {
		return Discard()
	}
	return logger
}
