// Package logging configures the logrus loggers used by the interpolation engine and its
// command line tool.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// TimestampFormat is used by text and JSON output.
const TimestampFormat = "2006-01-02T15:04:05.000000 -0700"

// Config selects level, format and destination of a logger.
type Config struct {
	// Level is a logrus level name; empty means warn.
	Level string `yaml:"log_level"`
	// Format is "text" or "json"; empty means text.
	Format string `yaml:"log_format"`
	// Output defaults to stderr.
	Output io.Writer `yaml:"-"`
}

var (
	once       sync.Once
	baseLogger *logrus.Logger
)

// Base returns the shared logger: stderr, warnings and above, text output.
func Base() *logrus.Logger {
	once.Do(func() {
		baseLogger = mustNew(Config{})
	})

	return baseLogger
}

// New builds a logger from cfg.
func New(cfg Config) (*logrus.Logger, error) {
	l := logrus.New()

	level := logrus.WarnLevel
	if cfg.Level != "" {
		var err error
		if level, err = logrus.ParseLevel(cfg.Level); err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
	}
	l.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{TimestampFormat: TimestampFormat})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: TimestampFormat})
	default:
		return nil, fmt.Errorf("log format %q: expected text or json", cfg.Format)
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	l.SetOutput(out)

	return l, nil
}

func mustNew(cfg Config) *logrus.Logger {
	l, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return l
}

// Nop returns a logger discarding everything.
func Nop() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}
