// Package logging configures the zerolog logger the CLI hands to the
// parser and exporter.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options control logger construction.
type Options struct {
	// Level is one of debug, info, warn, error. Unrecognized or empty
	// values fall back to info.
	Level string

	// Pretty switches from JSON lines to a human-oriented console format.
	Pretty bool

	// Output defaults to stderr.
	Output io.Writer
}

// New builds a logger from opts.
func New(opts Options) zerolog.Logger {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
