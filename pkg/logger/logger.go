// Package logger owns the process-wide zerolog instance. Call Init once
// during startup, then hand sub-loggers to each subsystem via Component.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls how the root logger is built.
type Options struct {
	// Level is the minimum level emitted: trace, debug, info, warn or
	// error. Anything unrecognised falls back to info.
	Level string
	// Pretty switches to colourised console output for local development.
	// Leave false in production so logs stay machine-readable JSON.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	mu   sync.Mutex
	root *zerolog.Logger
)

// Init builds the root logger. The first call wins; later calls return the
// existing instance unchanged.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if root != nil {
		return *root
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl := parseLevel(opts.Level)
	zerolog.SetGlobalLevel(lvl)

	l := zerolog.New(out).Level(lvl).With().Timestamp().Caller().Logger()
	root = &l
	return l
}

// Get returns the root logger. Panics when Init has not run yet, which
// always indicates a wiring bug in main.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if root == nil {
		panic("logger: Get() called before Init()")
	}
	return *root
}

// Component returns a child of the root logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}

// Reset discards the root logger so the next Init rebuilds it. Test use only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	root = nil
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
