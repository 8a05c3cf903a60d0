package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the CLI logger writing human-readable output to stderr.
// The level string comes from config or PTLADMIN_LOG_LEVEL; unknown values
// fall back to info. PTLADMIN_VERBOSE=1 forces debug regardless of level.
func New(level string) zerolog.Logger {
	if os.Getenv("PTLADMIN_VERBOSE") == "1" {
		level = "debug"
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Discard returns a logger that drops everything; used as the default in
// library code so callers who do not care about diagnostics pay nothing.
func Discard() zerolog.Logger {
	return zerolog.New(io.Discard)
}
