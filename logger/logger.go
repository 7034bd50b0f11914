// Package logger holds the package-level structured logger the prover
// reports its round-by-round progress through. It mirrors gnark's own
// logger package: a swappable zerolog.Logger behind a mutex, defaulting to
// stderr, so a caller embedding this prover in a larger service can redirect
// or silence it without touching the prover's call sites.
package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// Logger returns the current package-level logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Set replaces the package-level logger, e.g. to redirect output or attach
// additional fields.
func Set(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// Disable silences the logger by replacing it with a no-op logger.
func Disable() {
	Set(zerolog.Nop())
}
