// Package trace provides opt-in structured logging of match attempts.
//
// Tracing is disabled by default and costs a single atomic load per guarded
// call site. It exists for debugging grammars, not for production telemetry;
// enable it from one goroutine before matching starts.
package trace

import (
	"io"
	"sync/atomic"

	"github.com/rs/zerolog"
)

var (
	logger = zerolog.Nop()
	on     atomic.Bool
)

// Enable routes trace output to w as structured debug events.
func Enable(w io.Writer) {
	logger = zerolog.New(w).With().Timestamp().Logger()
	on.Store(true)
}

// Disable restores the default no-op logger.
func Disable() {
	on.Store(false)
	logger = zerolog.Nop()
}

// Enabled reports whether tracing is active. Callers guard trace emission
// with this to keep the disabled path free of argument evaluation.
func Enabled() bool {
	return on.Load()
}

// Match records one match attempt outcome for the named combinator.
func Match(op string, offset, length int, err error) {
	if !on.Load() {
		return
	}
	ev := logger.Debug().Str("op", op).Int("offset", offset)
	if err != nil {
		ev.Err(err).Msg("miss")
		return
	}
	ev.Int("len", length).Msg("match")
}
