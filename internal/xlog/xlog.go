// Package xlog gives the internal packages a single, shared structured
// logger. The core never logs on a successful call path; this exists
// solely for the teacher's log-then-panic convention (helper.Panic in
// vlipovetskii-go-zmanim) applied to states the arithmetic packages
// compute for themselves and that therefore cannot legally occur — never
// for caller input, which constructors reject by returning ok=false
// instead.
package xlog

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()
)

// SetLogger overrides the package logger, mainly for tests that want to
// assert on emitted entries or silence them entirely.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Fail logs an invariant violation at panic level and panics, mirroring
// the teacher's helper.Panic. Reserved for states an internally-computed
// input cannot legally produce; never call this on a path reachable from
// caller-supplied input.
func Fail(component string, err error, fields map[string]any) {
	mu.RLock()
	l := logger
	mu.RUnlock()

	evt := l.Panic().Str("component", component)
	for k, v := range fields {
		evt = evt.Interface(k, v)
	}
	evt.Err(err).Msg("hdate: invariant violation")
}
