// SPDX-License-Identifier: MIT

package repath

import (
	"io"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/letterbox/astar"
)

// Options configures a World.
//
// Workers   – maximum number of destination groups searched in parallel.
// Logger    – receives batch summaries (Debug) and unreachable agents (Info).
// Heuristic – passed to every search; nil means astar.Manhattan.
// Search    – extra astar options applied to every search.
type Options struct {
	Workers   int
	Logger    logrus.FieldLogger
	Heuristic astar.Heuristic
	Search    []astar.Option
}

// Option is a functional option for NewWorld.
type Option func(*Options)

// DefaultOptions returns GOMAXPROCS workers, a discarding logger, the
// Manhattan heuristic and default search options.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Workers:   runtime.GOMAXPROCS(0),
		Logger:    l,
		Heuristic: astar.Manhattan,
	}
}

// WithWorkers bounds the number of groups searched concurrently.
// n must be at least 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("repath: WithWorkers requires n >= 1")
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger sets the logger. A nil logger panics.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("repath: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithHeuristic replaces the search heuristic.
func WithHeuristic(h astar.Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithSearchOptions appends astar options applied to every search.
func WithSearchOptions(opts ...astar.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}
