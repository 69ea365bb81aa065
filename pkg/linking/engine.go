// Package linking implements the semantic linking engine: it turns a flat
// collection of free-text documents into a weighted relevance graph and
// serves recommendations, live link suggestions, and wiki-link resolution
// from the same scoring logic.
//
// All computation is stateless and recomputed per request from the current
// document set; nothing in this package is persisted.
package linking

import (
	"runtime"
	"time"

	"github.com/notemesh/backend/pkg/store"
)

// Engine evaluates a user's corpus against the similarity model. It holds
// no mutable state between calls; concurrent use is safe.
type Engine struct {
	store       store.DocumentStore
	maxParallel int
	now         func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithParallelism bounds the number of concurrent pair evaluations during
// a graph build. Values below 1 are ignored.
func WithParallelism(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.maxParallel = n
		}
	}
}

// WithClock overrides the time source used by the live-suggestion path.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an engine backed by the given document store.
func NewEngine(st store.DocumentStore, opts ...Option) *Engine {
	e := &Engine{
		store:       st,
		maxParallel: runtime.NumCPU(),
		now:         time.Now,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}
