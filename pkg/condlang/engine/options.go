package engine

import (
	"log/slog"

	"github.com/randalmurphal/condlang/pkg/condlang"
	"github.com/randalmurphal/condlang/pkg/condlang/observability"
)

// DefaultStackSize is the value-stack size, in bytes, given to each
// evaluation when WithStackSize is not used. It fits 64 pending argument
// hashes.
const DefaultStackSize = 256

// Option configures an Engine.
type Option func(*Engine)

// WithHasher sets the identifier hasher.
//
// Default: hash.XXHash{}
func WithHasher(h condlang.Hasher) Option {
	return func(e *Engine) {
		if h != nil {
			e.hasher = h
		}
	}
}

// WithIntrinsics appends hashed intrinsics to the engine's list.
// Entries must have been hashed with the engine's hasher; prefer
// WithPredicate, which hashes at New time.
//
// WithIntrinsics and WithPredicate share one list in option order, and the
// first entry matching a call wins.
func WithIntrinsics(intrinsics ...condlang.Intrinsic) Option {
	return func(e *Engine) {
		for _, in := range intrinsics {
			e.pending = append(e.pending, pendingIntrinsic{intrinsic: in})
		}
	}
}

// WithPredicate registers p under name. Names are hashed once the hasher
// is known, after all options have been applied.
//
// Example:
//
//	eng := engine.New(engine.WithPredicate("equal", builtin.Equal))
func WithPredicate(name string, p condlang.Predicate) Option {
	return func(e *Engine) {
		e.pending = append(e.pending, pendingIntrinsic{
			intrinsic: condlang.Intrinsic{Predicate: p},
			name:      name,
			named:     true,
		})
	}
}

// WithStackSize sets the per-evaluation value-stack size in bytes.
// Values below 1 are ignored.
//
// Default: DefaultStackSize
func WithStackSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.stackSize = n
		}
	}
}

// WithMaxDepth sets the grammar nesting limit.
//
// Default: condlang.DefaultMaxDepth
func WithMaxDepth(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxDepth = n
		}
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
//
// Default: observability.NoopMetrics{}
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithSpanManager sets the span manager.
//
// Default: observability.NoopSpanManager{}
func WithSpanManager(s observability.SpanManager) Option {
	return func(e *Engine) {
		if s != nil {
			e.spans = s
		}
	}
}
