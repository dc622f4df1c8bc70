// Package engine wraps condlang.Run with a fixed intrinsic set, pooled
// value stacks, and logging, metrics and tracing.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/randalmurphal/condlang/pkg/condlang"
	"github.com/randalmurphal/condlang/pkg/condlang/hash"
	"github.com/randalmurphal/condlang/pkg/condlang/observability"
)

// ErrNilContext indicates Evaluate was called with a nil context.
var ErrNilContext = errors.New("context cannot be nil")

// pendingIntrinsic is an intrinsic as given to New. Entries added by
// WithPredicate carry a name and are hashed once the hasher is final.
type pendingIntrinsic struct {
	intrinsic condlang.Intrinsic
	name      string
	named     bool
}

// Engine evaluates conditions against a fixed set of intrinsics.
// It is safe for concurrent use; each evaluation gets its own value stack.
type Engine struct {
	hasher     condlang.Hasher
	intrinsics []condlang.Intrinsic
	pending    []pendingIntrinsic
	stackSize  int
	maxDepth   int

	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager

	stacks sync.Pool
}

// New creates an Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		hasher:    hash.XXHash{},
		stackSize: DefaultStackSize,
		maxDepth:  condlang.DefaultMaxDepth,
		metrics:   observability.NoopMetrics{},
		spans:     observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.intrinsics = make([]condlang.Intrinsic, 0, len(e.pending))
	for _, p := range e.pending {
		in := p.intrinsic
		if p.named {
			in.Name = e.hasher.Hash(p.name)
		}
		e.intrinsics = append(e.intrinsics, in)
	}
	e.pending = nil

	size := e.stackSize
	e.stacks.New = func() any {
		buf := make([]byte, size)
		return &buf
	}
	return e
}

// Hasher returns the hasher the engine's intrinsics were keyed with.
func (e *Engine) Hasher() condlang.Hasher { return e.hasher }

// Intrinsics returns the engine's intrinsic list. It must not be modified.
func (e *Engine) Intrinsics() []condlang.Intrinsic { return e.intrinsics }

// Run evaluates source using caller-supplied stack storage and returns the
// raw Result. It does no logging and records no metrics.
func (e *Engine) Run(source string, stack []byte, userData any) condlang.Result {
	return condlang.Run(source, stack, e.intrinsics, e.hasher, userData,
		condlang.WithMaxDepth(e.maxDepth))
}

// Evaluate parses and evaluates source. The returned error, if any, is one
// of the condlang failure types and can be inspected with errors.As or
// matched with errors.Is against the condlang sentinels.
func (e *Engine) Evaluate(ctx context.Context, source string, userData any) (bool, error) {
	if ctx == nil {
		return false, ErrNilContext
	}

	evalID := uuid.NewString()
	ctx, span := e.spans.StartEvalSpan(ctx, evalID, source)
	callLogger := observability.EnrichLogger(e.logger, evalID)
	observability.LogEvalStart(e.logger, evalID, source)
	done := observability.TimedOperation()

	bufp := e.stacks.Get().(*[]byte)
	defer e.stacks.Put(bufp)

	result := condlang.Run(source, *bufp, e.intrinsics, e.hasher, userData,
		condlang.WithMaxDepth(e.maxDepth),
		condlang.WithCallObserver(func(name string, v bool) {
			e.metrics.RecordIntrinsicCall(ctx, name, v)
			observability.LogIntrinsicCall(callLogger, name, v)
		}),
	)

	elapsed := done()
	value, err := condlang.Outcome(result)
	status := result.Status().String()
	e.metrics.RecordEvaluation(ctx, status, elapsed)
	e.spans.EndSpanWithError(span, err)

	if err != nil {
		observability.LogEvalError(e.logger, evalID, source, status, err)
		return false, err
	}
	observability.LogEvalComplete(e.logger, evalID, value, float64(elapsed.Microseconds())/1000)
	return value, nil
}

// EvaluateAll evaluates each source in order and stops at the first error.
func (e *Engine) EvaluateAll(ctx context.Context, sources []string, userData any) ([]bool, error) {
	out := make([]bool, 0, len(sources))
	for _, src := range sources {
		v, err := e.Evaluate(ctx, src, userData)
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}
