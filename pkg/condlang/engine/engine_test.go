package engine_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/condlang/pkg/condlang"
	"github.com/randalmurphal/condlang/pkg/condlang/builtin"
	"github.com/randalmurphal/condlang/pkg/condlang/engine"
	"github.com/randalmurphal/condlang/pkg/condlang/hash"
)

// recordingMetrics captures calls for assertions.
type recordingMetrics struct {
	mu       sync.Mutex
	statuses []string
	calls    []string
}

func (m *recordingMetrics) RecordEvaluation(_ context.Context, status string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses = append(m.statuses, status)
}

func (m *recordingMetrics) RecordIntrinsicCall(_ context.Context, name string, _ bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func newEngine(opts ...engine.Option) *engine.Engine {
	h := hash.XXHash{}
	base := []engine.Option{
		engine.WithPredicate("equal", builtin.Equal),
		engine.WithPredicate("defined", builtin.Defined(builtin.NewHashSet(h, "DEFINED", "AVALUE"))),
	}
	return engine.New(append(base, opts...)...)
}

func TestEngine_Evaluate(t *testing.T) {
	eng := newEngine()
	ctx := context.Background()

	v, err := eng.Evaluate(ctx, "equal(A, A) && !!(equal(B, B) || equal(B, C)) && (!defined(DEFINED) || defined(AVALUE))", nil)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = eng.Evaluate(ctx, "equal(A, B)", nil)
	require.NoError(t, err)
	assert.False(t, v)
}

func TestEngine_EvaluateErrors(t *testing.T) {
	eng := newEngine()
	ctx := context.Background()

	_, err := eng.Evaluate(ctx, "equal(A, A", nil)
	assert.ErrorIs(t, err, condlang.ErrParse)

	_, err = eng.Evaluate(ctx, "unknown(A)", nil)
	var undef condlang.UndefinedIntrinsic
	require.True(t, errors.As(err, &undef))
	assert.Equal(t, "unknown", undef.Name)

	//nolint:staticcheck // nil context is the case under test
	_, err = eng.Evaluate(nil, "equal(A, A)", nil)
	assert.ErrorIs(t, err, engine.ErrNilContext)
}

func TestEngine_StackSize(t *testing.T) {
	eng := newEngine(engine.WithStackSize(1))
	_, err := eng.Evaluate(context.Background(), "equal(A, A) && equal(B, B)", nil)
	assert.ErrorIs(t, err, condlang.ErrStackOverflow)

	// Ignored values keep the default.
	eng = newEngine(engine.WithStackSize(0))
	_, err = eng.Evaluate(context.Background(), "equal(A, A)", nil)
	assert.NoError(t, err)
}

func TestEngine_MaxDepth(t *testing.T) {
	eng := newEngine(engine.WithMaxDepth(2))
	_, err := eng.Evaluate(context.Background(), "((equal(A, A)))", nil)
	var so condlang.StackOverflow
	require.True(t, errors.As(err, &so))
	assert.Equal(t, condlang.Nesting, so.Stack)
}

func TestEngine_Run(t *testing.T) {
	eng := newEngine()
	var buf [64]byte
	assert.Equal(t, condlang.Success{Value: true}, eng.Run("defined(AVALUE)", buf[:], nil))
}

func TestEngine_CustomHasher(t *testing.T) {
	eng := engine.New(
		engine.WithHasher(hash.FNV1a{}),
		engine.WithPredicate("equal", builtin.Equal),
	)
	assert.Equal(t, hash.FNV1a{}, eng.Hasher())
	require.Len(t, eng.Intrinsics(), 1)
	assert.Equal(t, hash.FNV1a{}.Hash("equal"), eng.Intrinsics()[0].Name)

	v, err := eng.Evaluate(context.Background(), "equal(x, x)", nil)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestEngine_WithIntrinsics(t *testing.T) {
	h := hash.XXHash{}
	eng := engine.New(engine.WithIntrinsics(condlang.NewIntrinsic(h, "equal", builtin.Equal)))
	v, err := eng.Evaluate(context.Background(), "equal(x, x)", nil)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestEngine_RegistrationOrder(t *testing.T) {
	h := hash.XXHash{}
	yes := condlang.PredicateFunc(func(condlang.Args, any) bool { return true })
	no := condlang.PredicateFunc(func(condlang.Args, any) bool { return false })

	tests := []struct {
		name string
		opts []engine.Option
		want bool
	}{
		{
			name: "predicate before intrinsics",
			opts: []engine.Option{
				engine.WithPredicate("p", yes),
				engine.WithIntrinsics(condlang.NewIntrinsic(h, "p", no)),
			},
			want: true,
		},
		{
			name: "intrinsics before predicate",
			opts: []engine.Option{
				engine.WithIntrinsics(condlang.NewIntrinsic(h, "p", no)),
				engine.WithPredicate("p", yes),
			},
			want: false,
		},
		{
			name: "interleaved",
			opts: []engine.Option{
				engine.WithPredicate("q", no),
				engine.WithIntrinsics(condlang.NewIntrinsic(h, "p", yes)),
				engine.WithPredicate("p", no),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := engine.New(tt.opts...)
			var buf [64]byte
			assert.Equal(t, condlang.Success{Value: tt.want}, eng.Run("p(x)", buf[:], nil))
		})
	}
}

func TestEngine_IntrinsicsKeepOptionOrder(t *testing.T) {
	h := hash.FNV1a{}
	eng := engine.New(
		engine.WithPredicate("a", builtin.Equal),
		engine.WithIntrinsics(condlang.NewIntrinsic(h, "b", builtin.Equal)),
		engine.WithPredicate("c", builtin.Equal),
		engine.WithHasher(h),
	)

	got := eng.Intrinsics()
	require.Len(t, got, 3)
	assert.Equal(t, h.Hash("a"), got[0].Name)
	assert.Equal(t, h.Hash("b"), got[1].Name)
	assert.Equal(t, h.Hash("c"), got[2].Name)
}

func TestEngine_UserData(t *testing.T) {
	type env struct{ os string }
	h := hash.XXHash{}
	eng := engine.New(engine.WithPredicate("os", condlang.PredicateFunc(func(args condlang.Args, ud any) bool {
		return args.At(0) == h.Hash(ud.(*env).os)
	})))

	v, err := eng.Evaluate(context.Background(), "os(linux) && !os(darwin)", &env{os: "linux"})
	require.NoError(t, err)
	assert.True(t, v)
}

func TestEngine_Observability(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	metrics := &recordingMetrics{}
	eng := newEngine(engine.WithLogger(logger), engine.WithMetrics(metrics))

	_, err := eng.Evaluate(context.Background(), "equal(A, A) && defined(AVALUE)", nil)
	require.NoError(t, err)
	_, err = eng.Evaluate(context.Background(), "equal(A", nil)
	require.Error(t, err)

	assert.Equal(t, []string{"success", "parse_failure"}, metrics.statuses)
	assert.Equal(t, []string{"equal", "defined"}, metrics.calls)

	out := logs.String()
	assert.Contains(t, out, "condition evaluated")
	assert.Contains(t, out, "intrinsic=equal")
	assert.Contains(t, out, "condition evaluation failed")
	assert.Equal(t, 2, strings.Count(out, "condition evaluation starting"))
}

func TestEngine_EvaluateAll(t *testing.T) {
	eng := newEngine()
	ctx := context.Background()

	got, err := eng.EvaluateAll(ctx, []string{"equal(A, A)", "equal(A, B)"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, got)

	got, err = eng.EvaluateAll(ctx, []string{"equal(A, A)", "bad(", "equal(A, A)"}, nil)
	assert.Error(t, err)
	assert.Equal(t, []bool{true}, got)
}

func TestEngine_Concurrent(t *testing.T) {
	eng := newEngine()
	const numGoroutines = 50

	var wg sync.WaitGroup
	errs := make(chan error, numGoroutines)
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()
			src := "equal(A, A) && defined(DEFINED)"
			want := true
			if i%2 == 1 {
				src = "equal(A, B) || !defined(AVALUE)"
				want = false
			}
			v, err := eng.Evaluate(context.Background(), src, nil)
			if err != nil {
				errs <- err
				return
			}
			if v != want {
				errs <- errors.New("wrong value for " + src)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
