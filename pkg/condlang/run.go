package condlang

// OperatorStackSize is the number of pending operators a single Run can
// hold. Every unresolved '!', '&&' and '||' on the current parse path
// occupies one entry.
const OperatorStackSize = 64

// DefaultMaxDepth is the default limit on grammar nesting (parentheses,
// negations and chained binary operators) for a single Run.
const DefaultMaxDepth = 256

// runConfig holds per-call settings.
type runConfig struct {
	maxDepth int
	onCall   func(name string, result bool)
}

func defaultRunConfig() runConfig {
	return runConfig{maxDepth: DefaultMaxDepth}
}

// RunOption configures a single Run.
type RunOption func(*runConfig)

// WithMaxDepth sets the nesting limit. Exceeding it yields a StackOverflow
// result whose Stack is Nesting. Values below 1 are ignored.
// Default: DefaultMaxDepth
func WithMaxDepth(n int) RunOption {
	return func(c *runConfig) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithCallObserver registers fn to be called after every intrinsic
// invocation with the call name as written and the predicate's result.
// The name aliases the source string.
func WithCallObserver(fn func(name string, result bool)) RunOption {
	return func(c *runConfig) {
		c.onCall = fn
	}
}

// Run parses and evaluates source in a single pass.
//
// stack is the caller-owned working storage for intermediate values and
// argument hashes; it is never grown, and running out of it yields a
// StackOverflow result. intrinsics is scanned in order and the first entry
// whose name matches a call wins. hasher hashes both call names and
// arguments. userData is passed through to every predicate.
//
// Intrinsics are invoked in source order as they are parsed. The first
// failure stops evaluation; predicates already called are not undone.
//
// Example:
//
//	h := hash.XXHash{}
//	equal := condlang.NewIntrinsic(h, "equal", builtin.Equal)
//	var buf [128]byte
//	r := condlang.Run("equal(A, A) && !equal(A, B)", buf[:], []condlang.Intrinsic{equal}, h, nil)
//	ok, err := condlang.Outcome(r) // true, nil
func Run(source string, stack []byte, intrinsics []Intrinsic, hasher Hasher, userData any, opts ...RunOption) Result {
	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var opBuf [OperatorStackSize]byte
	p := parser{
		src:        source,
		values:     NewStack(stack),
		ops:        NewStack(opBuf[:]),
		intrinsics: intrinsics,
		hasher:     hasher,
		userData:   userData,
		maxDepth:   cfg.maxDepth,
		onCall:     cfg.onCall,
	}

	if err := p.parseCondition(); err != nil {
		return err.result()
	}

	v, err := p.values.PopBool()
	if err != nil {
		return InternalError{Err: err}
	}
	return Success{Value: v}
}
