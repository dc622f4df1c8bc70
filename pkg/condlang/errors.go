package condlang

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Stack and matched by the Result failure types.
var (
	// ErrStackOverflow indicates a working stack had no room for a push.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrStackUnderflow indicates a pop found fewer bytes than requested.
	// The grammar never produces this; seeing it means an internal bug.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrParse indicates the source does not match the condition grammar.
	ErrParse = errors.New("parse failure")

	// ErrUndefinedIntrinsic indicates a call to a name that is not registered.
	ErrUndefinedIntrinsic = errors.New("undefined intrinsic")

	// ErrUnknownOperator indicates an operator tag outside AND, OR and NEGATE.
	ErrUnknownOperator = errors.New("unknown operator")
)

// StackKind identifies which bounded resource ran out.
type StackKind int

const (
	// ValueStack is the caller-supplied buffer for values and hashes.
	ValueStack StackKind = iota
	// OperatorStack is the fixed internal buffer of pending operators.
	OperatorStack
	// Nesting is the recursion depth limit.
	Nesting
)

// String returns the stack name.
func (k StackKind) String() string {
	switch k {
	case ValueStack:
		return "value"
	case OperatorStack:
		return "operator"
	case Nesting:
		return "nesting"
	default:
		return fmt.Sprintf("StackKind(%d)", int(k))
	}
}

// parseError is the internal failure carried up through the parser.
// Exactly one of the result kinds is set by the code that creates it.
type parseError struct {
	status Status
	stack  StackKind
	offset int
	reason string
	name   string
	err    error
}

func (e *parseError) result() Result {
	switch e.status {
	case StatusStackOverflow:
		return StackOverflow{Stack: e.stack}
	case StatusUndefinedIntrinsic:
		return UndefinedIntrinsic{Name: e.name, Offset: e.offset}
	case StatusParseFailure:
		return ParseFailure{Offset: e.offset, Reason: e.reason}
	default:
		return InternalError{Err: e.err}
	}
}

func overflow(kind StackKind) *parseError {
	return &parseError{status: StatusStackOverflow, stack: kind}
}

func syntaxError(offset int, reason string) *parseError {
	return &parseError{status: StatusParseFailure, offset: offset, reason: reason}
}

func internalError(err error) *parseError {
	return &parseError{status: StatusInternal, err: err}
}

// stackError maps a Stack error to the matching parser failure.
func stackError(err error, kind StackKind) *parseError {
	if errors.Is(err, ErrStackOverflow) {
		return overflow(kind)
	}
	return internalError(fmt.Errorf("%s stack: %w", kind, err))
}
