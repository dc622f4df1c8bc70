package condlang

import (
	"errors"
	"fmt"
)

// Status classifies the outcome of a Run.
type Status int

const (
	// StatusSuccess means the expression evaluated to a value.
	StatusSuccess Status = iota
	// StatusStackOverflow means a bounded stack or the nesting limit was exhausted.
	StatusStackOverflow
	// StatusParseFailure means the source did not match the grammar.
	StatusParseFailure
	// StatusUndefinedIntrinsic means a call named an unregistered intrinsic.
	StatusUndefinedIntrinsic
	// StatusInternal means an internal invariant was violated.
	StatusInternal
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusStackOverflow:
		return "stack_overflow"
	case StatusParseFailure:
		return "parse_failure"
	case StatusUndefinedIntrinsic:
		return "undefined_intrinsic"
	case StatusInternal:
		return "internal"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of a Run. The concrete type is one of Success,
// StackOverflow, ParseFailure, UndefinedIntrinsic or InternalError.
// All types other than Success also implement error.
type Result interface {
	Status() Status
	isResult()
}

// Success holds the value of a fully evaluated expression.
type Success struct {
	Value bool
}

// StackOverflow reports that a working stack ran out of room.
type StackOverflow struct {
	Stack StackKind
}

// ParseFailure reports that the source does not match the grammar.
type ParseFailure struct {
	// Offset is the byte offset in the source where parsing stopped.
	Offset int
	// Reason is a short description of what was expected.
	Reason string
}

// UndefinedIntrinsic reports a call to a name with no registered intrinsic.
type UndefinedIntrinsic struct {
	// Name is the call name as written. It is a substring of the source
	// passed to Run and shares its memory.
	Name string
	// Offset is the byte offset of Name in the source.
	Offset int
}

// InternalError reports a violated engine invariant, such as a stack
// underflow. Correct grammar handling never produces it.
type InternalError struct {
	Err error
}

func (Success) isResult()            {}
func (StackOverflow) isResult()      {}
func (ParseFailure) isResult()       {}
func (UndefinedIntrinsic) isResult() {}
func (InternalError) isResult()      {}

// Status implements Result.
func (Success) Status() Status { return StatusSuccess }

// Status implements Result.
func (StackOverflow) Status() Status { return StatusStackOverflow }

// Status implements Result.
func (ParseFailure) Status() Status { return StatusParseFailure }

// Status implements Result.
func (UndefinedIntrinsic) Status() Status { return StatusUndefinedIntrinsic }

// Status implements Result.
func (InternalError) Status() Status { return StatusInternal }

// Error implements the error interface.
func (e StackOverflow) Error() string {
	return fmt.Sprintf("%s stack overflow", e.Stack)
}

// Unwrap returns ErrStackOverflow.
func (StackOverflow) Unwrap() error { return ErrStackOverflow }

// Error implements the error interface.
func (e ParseFailure) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("parse failure at offset %d", e.Offset)
	}
	return fmt.Sprintf("parse failure at offset %d: %s", e.Offset, e.Reason)
}

// Unwrap returns ErrParse.
func (ParseFailure) Unwrap() error { return ErrParse }

// Error implements the error interface.
func (e UndefinedIntrinsic) Error() string {
	return fmt.Sprintf("undefined intrinsic %q at offset %d", e.Name, e.Offset)
}

// Unwrap returns ErrUndefinedIntrinsic.
func (UndefinedIntrinsic) Unwrap() error { return ErrUndefinedIntrinsic }

// Error implements the error interface.
func (e InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e InternalError) Unwrap() error { return e.Err }

// Outcome converts r to a value and an error. The error is nil only for
// Success, and is otherwise the failure variant itself.
func Outcome(r Result) (bool, error) {
	switch v := r.(type) {
	case Success:
		return v.Value, nil
	case error:
		return false, v
	default:
		return false, errors.New("condlang: unknown result type")
	}
}
