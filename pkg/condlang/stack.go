package condlang

import "encoding/binary"

// idSize is the number of bytes a hashed identifier occupies on a Stack.
const idSize = 4

// Stack is a bounded LIFO over a caller-owned byte buffer.
//
// Two payload kinds share one Stack: single-byte booleans and 4-byte
// hashed identifiers. Pushes and pops are always symmetric in kind, so the
// stack keeps no per-entry tags. A push that does not fit returns
// ErrStackOverflow; a pop with too few bytes returns ErrStackUnderflow.
// The buffer is never grown.
type Stack struct {
	buf  []byte
	head int
}

// NewStack returns a Stack that uses buf as its storage.
// The whole length of buf is usable capacity.
func NewStack(buf []byte) Stack {
	return Stack{buf: buf}
}

// Len returns the number of bytes currently in use.
func (s *Stack) Len() int { return s.head }

// Cap returns the total number of bytes available.
func (s *Stack) Cap() int { return len(s.buf) }

// Reset empties the stack without touching the buffer contents.
func (s *Stack) Reset() { s.head = 0 }

func (s *Stack) free() int { return len(s.buf) - s.head }

// PushBool pushes a single byte holding 1 for true and 0 for false.
func (s *Stack) PushBool(v bool) error {
	var b byte
	if v {
		b = 1
	}
	return s.pushByte(b)
}

// PopBool pops a single byte pushed by PushBool.
func (s *Stack) PopBool() (bool, error) {
	b, err := s.popByte()
	return b != 0, err
}

// PushID pushes a 4-byte hashed identifier.
func (s *Stack) PushID(id uint32) error {
	if s.free() < idSize {
		return ErrStackOverflow
	}
	binary.LittleEndian.PutUint32(s.buf[s.head:], id)
	s.head += idSize
	return nil
}

// PopID pops a 4-byte hashed identifier pushed by PushID.
func (s *Stack) PopID() (uint32, error) {
	if s.head < idSize {
		return 0, ErrStackUnderflow
	}
	s.head -= idSize
	return binary.LittleEndian.Uint32(s.buf[s.head:]), nil
}

func (s *Stack) pushByte(b byte) error {
	if s.free() < 1 {
		return ErrStackOverflow
	}
	s.buf[s.head] = b
	s.head++
	return nil
}

func (s *Stack) popByte() (byte, error) {
	if s.head < 1 {
		return 0, ErrStackUnderflow
	}
	s.head--
	return s.buf[s.head], nil
}

// args returns a view over the top n identifiers without popping them.
func (s *Stack) args(n int) (Args, error) {
	size := n * idSize
	if size > s.head {
		return Args{}, ErrStackUnderflow
	}
	return Args{raw: s.buf[s.head-size : s.head]}, nil
}

// Args is a read-only view over the hashed identifiers passed to an
// intrinsic. It aliases the value stack and is only valid for the
// duration of the predicate call; predicates must not retain it.
type Args struct {
	raw []byte
}

// Len returns the number of arguments.
func (a Args) Len() int { return len(a.raw) / idSize }

// At returns the i-th argument hash in source order.
// It panics if i is out of range, like a slice index.
func (a Args) At(i int) uint32 {
	return binary.LittleEndian.Uint32(a.raw[i*idSize : (i+1)*idSize])
}

// AppendTo appends every argument to dst and returns the extended slice.
// Useful for predicates that need to keep the values past the call.
func (a Args) AppendTo(dst []uint32) []uint32 {
	for i := 0; i < a.Len(); i++ {
		dst = append(dst, a.At(i))
	}
	return dst
}
