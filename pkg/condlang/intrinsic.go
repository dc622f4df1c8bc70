package condlang

// Predicate is a host-defined boolean function callable from a condition.
//
// args holds the hashed identifiers written between the call parentheses,
// in source order. userData is the value the host passed to Run.
type Predicate interface {
	Call(args Args, userData any) bool
}

// PredicateFunc adapts an ordinary function to the Predicate interface.
type PredicateFunc func(args Args, userData any) bool

// Call implements Predicate.
func (f PredicateFunc) Call(args Args, userData any) bool {
	return f(args, userData)
}

// Hasher maps identifier text to a 32-bit value.
//
// It must be deterministic for the duration of a Run: equal text must
// produce equal hashes. It need not be stable across processes.
// The identifier is passed as a substring of the source, so hashing does
// not copy it.
type Hasher interface {
	Hash(ident string) uint32
}

// HasherFunc adapts an ordinary function to the Hasher interface.
type HasherFunc func(ident string) uint32

// Hash implements Hasher.
func (f HasherFunc) Hash(ident string) uint32 {
	return f(ident)
}

// Intrinsic binds a hashed name to a Predicate.
type Intrinsic struct {
	Name      uint32
	Predicate Predicate
}

// NewIntrinsic hashes name with h and binds it to p.
func NewIntrinsic(h Hasher, name string, p Predicate) Intrinsic {
	return Intrinsic{Name: h.Hash(name), Predicate: p}
}

// lookup scans intrinsics in order and returns the first entry whose name
// matches, or nil.
func lookup(intrinsics []Intrinsic, name uint32) *Intrinsic {
	for i := range intrinsics {
		if intrinsics[i].Name == name {
			return &intrinsics[i]
		}
	}
	return nil
}
