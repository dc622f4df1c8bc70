package condlang

// CharClass is a set of byte values backed by a 256-bit bitmap.
// The zero value is the empty set.
type CharClass [4]uint64

// NewCharClass builds a class whose members are the bytes of members.
func NewCharClass(members string) CharClass {
	var cc CharClass
	for i := 0; i < len(members); i++ {
		c := members[i]
		cc[c/64] |= 1 << (c % 64)
	}
	return cc
}

// Contains reports whether c is a member of the class.
func (cc CharClass) Contains(c byte) bool {
	return cc[c/64]&(1<<(c%64)) != 0
}

// Skip returns the first position at or after pos whose byte is not a
// member of the class, or len(s) if every remaining byte is a member.
func (cc CharClass) Skip(s string, pos int) int {
	for pos < len(s) && cc.Contains(s[pos]) {
		pos++
	}
	return pos
}

var (
	whitespace      = NewCharClass(" \t\n\r")
	identifierChars = NewCharClass("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_0123456789")
)
