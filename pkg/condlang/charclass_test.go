package condlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharClass_Contains(t *testing.T) {
	cc := NewCharClass("az_\x00\xff")

	for _, c := range []byte{'a', 'z', '_', 0x00, 0xff} {
		assert.True(t, cc.Contains(c), "expected %q to be a member", c)
	}
	for _, c := range []byte{'b', 'A', ' ', 0x7f, 0x80} {
		assert.False(t, cc.Contains(c), "expected %q not to be a member", c)
	}
}

func TestCharClass_Empty(t *testing.T) {
	var cc CharClass
	for i := 0; i < 256; i++ {
		assert.False(t, cc.Contains(byte(i)))
	}
}

func TestCharClass_Skip(t *testing.T) {
	tests := []struct {
		name string
		cc   CharClass
		s    string
		pos  int
		want int
	}{
		{"whitespace prefix", whitespace, " \t\r\nabc", 0, 4},
		{"no members", whitespace, "abc", 0, 0},
		{"all members", whitespace, "   ", 0, 3},
		{"from middle", identifierChars, "ab cd_9(", 3, 7},
		{"at end", identifierChars, "abc", 3, 3},
		{"identifier stops at paren", identifierChars, "equal(A)", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cc.Skip(tt.s, tt.pos))
		})
	}
}

func TestIdentifierChars(t *testing.T) {
	for c := 0; c < 256; c++ {
		b := byte(c)
		want := (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
		assert.Equal(t, want, identifierChars.Contains(b), "byte %d", c)
	}
}
