package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatchFold validates ASCII case-insensitive matching.
func TestMatchFold(t *testing.T) {
	cases := []struct {
		s       string
		pattern string
		result  bool
	}{
		{"", "", true},
		{"HELLO", "hello", true},
		{"hello", "HELLO", true},
		{"Hello", "hELLo", true},
		{"HELLO WORLD", "hello.*", true},
		{"Hello Beautiful World", "hello.*world", true},
		{"AAAb", "a+B", true},
		{"b", "A*b", true},
		{"HELLO!", "hello", false},
		{"hellp", "HELLO", false},
		// Non-letters are unaffected by folding.
		{"@", "`", false},
	}

	for _, tc := range cases {
		a, err := CompileFold(tc.pattern)
		require.NoError(t, err, tc.pattern)
		assert.True(t, a.Fold())

		assert.Equal(t, tc.result, a.Match(tc.s), "pattern %q input %q", tc.pattern, tc.s)
	}
}

func TestFoldOnlyWhenRequested(t *testing.T) {
	a := MustCompile("Hello")
	assert.False(t, a.Fold())
	assert.False(t, a.Match("hello"))
	assert.True(t, a.Match("Hello"))
}

func TestEqualFoldBytes(t *testing.T) {
	assert.True(t, equalFold('a', 'A'))
	assert.True(t, equalFold('Z', 'z'))
	assert.True(t, equalFold('1', '1'))
	assert.False(t, equalFold('[', '{'))
	assert.False(t, equalFold('a', 'b'))
}
