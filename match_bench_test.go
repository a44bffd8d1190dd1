package gofsm

import (
	"strings"
	"testing"
)

// BenchmarkPatterns measures matching against precompiled automata
func BenchmarkPatterns(b *testing.B) {
	testCases := []struct {
		name    string
		pattern string
		text    string
	}{
		{"Literal", "hello world", "hello world"},
		{"Literal mismatch", "hello world", "hello there"},
		{"Dot", "h.llo w.rld", "hello world"},
		{"Star prefix", "a*4.+hi", "aaaaaa4uhi"},
		{"Star skipped", "a*4.+hi", "4uhi"},
		{"Dot star middle", "start.*end", "start of the middle section leads to end"},
		{"Adjacent stars", "a*b*c*d", "aaabbbcccd"},
		{"Plus chain", "x+y+z+", "xxxxyyyyzzzz"},
	}

	for _, tc := range testCases {
		a := MustCompile(tc.pattern)
		b.Run(tc.name, func(b *testing.B) {
			for b.Loop() {
				a.Match(tc.text)
			}
		})
	}
}

// BenchmarkCompile measures automaton construction, including skip-edges
func BenchmarkCompile(b *testing.B) {
	patterns := map[string]string{
		"Literal":       "hello world",
		"Mixed":         "a*4.+hi",
		"Long star run": strings.Repeat("a*", 32) + "b",
	}

	for name, p := range patterns {
		b.Run(name, func(b *testing.B) {
			for b.Loop() {
				Compile(p) // Ignoring error for benchmark
			}
		})
	}
}

// BenchmarkCachedMatch exercises the package-level helpers and their cache
func BenchmarkCachedMatch(b *testing.B) {
	b.Run("String", func(b *testing.B) {
		for b.Loop() {
			Match("a*4.+hi", "aaaaaa4uhi") // Ignoring error for benchmark
		}
	})

	b.Run("Bytes", func(b *testing.B) {
		pattern := []byte("a*4.+hi")
		text := []byte("aaaaaa4uhi")
		for b.Loop() {
			MatchFromByte(pattern, text) // Ignoring error for benchmark
		}
	})

	b.Run("Fold", func(b *testing.B) {
		for b.Loop() {
			MatchFold("HELLO.*WORLD", "hello big world") // Ignoring error for benchmark
		}
	})
}

// BenchmarkPathological measures long runs of stars that defeat backtracking
func BenchmarkPathological(b *testing.B) {
	a := MustCompile(strings.Repeat("a*", 20) + "b")
	text := strings.Repeat("a", 1000)

	for b.Loop() {
		a.Match(text)
	}
}

// BenchmarkRejectLongInput reports per-call allocation on an input that
// fails at its first byte
func BenchmarkRejectLongInput(b *testing.B) {
	a := MustCompile(strings.Repeat("b", 1000))
	text := strings.Repeat("a", 1<<20)

	b.ReportAllocs()
	for b.Loop() {
		a.Match(text)
	}
}
