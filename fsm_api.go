/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package gofsm compiles small patterns into finite-state automata and
// reports whether an input string is matched in full. It is designed for
// ASCII input and byte-oriented strings.
//
// # Supported syntax:
//
//   - any printable ASCII character other than the ones below: matches itself.
//   - `.`: matches any single ASCII character.
//   - `*`: the preceding atom may occur zero or more times.
//   - `+`: the preceding atom may occur one or more times.
//
// The characters `[ ] ( ) { } | ? ^ $ \` are reserved and rejected, as are
// control characters and non-ASCII bytes. Matches are anchored: the whole
// input must be consumed.
//
// A compiled *Automaton is immutable and may be shared between goroutines.
package gofsm

import (
	"github.com/twinfer/gofsm/internal/automaton"
)

// Automaton is a compiled pattern.
type Automaton = automaton.Automaton

// Kind identifies the variant of a state, as returned by
// (*Automaton).StateKind.
type Kind = automaton.Kind

const (
	KindStart    = automaton.KindStart
	KindLiteral  = automaton.KindLiteral
	KindWildcard = automaton.KindWildcard
	KindTerminal = automaton.KindTerminal
)

// InvalidPatternError reports the position and reason a pattern was rejected.
type InvalidPatternError = automaton.InvalidPatternError

// ErrBadPattern is wrapped by every compile error.
var ErrBadPattern = automaton.ErrBadPattern

// Compile parses pattern and returns its automaton. On failure the error is
// an *InvalidPatternError and no automaton is returned.
func Compile(pattern string) (*Automaton, error) {
	return automaton.Compile(pattern)
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
// It simplifies safe initialization of global variables.
func MustCompile(pattern string) *Automaton {
	return automaton.MustCompile(pattern)
}

// CompileFold is like Compile, but literals in the resulting automaton match
// without regard to ASCII case.
func CompileFold(pattern string) (*Automaton, error) {
	return automaton.CompileFold(pattern)
}

// Match reports whether s is matched in full by pattern. Compiled patterns
// are kept in a process-wide LRU cache, so repeated calls with the same
// pattern skip compilation.
func Match(pattern, s string) (bool, error) {
	return defaultCache.Match(pattern, s)
}

// MatchFromByte is like Match but operates on byte slices, which avoids
// converting the input to a string.
func MatchFromByte(pattern, s []byte) (bool, error) {
	a, err := defaultCache.Compile(string(pattern))
	if err != nil {
		return false, err
	}
	return a.MatchBytes(s), nil
}

// MatchFold is like Match but ignores ASCII case in literals.
func MatchFold(pattern, s string) (bool, error) {
	return defaultCache.MatchFold(pattern, s)
}
