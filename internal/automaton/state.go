/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package automaton compiles patterns made of literals, `.`, `*` and `+` into
// a graph of states and walks that graph to decide anchored matches.
// States live in an arena and edges are arena indices, so quantifier
// self-loops need no pointer cycles.
package automaton

// Kind identifies the variant of a state.
type Kind uint8

const (
	// KindStart is the unique entry state. Nothing points at it.
	KindStart Kind = iota
	// KindLiteral consumes one byte equal to the state's char.
	KindLiteral
	// KindWildcard consumes any one ASCII byte.
	KindWildcard
	// KindTerminal is the accepting marker and has no outgoing edges.
	KindTerminal
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindLiteral:
		return "literal"
	case KindWildcard:
		return "wildcard"
	case KindTerminal:
		return "terminal"
	}
	return "unknown"
}

type state struct {
	kind Kind
	char byte

	// optional is set by `*`: the state may be skipped entirely.
	optional bool
	// repeatable is set by `*` or `+`: the state has a self-loop.
	repeatable bool
	// accepting reports whether the terminal is among the successors.
	accepting bool

	edges []int
}

// accepts reports whether the state consumes c. Start and terminal
// states never consume input.
func (st *state) accepts(c byte, fold bool) bool {
	switch st.kind {
	case KindLiteral:
		if fold {
			return equalFold(c, st.char)
		}
		return c == st.char
	case KindWildcard:
		return c < asciiLimit
	}
	return false
}

// Automaton is a compiled pattern. It is immutable after Compile returns
// and safe for concurrent use by multiple goroutines.
type Automaton struct {
	pattern  string
	fold     bool
	states   []state
	terminal int
}

// Pattern returns the source pattern.
func (a *Automaton) Pattern() string {
	return a.pattern
}

// Fold reports whether literals are compared with ASCII case folding.
func (a *Automaton) Fold() bool {
	return a.fold
}

// NumStates returns the number of states, start and terminal included.
func (a *Automaton) NumStates() int {
	return len(a.states)
}

// IsTerminal reports whether state i is the accepting marker.
func (a *Automaton) IsTerminal(i int) bool {
	return i == a.terminal
}
