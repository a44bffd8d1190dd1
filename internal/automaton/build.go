/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package automaton

import (
	"slices"
	"unicode/utf8"
)

const (
	// Pattern metacharacters
	wildcardDot = '.'
	quantStar   = '*'
	quantPlus   = '+'

	asciiLimit = utf8.RuneSelf
)

// Lookup table for characters reserved by richer regex dialects. They are
// rejected rather than silently treated as literals.
var isReservedTable = [256]bool{
	'[':  true,
	']':  true,
	'(':  true,
	')':  true,
	'{':  true,
	'}':  true,
	'|':  true,
	'?':  true,
	'^':  true,
	'$':  true,
	'\\': true,
}

// IsLiteralByte reports whether b may appear in a pattern as a literal.
func IsLiteralByte(b byte) bool {
	return b >= ' ' && b <= '~' && !isReservedTable[b] && b != wildcardDot && b != quantStar && b != quantPlus
}

// Compile builds the automaton for pattern.
//
// Literal printable ASCII characters, `.`, `*` and `+` are supported. Any
// other byte, or a quantifier with nothing before it, yields an
// *InvalidPatternError and no automaton.
func Compile(pattern string) (*Automaton, error) {
	return build(pattern, false)
}

// CompileFold is like Compile but literals match without regard to ASCII case.
func CompileFold(pattern string) (*Automaton, error) {
	return build(pattern, true)
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
func MustCompile(pattern string) *Automaton {
	a, err := Compile(pattern)
	if err != nil {
		panic(`automaton: Compile(` + pattern + `): ` + err.Error())
	}
	return a
}

func build(pattern string, fold bool) (*Automaton, error) {
	a := &Automaton{
		pattern: pattern,
		fold:    fold,
		states:  make([]state, 1, len(pattern)+2),
	}
	a.states[0] = state{kind: KindStart}

	// last is the atom a following quantifier applies to; 0 means none yet.
	last := 0
	for pos := 0; pos < len(pattern); pos++ {
		c := pattern[pos]

		switch {
		case c == wildcardDot:
			last = a.push(last, state{kind: KindWildcard})

		case c == quantStar, c == quantPlus:
			if last == 0 {
				return nil, &InvalidPatternError{Pattern: pattern, Pos: pos, Char: c, Reason: ReasonMissingArgument}
			}
			st := &a.states[last]
			st.repeatable = true
			if c == quantStar {
				st.optional = true
			} else {
				a.link(last, last)
			}

		case IsLiteralByte(c):
			if fold {
				c = foldByte(c)
			}
			last = a.push(last, state{kind: KindLiteral, char: c})

		default:
			return nil, &InvalidPatternError{Pattern: pattern, Pos: pos, Char: c, Reason: ReasonUnsupported}
		}
	}

	a.terminal = len(a.states)
	a.states = append(a.states, state{kind: KindTerminal})
	a.link(last, a.terminal)

	for i := range a.states {
		if a.states[i].optional {
			a.link(i, i)
		}
	}
	a.addSkipEdges()

	for i := range a.states {
		a.states[i].accepting = slices.Contains(a.states[i].edges, a.terminal)
	}
	return a, nil
}

// push appends st and links it after prev, returning its index.
func (a *Automaton) push(prev int, st state) int {
	a.states = append(a.states, st)
	next := len(a.states) - 1
	a.link(prev, next)
	return next
}

// link adds the edge from -> to unless it already exists.
func (a *Automaton) link(from, to int) {
	if slices.Contains(a.states[from].edges, to) {
		return
	}
	a.states[from].edges = append(a.states[from].edges, to)
}

// addSkipEdges materializes the zero-occurrence path of every `*` atom.
// States are laid out in pattern order, so the chain successor of state i
// is i+1. For each state, every state past a run of optional successors
// becomes a direct successor, up to and including the first state that is
// not optional (possibly the terminal).
func (a *Automaton) addSkipEdges() {
	for i := 0; i < a.terminal; i++ {
		for j := i + 1; j < a.terminal && a.states[j].optional; j++ {
			a.link(i, j+1)
		}
	}
}
