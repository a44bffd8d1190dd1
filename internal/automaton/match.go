/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package automaton

import "github.com/bits-and-blooms/bitset"

// Match reports whether the automaton accepts the whole of s.
func (a *Automaton) Match(s string) bool {
	return match(a, s)
}

// MatchBytes is like Match but operates on a byte slice.
func (a *Automaton) MatchBytes(b []byte) bool {
	return match(a, b)
}

// match simulates the automaton forward over s, one byte at a time,
// keeping the set of states the input so far can end in. Skip-edges
// already connect each state to everything reachable without consuming
// input, and self-loops carry repetition, so one step over the edges of
// the active states is all a byte needs. The result is "some accepting
// path exists" regardless of edge order.
//
// Work is O(len(s) * states * edges) and memory is two bitsets of
// len(states) bits, whatever the input length.
func match[T ~string | ~[]byte](a *Automaton, s T) bool {
	n := uint(len(a.states))
	cur := bitset.New(n)
	next := bitset.New(n)
	cur.Set(0)

	for pos := 0; pos < len(s); pos++ {
		c := s[pos]
		next.ClearAll()

		for i, ok := cur.NextSet(0); ok; i, ok = cur.NextSet(i + 1) {
			for _, e := range a.states[i].edges {
				if a.states[e].accepts(c, a.fold) {
					next.Set(uint(e))
				}
			}
		}
		if !next.Any() {
			return false
		}
		cur, next = next, cur
	}

	for i, ok := cur.NextSet(0); ok; i, ok = cur.NextSet(i + 1) {
		if a.states[i].accepting {
			return true
		}
	}
	return false
}
