/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package automaton

import (
	"fmt"
	"strings"
)

// String renders one line per state in construction order, e.g.
//
//	0 start -> 1 2
//	1 literal 'a' * -> 2 1
//	2 literal '4' -> 3
//	3 wildcard + -> 3 4
//	4 terminal
func (a *Automaton) String() string {
	var sb strings.Builder
	for i := range a.states {
		st := &a.states[i]
		fmt.Fprintf(&sb, "%d %s", i, st.kind)
		if st.kind == KindLiteral {
			fmt.Fprintf(&sb, " %q", st.char)
		}
		switch {
		case st.optional:
			sb.WriteString(" *")
		case st.repeatable:
			sb.WriteString(" +")
		}
		if len(st.edges) > 0 {
			sb.WriteString(" ->")
			for _, e := range st.edges {
				fmt.Fprintf(&sb, " %d", e)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Edges returns a copy of the successors of state i.
func (a *Automaton) Edges(i int) []int {
	return append([]int(nil), a.states[i].edges...)
}

// StateKind returns the kind of state i.
func (a *Automaton) StateKind(i int) Kind {
	return a.states[i].kind
}
