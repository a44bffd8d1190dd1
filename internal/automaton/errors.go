/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package automaton

import (
	"errors"
	"fmt"
)

// ErrBadPattern indicates a pattern was malformed.
var ErrBadPattern = errors.New("syntax error in pattern")

const (
	ReasonUnsupported     = "unsupported character"
	ReasonMissingArgument = "missing argument to repetition operator"
)

// InvalidPatternError describes why a pattern failed to compile.
// Pos is the byte offset of Char within Pattern. It unwraps to ErrBadPattern.
type InvalidPatternError struct {
	Pattern string
	Pos     int
	Char    byte
	Reason  string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("%v: %s %q at offset %d in %q", ErrBadPattern, e.Reason, e.Char, e.Pos, e.Pattern)
}

func (e *InvalidPatternError) Unwrap() error {
	return ErrBadPattern
}
