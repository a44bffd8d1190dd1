/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package gofsm

import (
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of compiled patterns kept by the
// package-level helpers and by NewCache when given a non-positive size.
const DefaultCacheSize = 256

var defaultCache = NewCache(DefaultCacheSize)

type cacheKey struct {
	pattern string
	fold    bool
}

// Cache keeps recently compiled automata keyed by pattern. Compile errors
// are never cached. It is safe for concurrent use.
type Cache struct {
	lru *lru.Cache[cacheKey, *Automaton]
}

// NewCache creates a cache holding up to size automata.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, _ := lru.New[cacheKey, *Automaton](size)
	return &Cache{lru: cache}
}

// Compile returns the cached automaton for pattern, compiling it on a miss.
func (c *Cache) Compile(pattern string) (*Automaton, error) {
	return c.get(cacheKey{pattern: pattern}, Compile)
}

// CompileFold is the case-insensitive counterpart of Compile. Folded and
// exact automata for the same pattern are cached separately.
func (c *Cache) CompileFold(pattern string) (*Automaton, error) {
	return c.get(cacheKey{pattern: pattern, fold: true}, CompileFold)
}

// Match compiles pattern through the cache and matches s against it.
func (c *Cache) Match(pattern, s string) (bool, error) {
	a, err := c.Compile(pattern)
	if err != nil {
		return false, err
	}
	return a.Match(s), nil
}

// MatchFold is like Match but ignores ASCII case in literals.
func (c *Cache) MatchFold(pattern, s string) (bool, error) {
	a, err := c.CompileFold(pattern)
	if err != nil {
		return false, err
	}
	return a.Match(s), nil
}

// Len returns the number of cached automata.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge drops every cached automaton.
func (c *Cache) Purge() {
	c.lru.Purge()
}

func (c *Cache) get(key cacheKey, compile func(string) (*Automaton, error)) (*Automaton, error) {
	if a, ok := c.lru.Get(key); ok {
		return a, nil
	}

	a, err := compile(key.pattern)
	if err != nil {
		logger().Debug("pattern_rejected",
			slog.String("pattern", key.pattern),
			slog.String("error", err.Error()))
		return nil, err
	}

	c.lru.Add(key, a)
	logger().Debug("pattern_compiled",
		slog.String("pattern", key.pattern),
		slog.Bool("fold", key.fold),
		slog.Int("states", a.NumStates()))
	return a, nil
}
