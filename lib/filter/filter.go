// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

// Package filter provides the entry filters applied while writing an
// artifact archive: a path-based filter chain that decides which base
// package entries survive serialization, and a locale axis filter for
// resource table splitting.
package filter

// Filter decides whether one package entry, identified by its
// archive path, is written to an artifact.
type Filter interface {
	Keep(path string) bool
}

// Chain is an AND-composition of filters. The zero value keeps
// everything; a nil *Chain also keeps everything, so callers can pass
// the chain through unconditionally.
type Chain struct {
	filters []Filter
}

// Add appends a filter to the chain.
func (c *Chain) Add(filter Filter) {
	c.filters = append(c.filters, filter)
}

// Keep reports whether every filter in the chain keeps the path.
func (c *Chain) Keep(path string) bool {
	if c == nil {
		return true
	}
	for _, filter := range c.filters {
		if !filter.Keep(path) {
			return false
		}
	}
	return true
}

// Len returns the number of installed filters.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.filters)
}
