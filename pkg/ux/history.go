// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import "sync"

// DefaultHistorySize is how many submitted lines the input history
// retains before the oldest are dropped.
const DefaultHistorySize = 50

// History is a fixed-capacity FIFO of submitted input lines backing
// up-arrow navigation. When full, adding drops the oldest entry.
// Consecutive duplicates are collapsed.
//
// Safe for concurrent use.
type History struct {
	mu    sync.Mutex
	data  []string
	head  int // next write position
	tail  int // oldest element position
	count int
	cap   int
	full  bool
}

// NewHistory creates a history buffer with the given capacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &History{
		data: make([]string, capacity),
		cap:  capacity,
	}
}

// Add records a submitted line. Empty lines and repeats of the newest
// entry are ignored.
func (h *History) Add(line string) {
	if line == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.count > 0 {
		newest := (h.head - 1 + h.cap) % h.cap
		if h.data[newest] == line {
			return
		}
	}

	h.data[h.head] = line
	h.head = (h.head + 1) % h.cap

	if h.full {
		h.tail = (h.tail + 1) % h.cap
	} else {
		h.count++
		if h.count == h.cap {
			h.full = true
		}
	}
}

// Entries returns the history oldest-first as a fresh slice.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, 0, h.count)
	for i := 0; i < h.count; i++ {
		out = append(out, h.data[(h.tail+i)%h.cap])
	}
	return out
}

// Len returns the number of retained entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

// Cap returns the buffer capacity.
func (h *History) Cap() int {
	return h.cap
}
