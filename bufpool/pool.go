// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package bufpool provides reusable byte buffers for response body
// materialization. Copying a streaming body churns through large
// temporary buffers; leasing them from a shared pool keeps that churn
// off the garbage collector.
//
// The pool is an injected dependency of the volley network core, not
// process-wide state, so tests can substitute a pool that tracks
// lease/release invariants.
package bufpool

import (
	"sort"
	"sync"
)

// A Pool lends and reclaims byte buffers.
//
// Implementations must be safe for concurrent use by multiple
// goroutines, and Get must not block indefinitely: if the pool has no
// suitable buffer it allocates a fresh one.
type Pool interface {
	// Get returns a buffer whose length is at least n. The buffer
	// contents are unspecified.
	Get(n int) []byte

	// Put returns a buffer previously obtained from Get to the pool.
	// The caller must not touch the buffer after putting it back.
	Put(b []byte)
}

// DefaultRetained is the retained-bytes limit used by New when the
// caller passes a non-positive limit.
const DefaultRetained = 4096

// A Sized pool retains returned buffers up to a total byte limit and
// serves Get from the smallest retained buffer that fits, allocating
// only when nothing fits. The zero value is not usable; construct with
// New.
type Sized struct {
	mu       sync.Mutex
	byCap    [][]byte // sorted ascending by capacity
	retained int
	limit    int
}

var _ Pool = (*Sized)(nil)

// New creates a Sized pool that retains at most limit bytes of idle
// buffer capacity. A non-positive limit selects DefaultRetained.
func New(limit int) *Sized {
	if limit <= 0 {
		limit = DefaultRetained
	}
	return &Sized{limit: limit}
}

// Get returns a buffer of length at least n, reusing a retained buffer
// when one is large enough.
func (p *Sized) Get(n int) []byte {
	if n < 0 {
		n = 0
	}

	p.mu.Lock()
	i := sort.Search(len(p.byCap), func(i int) bool {
		return cap(p.byCap[i]) >= n
	})
	if i < len(p.byCap) {
		b := p.byCap[i]
		p.byCap = append(p.byCap[:i], p.byCap[i+1:]...)
		p.retained -= cap(b)
		p.mu.Unlock()
		return b[:cap(b)]
	}
	p.mu.Unlock()

	return make([]byte, n)
}

// Put returns b to the pool. Buffers larger than the pool's total
// retained limit are dropped outright. When retaining b would exceed
// the limit, the smallest retained buffers are discarded first.
func (p *Sized) Put(b []byte) {
	if b == nil || cap(b) == 0 || cap(b) > p.limit {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	i := sort.Search(len(p.byCap), func(i int) bool {
		return cap(p.byCap[i]) >= cap(b)
	})
	p.byCap = append(p.byCap, nil)
	copy(p.byCap[i+1:], p.byCap[i:])
	p.byCap[i] = b
	p.retained += cap(b)

	for p.retained > p.limit && len(p.byCap) > 0 {
		p.retained -= cap(p.byCap[0])
		p.byCap = p.byCap[1:]
	}
}

// Retained reports the total capacity, in bytes, of buffers currently
// held idle in the pool.
func (p *Sized) Retained() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.retained
}
