// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sai1025037768/volley/request"
)

func TestFixed(t *testing.T) {
	p := Fixed(2 * time.Second)
	assert.Equal(t, 2*time.Second, p.Timeout(&request.Request{}))
	assert.Equal(t, 2*time.Second, p.Timeout(&request.Request{Attempt: 4, Timeouts: 2}))
}

func TestInfinite(t *testing.T) {
	d := Infinite.Timeout(&request.Request{Timeouts: 9})
	assert.Equal(t, time.Duration(1<<63-1), d)
}

func TestAdaptive(t *testing.T) {
	p := Adaptive(time.Second, 2*time.Second, 5*time.Second)
	assert.Equal(t, time.Second, p.Timeout(&request.Request{}))
	assert.Equal(t, time.Second, p.Timeout(&request.Request{Attempt: 3}),
		"non-timeout retries keep the usual timeout")
	assert.Equal(t, 2*time.Second, p.Timeout(&request.Request{Timeouts: 1}))
	assert.Equal(t, 5*time.Second, p.Timeout(&request.Request{Timeouts: 2}))
	assert.Equal(t, 5*time.Second, p.Timeout(&request.Request{Timeouts: 7}),
		"timeout counts past the schedule reuse the last value")
}

func TestAdaptiveNoAfter(t *testing.T) {
	p := Adaptive(time.Second)
	assert.Equal(t, time.Second, p.Timeout(&request.Request{Timeouts: 3}))
}

func TestDefaultPolicy(t *testing.T) {
	assert.Equal(t, 5*time.Second, DefaultPolicy.Timeout(&request.Request{}))
}
