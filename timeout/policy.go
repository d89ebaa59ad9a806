// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout provides per-attempt timeout policies for volley
// transports. A policy is consulted once per transport attempt, before
// the attempt is dispatched.
package timeout

import (
	"time"

	"github.com/sai1025037768/volley/request"
)

// A Policy decides the timeout to set on the next transport attempt of
// a request.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	// Timeout returns the timeout for the request's next attempt. The
	// request's Attempt and Timeouts counters reflect the attempts
	// already made.
	Timeout(r *request.Request) time.Duration
}

// DefaultPolicy is the default timeout policy. It sets a fixed timeout
// of 5 seconds on each attempt.
var DefaultPolicy Policy = Fixed(5 * time.Second)

// Infinite is a built-in timeout policy which never times out.
var Infinite Policy = Fixed(1<<63 - 1)

// Fixed constructs a timeout policy that uses the same value for every
// attempt.
func Fixed(d time.Duration) Policy {
	return policy([]time.Duration{d})
}

// Adaptive constructs a timeout policy that loosens the timeout after
// attempts that themselves timed out.
//
// Parameter usual is the timeout for the initial attempt and for any
// attempt whose predecessors did not time out. Parameter after contains
// the timeouts used once attempts start timing out: after the first
// timeout of the lifecycle the policy returns after[0], after the
// second after[1], and so on, returning the last element once the
// timeout count exceeds len(after).
//
// Use Adaptive when the remote service exhibits one-off slow responses
// that are best cured by a quick timeout and retry, but you still need
// to make progress during a sustained burst of slowness.
func Adaptive(usual time.Duration, after ...time.Duration) Policy {
	p := make([]time.Duration, 1, 1+len(after))
	p[0] = usual
	return policy(append(p, after...))
}

type policy []time.Duration

func (p policy) Timeout(r *request.Request) time.Duration {
	i := r.Timeouts
	if i > len(p)-1 {
		i = len(p) - 1
	}
	return p[i]
}
