// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"github.com/sai1025037768/volley/transient"
)

// A Decider decides if a retry should be done.
//
// Implementations of Decider must be safe for concurrent use by
// multiple goroutines.
//
// Use the built-in constructors Times and StatusCode, and the built-in
// decider TransientErr; or implement your own. Use DeciderFunc to
// convert an ordinary function into a Decider and to compose deciders
// logically.
type Decider interface {
	Decide(f *Failure) bool
}

// The DeciderFunc type is an adapter to allow the use of ordinary
// functions as retry deciders. It implements the Decider interface and
// provides the logical composition methods And and Or.
//
// Every DeciderFunc must be safe for concurrent use by multiple
// goroutines.
type DeciderFunc func(f *Failure) bool

// DefaultTimes is the number of times DefaultDecider will retry.
const DefaultTimes = 5

// DefaultDecider is a general-purpose retry decider suitable for
// common use cases. It allows up to DefaultTimes retries, and retries
// when the failure is a transient transport error (TransientErr) or
// when a response was received with one of the status codes 429 (Too
// Many Requests), 502 (Bad Gateway), 503 (Service Unavailable), or 504
// (Gateway Timeout).
var DefaultDecider = Times(DefaultTimes).And(StatusCode(429, 502, 503, 504).Or(TransientErr))

// TransientErr is a decider that indicates a retry if the failure's
// triggering error is transient according to transient.Categorize.
//
// TransientErr only looks at the error, so it always returns false for
// an HTTP-status failure. Compose it with a StatusCode decider for
// more complete coverage.
var TransientErr DeciderFunc = func(f *Failure) bool {
	return transient.Retryable(f.Err)
}

// Decide returns true if a retry should be done, and false otherwise,
// after examining the failed attempt's context.
func (d DeciderFunc) Decide(f *Failure) bool {
	return d(f)
}

// And composes two retry deciders into a new decider which returns
// true only if both sub-deciders return true. Short-circuit logic is
// used, so g is not evaluated if d returns false.
func (d DeciderFunc) And(g DeciderFunc) DeciderFunc {
	return func(f *Failure) bool {
		return d(f) && g(f)
	}
}

// Or composes two retry deciders into a new decider which returns true
// if either sub-decider returns true. Short-circuit logic is used, so
// g is not evaluated if d returns true.
func (d DeciderFunc) Or(g DeciderFunc) DeciderFunc {
	return func(f *Failure) bool {
		return d(f) || g(f)
	}
}

// Times constructs a retry decider which allows up to n retries. The
// returned decider returns true while the request's attempt counter is
// less than n, and false otherwise.
func Times(n int) DeciderFunc {
	return func(f *Failure) bool {
		return f.Request.Attempt < n
	}
}

// StatusCode constructs a retry decider allowing retries based on the
// response status code. If the failed attempt received a response and
// its status code is contained in ss, the decider returns true.
func StatusCode(ss ...int) DeciderFunc {
	ss2 := make([]int, len(ss))
	copy(ss2, ss)
	return func(f *Failure) bool {
		for _, s := range ss2 {
			if f.StatusCode() == s {
				return true
			}
		}
		return false
	}
}
