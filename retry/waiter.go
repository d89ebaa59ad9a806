// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// A Waiter specifies how long to wait before retrying a failed
// transport attempt.
//
// Implementations of Waiter must be safe for concurrent use by
// multiple goroutines.
//
// The classifier does not consult the Waiter unless the Decider asked
// for a retry.
type Waiter interface {
	Wait(f *Failure) time.Duration
}

// The WaiterFunc type is an adapter to allow the use of ordinary
// functions as retry waiters.
type WaiterFunc func(f *Failure) time.Duration

// Wait calls w(f).
func (w WaiterFunc) Wait(f *Failure) time.Duration {
	return w(f)
}

// DefaultWaiter is the default retry wait policy. It honors a
// Retry-After response header when one is present, and otherwise uses
// a jittered exponential backoff with a base wait of 50 milliseconds
// and a maximum wait of 1 second.
var DefaultWaiter = RetryAfter(NewExpWaiter(50*time.Millisecond, 1*time.Second, time.Now()))

// NewFixedWaiter constructs a Waiter that always returns the given
// duration.
func NewFixedWaiter(d time.Duration) Waiter {
	return fixedWaiter(d)
}

type fixedWaiter time.Duration

func (w fixedWaiter) Wait(_ *Failure) time.Duration {
	return time.Duration(w)
}

// RetryAfter wraps a Waiter so that a Retry-After header on the failed
// attempt's response, if present and expressed in seconds, overrides
// the wrapped waiter's wait. Responses without the header, and
// HTTP-date values of the header, fall through to the wrapped waiter.
func RetryAfter(w Waiter) Waiter {
	if w == nil {
		panic("volley/retry: nil waiter")
	}
	return WaiterFunc(func(f *Failure) time.Duration {
		if v := f.Header("Retry-After"); v != "" {
			if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
				return time.Duration(secs) * time.Second
			}
		}
		return w.Wait(f)
	})
}

// NewExpWaiter constructs a Waiter implementing an exponential backoff
// formula with optional jitter.
//
// The formula implemented is the "Full Jitter" approach described in:
// https://aws.amazon.com/blogs/architecture/exponential-backoff-and-jitter.
//
// Parameters base and max control the exponential calculation of the
// ceiling:
//
//	ceil := min(base * 2**attempt, max)
//
// Base and max must be positive, and max must be at least base.
//
// Parameter jitter randomizes the wait between 0 and ceil. Pass nil
// for no jitter (the waiter then returns ceil on each attempt), a seed
// value (time.Time, int, or int64) to seed a new random number
// generator, or a rand.Source or *rand.Rand to use an existing one.
func NewExpWaiter(base, max time.Duration, jitter interface{}) Waiter {
	if base < 1 {
		panic("volley/retry: base must be positive")
	}
	if max < base {
		panic("volley/retry: max must be at least base")
	}
	return &jitterExpWaiter{
		base: base,
		max:  max,
		rand: jitterToRand(jitter),
	}
}

type jitterExpWaiter struct {
	base time.Duration
	max  time.Duration
	rand *rand.Rand
	lock sync.Mutex
}

func (w *jitterExpWaiter) Wait(f *Failure) time.Duration {
	exp := int64(1) << f.Request.Attempt
	if exp < 1 {
		exp = 1<<63 - 1
	}

	ceil := int64(w.base) * exp
	if ceil < int64(w.base) || int64(w.max) < ceil {
		ceil = int64(w.max)
	}

	duration := ceil
	if ceil > 0 {
		w.lock.Lock()
		defer w.lock.Unlock()
		if w.rand != nil {
			duration = w.rand.Int63n(ceil)
		}
	}

	return time.Duration(duration)
}

func jitterToRand(jitter interface{}) *rand.Rand {
	var s rand.Source
	switch j := jitter.(type) {
	case nil:
		return nil
	case time.Time:
		s = rand.NewSource(j.UnixNano())
	case int:
		s = rand.NewSource(int64(j))
	case int64:
		s = rand.NewSource(j)
	case *rand.Rand:
		if j == nil {
			panic("volley/retry: jitter may not be a typed nil")
		}
		return j
	case rand.Source:
		s = j
	default:
		panic("volley/retry: invalid jitter type")
	}
	return rand.New(s)
}
