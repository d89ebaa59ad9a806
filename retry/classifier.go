// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/sai1025037768/volley/transient"
)

// A Decision is the outcome of classifying a failed attempt: either a
// retry signal with a backoff wait, or a terminal error that resolves
// the request's continuation.
type Decision struct {
	// Retry is true if the attempt should be re-dispatched.
	Retry bool

	// Wait is how long to wait before re-dispatching. Only meaningful
	// when Retry is true.
	Wait time.Duration

	// Err is the terminal error. Only meaningful when Retry is false,
	// in which case it is never nil.
	Err error
}

// A Classifier converts a failed transport attempt into a Decision.
// It is the only component that consults and mutates the request's
// retry bookkeeping; the network core acts on the Decision without
// knowing the policy's internals.
//
// Implementations of Classifier must be safe for concurrent use by
// multiple goroutines. Note that the network core never classifies two
// failures of the same request concurrently, so mutating the failed
// request's counters is safe.
type Classifier interface {
	Classify(f *Failure) Decision
}

// DefaultClassifier is a general-purpose classifier composing
// DefaultDecider and DefaultWaiter. It retries transient transport
// errors and retryable status codes up to DefaultTimes times, honoring
// Retry-After, and otherwise produces a terminal *Error whose kind
// reflects the failure.
var DefaultClassifier Classifier = NewClassifier(DefaultDecider, DefaultWaiter)

// NewClassifier composes a Decider and a Waiter into a Classifier.
//
// When the decider asks for a retry, the classifier advances the
// request's attempt counter (and its timeout counter, if the failure
// was a timeout) before computing the wait, so backoff grows with the
// attempt number. When the decider declines, the classifier builds a
// terminal *Error from the failure context.
func NewClassifier(d Decider, w Waiter) Classifier {
	if d == nil {
		panic("volley/retry: nil decider")
	}
	if w == nil {
		panic("volley/retry: nil waiter")
	}
	return classifier{decider: d, waiter: w}
}

type classifier struct {
	decider Decider
	waiter  Waiter
}

func (c classifier) Classify(f *Failure) Decision {
	if c.decider.Decide(f) {
		f.Request.Attempt++
		if transient.Categorize(f.Err) == transient.Timeout {
			f.Request.Timeouts++
		}
		return Decision{Retry: true, Wait: c.waiter.Wait(f)}
	}
	return Decision{Err: TerminalError(f)}
}

// TerminalError builds the terminal *Error for a failure that will not
// be retried. The kind is derived from the failure context: timeouts
// and other transport errors map to KindTimeout and KindNetwork, 401
// and 403 responses to KindAuth, 5xx responses to KindServer, and any
// other non-2xx response to KindClient.
func TerminalError(f *Failure) *Error {
	e := &Error{
		StatusCode: f.StatusCode(),
		Body:       f.Body,
		Attempts:   f.Request.Attempt + 1,
		Elapsed:    f.Elapsed,
		Cause:      f.Err,
	}
	switch {
	case f.Response == nil && transient.Categorize(f.Err) == transient.Timeout:
		e.Kind = KindTimeout
	case f.Response == nil:
		e.Kind = KindNetwork
	case e.StatusCode == 401 || e.StatusCode == 403:
		e.Kind = KindAuth
	case e.StatusCode >= 500:
		e.Kind = KindServer
	default:
		e.Kind = KindClient
	}
	return e
}
