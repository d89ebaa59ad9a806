// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volley

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Network to extend it with
// custom functionality.
type Event int

const (
	// BeforeRequest identifies the event that occurs when a logical
	// request is submitted via PerformRequest, before its first
	// transport attempt is dispatched.
	BeforeRequest Event = iota
	// BeforeAttempt identifies the event that occurs before each
	// individual transport attempt, including retries.
	BeforeAttempt
	// BeforeMaterialize identifies the event that occurs when an
	// attempt produced a streaming body, just before the blocking
	// copy is submitted to the Executor. It does not fire for
	// pre-buffered or bodiless responses.
	BeforeMaterialize
	// AfterRetry identifies the event that occurs after the retry
	// classifier decided to re-dispatch the request, before the
	// backoff wait starts.
	AfterRetry
	// AfterRequest identifies the event that occurs when the request
	// lifecycle reaches its terminal outcome, just before the
	// completion callback is resolved.
	AfterRequest
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeRequest",
	"BeforeAttempt",
	"BeforeMaterialize",
	"AfterRetry",
	"AfterRequest",
}

// Events returns a slice containing all events which can occur during
// a request lifecycle, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeRequest,
		BeforeAttempt,
		BeforeMaterialize,
		AfterRetry,
		AfterRequest,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
