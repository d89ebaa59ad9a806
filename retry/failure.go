// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/sai1025037768/volley/request"
	"github.com/sai1025037768/volley/transport"
)

// A Failure is the context of one failed transport attempt, handed to
// a Classifier for a retry decision.
//
// An attempt can fail in two ways, and the Failure distinguishes them:
// a transport-level failure carries a non-nil Err and a nil Response,
// while an HTTP-status failure carries the Response that was received
// (and any materialized Body) with Err typically nil. Both are fed
// through the same classification path so that error-body and backoff
// logic applies uniformly.
type Failure struct {
	// Request is the logical request whose attempt failed.
	Request *request.Request

	// Response is the transport response received on the failed
	// attempt, or nil if the failure produced no response.
	Response *transport.Response

	// Body is the materialized response body, if any bytes were
	// received and materialized before the failure was declared.
	Body []byte

	// Err is the triggering error, or nil for a pure HTTP-status
	// failure.
	Err error

	// Elapsed is the time from the attempt's dispatch to the failure.
	Elapsed time.Duration
}

// StatusCode returns the status code of the received response, or 0 if
// the failure produced no response.
func (f *Failure) StatusCode() int {
	if f.Response == nil {
		return 0
	}
	return f.Response.StatusCode
}

// Header returns the value of the first response header matching name,
// or the empty string if there is no response or no such header.
func (f *Failure) Header(name string) string {
	if f.Response == nil {
		return ""
	}
	return f.Response.Headers.Get(name)
}
