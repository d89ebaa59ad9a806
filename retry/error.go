// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"fmt"
	"time"
)

// A Kind labels the domain-specific category of a terminal error.
type Kind int

const (
	// KindNetwork is an I/O failure that produced no response.
	KindNetwork Kind = iota
	// KindTimeout is a client-side timeout.
	KindTimeout
	// KindAuth is an authentication or authorization failure.
	KindAuth
	// KindServer is a 5xx response.
	KindServer
	// KindClient is a non-2xx, non-auth, non-5xx response.
	KindClient
)

var kindNames = []string{
	"network",
	"timeout",
	"auth",
	"server",
	"client",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// An Error is the terminal outcome of a failed request lifecycle. It
// records the error's kind, the status code and body of the last
// response if one was received, how many attempts were made, and how
// long the final attempt took.
type Error struct {
	// Kind is the domain-specific category of the failure.
	Kind Kind

	// StatusCode is the status code of the last received response, or
	// 0 if the final attempt produced no response.
	StatusCode int

	// Body is the materialized body of the last received response, if
	// any.
	Body []byte

	// Attempts is the total number of transport attempts made,
	// including the initial one.
	Attempts int

	// Elapsed is the duration of the final attempt.
	Elapsed time.Duration

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.StatusCode != 0 && e.Cause != nil:
		return fmt.Sprintf("volley: %s error: status %d: %v", e.Kind, e.StatusCode, e.Cause)
	case e.StatusCode != 0:
		return fmt.Sprintf("volley: %s error: status %d", e.Kind, e.StatusCode)
	case e.Cause != nil:
		return fmt.Sprintf("volley: %s error: %v", e.Kind, e.Cause)
	default:
		return fmt.Sprintf("volley: %s error", e.Kind)
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a *Error of the same Kind, so that
// errors.Is(err, &Error{Kind: KindServer}) matches any server error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Kind == t.Kind
}
