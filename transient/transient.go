// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient categorizes transport errors by their prospects of
// succeeding on a retry. The volley retry classifier uses it to decide
// whether an attempt that produced no response is worth repeating.
package transient

import (
	"errors"
	"syscall"
)

// A Category is the transience category of an error, as reported by
// Categorize.
//
// Not means a retry after this error is very unlikely to succeed. Every
// other category means the error has some prospect of clearing up on a
// subsequent attempt.
type Category int

const (
	// Not indicates any non-transient error.
	Not Category = iota
	// Timeout indicates a client-side timeout. The remote host may be
	// going through a temporary period of slowness.
	//
	// Categorize returns Timeout if the error or any of its wrapped
	// causes has a Timeout() method reporting true.
	Timeout
	// ConnRefused corresponds to ECONNREFUSED. Refusal can be a
	// permanent condition, but it also happens while the service on
	// the remote host is restarting and not yet listening, so it is
	// categorized as transient.
	ConnRefused
	// ConnReset corresponds to ECONNRESET: the remote host sent an
	// RST on a previously active connection. Common when a remote
	// service or load balancer is bounced mid-response, and tends to
	// clear on retry.
	ConnReset
)

// Categorize reports the transience category of err. A nil error, and
// any error that is not transient, produce Not.
//
// Categorize unwraps err looking at its causes, not just err itself.
// It deliberately ignores the Temporary() convention, whose semantics
// are unclear.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	var t hasTimeout
	if errors.As(err, &t) && t.Timeout() {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNRESET:
			return ConnReset
		case syscall.ECONNREFUSED:
			return ConnRefused
		}
	}

	return Not
}

// Retryable reports whether err falls into any transient category.
func Retryable(err error) bool {
	return Categorize(err) != Not
}

type hasTimeout interface {
	Timeout() bool
}
