// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volley

// A Callback is the completion continuation of a logical request. For
// a given request lifecycle exactly one of its methods is invoked
// exactly once, regardless of how many transport attempts the
// lifecycle spans.
//
// Callbacks are invoked from whichever goroutine resolved the final
// attempt, never from the goroutine that called PerformRequest.
type Callback interface {
	// OnSuccess delivers the materialized response. The response's
	// body is never nil.
	OnSuccess(res *Response)

	// OnError delivers the terminal error, typically a *retry.Error.
	OnError(err error)
}

// NewCallback builds a Callback from a pair of functions. Both
// functions must be non-nil.
func NewCallback(onSuccess func(res *Response), onError func(err error)) Callback {
	if onSuccess == nil || onError == nil {
		panic("volley: nil callback function")
	}
	return funcCallback{onSuccess: onSuccess, onError: onError}
}

type funcCallback struct {
	onSuccess func(res *Response)
	onError   func(err error)
}

func (c funcCallback) OnSuccess(res *Response) {
	c.onSuccess(res)
}

func (c funcCallback) OnError(err error) {
	c.onError(err)
}
