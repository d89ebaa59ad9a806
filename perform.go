// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volley

import (
	"context"

	"github.com/sai1025037768/volley/request"
)

// Performer is the interface that wraps the basic PerformRequest
// method.
//
// PerformRequest dispatches a logical request and resolves the
// callback with its terminal outcome. Network implements the Performer
// interface, and any other Performer implementation must behave
// substantially the same as Network.PerformRequest.
type Performer interface {
	PerformRequest(r *request.Request, cb Callback)
}

// Perform executes a request on the given Performer and blocks until
// the terminal outcome arrives or ctx is done.
//
// If ctx ends first, Perform returns ctx.Err(); the request itself is
// not cancelled and its callback-side bookkeeping still completes in
// the background. Callers who need transport-level cancellation should
// arrange it on the transport.
func Perform(ctx context.Context, p Performer, r *request.Request) (*Response, error) {
	type outcome struct {
		res *Response
		err error
	}

	// Capacity 1 so a resolution after ctx is done never leaks the
	// resolving goroutine.
	ch := make(chan outcome, 1)
	p.PerformRequest(r, NewCallback(
		func(res *Response) {
			ch <- outcome{res: res}
		},
		func(err error) {
			ch <- outcome{err: err}
		},
	))

	select {
	case o := <-ch:
		return o.res, o.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Perform executes a request on the network and blocks until the
// terminal outcome arrives or ctx is done, following the same contract
// as the package-level Perform function.
func (n *Network) Perform(ctx context.Context, r *request.Request) (*Response, error) {
	return Perform(ctx, n, r)
}
