// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package request defines the logical unit of work executed by the
// volley network core, along with the cache metadata a request may
// carry from a previously received response.
//
// A Request is created by the caller, dispatched via volley's
// Network.PerformRequest, and treated as immutable for the duration of
// the dispatch, with one exception: the retry bookkeeping counters
// (Attempt, Timeouts) are owned by the request itself and are advanced
// by the retry classifier between attempts.
package request
