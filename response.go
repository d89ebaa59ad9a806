// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volley

import (
	"net/http"
	"time"

	"github.com/sai1025037768/volley/request"
	"github.com/sai1025037768/volley/transport"
)

// A Response is the finalized, materialized result of a successful
// request lifecycle. It is immutable and owned by the caller once
// delivered to the completion callback.
type Response struct {
	// StatusCode is the HTTP status code of the final attempt.
	StatusCode int

	// Headers is the ordered list of response headers. For a
	// not-modified response completed from a cache entry, headers
	// stored with the entry are merged in behind the fresh ones.
	Headers transport.Headers

	// Body is the materialized response body. It is never nil; a
	// bodiless response yields a zero-length slice.
	Body []byte

	// NotModified is true if the server answered a cache revalidation
	// with not-modified, meaning the caller's cached copy is still
	// valid and Body is the cached data (or empty if none was given).
	NotModified bool

	// Elapsed is the duration of the final transport attempt, from
	// dispatch to terminal resolution.
	Elapsed time.Duration
}

// notModified builds the response for a revalidation hit. The body is
// not re-transmitted on a 304, so it comes from the request's cache
// entry when one is present.
func notModified(r *request.Request, elapsed time.Duration, fresh transport.Headers) *Response {
	res := &Response{
		StatusCode:  http.StatusNotModified,
		Headers:     fresh,
		Body:        []byte{},
		NotModified: true,
		Elapsed:     elapsed,
	}
	if e := r.CacheEntry; e != nil {
		if e.Data != nil {
			res.Body = e.Data
		}
		res.Headers = combineHeaders(e.Header, fresh)
	}
	return res
}

// combineHeaders merges the headers stored with a cache entry into the
// headers of the 304 response. The fresh headers win: a cached header
// is carried over only if the 304 did not re-send any header with the
// same name.
func combineHeaders(cached http.Header, fresh transport.Headers) transport.Headers {
	out := append(transport.Headers(nil), fresh...)
	for _, h := range transport.FromHTTP(cached) {
		if len(fresh.Values(h.Name)) == 0 {
			out = append(out, h)
		}
	}
	return out
}
