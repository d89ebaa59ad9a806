// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"fmt"
	"net/http"
	"time"
)

// A Request is a logical unit of network work. It describes what to
// send, carries optional cache metadata from a previously received
// response, and owns the retry bookkeeping that the classification
// policy consults and mutates between attempts.
//
// A Request represents one logical request lifecycle, which may span
// multiple transport attempts. Do not share one Request between
// concurrent dispatches, and do not modify its fields while a dispatch
// is in flight.
type Request struct {
	// Method is the HTTP method. An empty method is treated as GET.
	Method string

	// URL is the absolute URL the request targets.
	URL string

	// Header contains caller-supplied headers sent on every attempt.
	// It may be nil.
	Header http.Header

	// Body is the request body, sent on every attempt. It may be nil
	// for an empty body. Because attempts may repeat, the body is a
	// byte slice rather than a one-shot reader.
	Body []byte

	// CacheEntry is the cached copy of a previous response for this
	// request, if the caller has one. When present, conditional
	// cache-validation headers are derived from it and sent with
	// every attempt, and a not-modified response is completed from
	// its data.
	CacheEntry *CacheEntry

	// Attempt is the zero-based number of the current transport
	// attempt. It is zero on the initial attempt and is incremented
	// by the retry classifier each time it decides to retry.
	Attempt int

	// Timeouts counts the attempts that failed with a timeout during
	// this request's lifecycle. It is advanced by the retry classifier
	// and consulted by adaptive timeout policies.
	Timeouts int
}

// New creates a Request for the given method, URL and body. An empty
// method is normalized to GET.
func New(method, url string, body []byte) *Request {
	if method == "" {
		method = "GET"
	}
	return &Request{Method: method, URL: url, Body: body}
}

// String returns an identity for the request suitable for logs and
// metrics labels.
func (r *Request) String() string {
	m := r.Method
	if m == "" {
		m = "GET"
	}
	if r.Attempt > 0 {
		return fmt.Sprintf("%s %s (attempt %d)", m, r.URL, r.Attempt)
	}
	return fmt.Sprintf("%s %s", m, r.URL)
}

// A CacheEntry holds the parts of a previously received response that
// matter for cache revalidation: the validators the server issued, the
// response body, and the stored response headers.
type CacheEntry struct {
	// ETag is the entity tag of the cached response, if any.
	ETag string

	// LastModified is the modification time of the cached response,
	// if known. The zero time means unknown.
	LastModified time.Time

	// Data is the cached response body. It is reused verbatim when
	// the server answers a revalidation with not-modified.
	Data []byte

	// Header contains the stored response headers. On a not-modified
	// response these are merged with the headers of the 304 itself,
	// with the 304's headers taking precedence.
	Header http.Header
}

// CacheHeaders computes the conditional request headers for a cache
// entry: If-None-Match from the entry's ETag and If-Modified-Since from
// its last-modified time. It is a pure function. A nil entry yields an
// empty, non-nil map.
func CacheHeaders(e *CacheEntry) map[string]string {
	h := make(map[string]string)
	if e == nil {
		return h
	}
	if e.ETag != "" {
		h["If-None-Match"] = e.ETag
	}
	if !e.LastModified.IsZero() {
		h["If-Modified-Since"] = e.LastModified.UTC().Format(http.TimeFormat)
	}
	return h
}
