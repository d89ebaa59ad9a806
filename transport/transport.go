// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transport defines the pluggable component that performs the
// actual network I/O for one attempt of a volley request, and the
// response shape it hands back to the network core.
//
// A Transport is asynchronous: ExecuteRequest must not block the
// caller, and must resolve every attempt by invoking exactly one of the
// three Handler methods exactly once, from any goroutine. Package
// transport also ships Stack, an implementation over the standard
// net/http client.
package transport

import (
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/sai1025037768/volley/request"
)

// A Header is one response header name/value pair.
type Header struct {
	Name  string
	Value string
}

// Headers is the ordered list of headers received on a response. Order
// is preserved and names are not deduplicated, so repeated headers
// appear as repeated entries.
type Headers []Header

// Get returns the value of the first header matching name, or the
// empty string if the header is absent. Matching is case-insensitive.
func (hs Headers) Get(name string) string {
	for _, h := range hs {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// Values returns all values for headers matching name, in order.
// Matching is case-insensitive.
func (hs Headers) Values(name string) []string {
	var vs []string
	for _, h := range hs {
		if strings.EqualFold(h.Name, name) {
			vs = append(vs, h.Value)
		}
	}
	return vs
}

// FromHTTP flattens an http.Header map into an ordered Headers list.
// Names are sorted to give a stable order, and repeated values for one
// name keep their original relative order.
func FromHTTP(h http.Header) Headers {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	var hs Headers
	for _, name := range names {
		for _, v := range h[name] {
			hs = append(hs, Header{Name: name, Value: v})
		}
	}
	return hs
}

// A Response is the raw result of one successful transport attempt.
// It is owned by the network core for the duration of the attempt; the
// core closes Stream once materialization completes or fails.
//
// Exactly one of Body and Stream may be non-nil, or both may be nil for
// a bodiless response. A Transport that already has the whole body in
// memory sets Body; one that can only stream sets Stream.
type Response struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Headers is the ordered list of response headers.
	Headers Headers

	// Body is the response body, if the transport buffered it.
	Body []byte

	// Stream is the open response body, if the transport did not
	// buffer it. Reading Stream may block.
	Stream io.ReadCloser

	// ContentLength is the declared length of the body, or a negative
	// value if the length is unknown.
	ContentLength int64
}

// A Handler receives the outcome of one transport attempt. The
// transport must invoke exactly one method exactly once per attempt,
// and must never drop an attempt unresolved, including when it is
// cancelled externally.
type Handler interface {
	// OnSuccess delivers a response. Receiving a response says nothing
	// about its status code; non-2xx responses arrive here too.
	OnSuccess(res *Response)

	// OnAuthError reports that the attempt could not be authorized.
	// Auth failures are terminal: the network core never retries them.
	OnAuthError(err error)

	// OnError reports an I/O failure that produced no response.
	OnError(err error)
}

// A Transport performs the network I/O for one attempt of a request.
//
// extra contains additional headers computed by the network core (for
// example cache-validation headers); the transport sends them along
// with the request's own headers. ExecuteRequest must return without
// blocking and resolve h asynchronously.
//
// Implementations must be safe for concurrent use by multiple
// goroutines.
type Transport interface {
	ExecuteRequest(r *request.Request, extra map[string]string, h Handler)
}
