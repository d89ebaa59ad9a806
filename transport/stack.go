// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"golang.org/x/net/http2"

	"github.com/sai1025037768/volley/request"
	"github.com/sai1025037768/volley/timeout"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer. It must follow the contract documented on http.Client.
	Do(r *http.Request) (*http.Response, error)
}

// An Authorizer supplies per-attempt authorization headers for a
// request. Returning an error means the request cannot be authorized
// (for example, a token refresh failed); the attempt then resolves via
// Handler.OnAuthError without touching the network.
//
// Implementations must be safe for concurrent use by multiple
// goroutines.
type Authorizer interface {
	AuthHeaders(r *request.Request) (map[string]string, error)
}

// The AuthorizerFunc type is an adapter to allow the use of ordinary
// functions as Authorizers.
type AuthorizerFunc func(r *request.Request) (map[string]string, error)

// AuthHeaders calls f(r).
func (f AuthorizerFunc) AuthHeaders(r *request.Request) (map[string]string, error) {
	return f(r)
}

// A Stack is an asynchronous Transport over an HTTPDoer. Its zero
// value is a valid configuration using http.DefaultClient, the default
// timeout policy, and no authorizer.
//
// Each attempt runs on its own goroutine: Stack.ExecuteRequest returns
// immediately and the handler is resolved from that goroutine. The
// response body is handed to the handler as an open stream; the
// network core owns closing it.
type Stack struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses. If nil, http.DefaultClient is used.
	HTTPDoer HTTPDoer

	// TimeoutPolicy decides the timeout for each attempt. If nil,
	// timeout.DefaultPolicy is used.
	TimeoutPolicy timeout.Policy

	// Authorizer supplies authorization headers per attempt. If nil,
	// no authorization headers are added and attempts never fail with
	// an auth error at this layer.
	Authorizer Authorizer
}

var _ Transport = (*Stack)(nil)

// ExecuteRequest dispatches one attempt of r on a new goroutine and
// resolves h with the outcome.
func (s *Stack) ExecuteRequest(r *request.Request, extra map[string]string, h Handler) {
	go s.attempt(r, extra, h)
}

func (s *Stack) attempt(r *request.Request, extra map[string]string, h Handler) {
	var auth map[string]string
	if s.Authorizer != nil {
		var err error
		auth, err = s.Authorizer.AuthHeaders(r)
		if err != nil {
			h.OnAuthError(err)
			return
		}
	}

	policy := s.TimeoutPolicy
	if policy == nil {
		policy = timeout.DefaultPolicy
	}
	ctx, cancel := context.WithTimeout(context.Background(), policy.Timeout(r))

	req, err := s.toHTTP(ctx, r, extra, auth)
	if err != nil {
		cancel()
		h.OnError(err)
		return
	}

	res, err := s.doer().Do(req)
	if err != nil {
		cancel()
		h.OnError(err)
		return
	}

	// The context must stay alive until the body stream has been fully
	// consumed, so cancellation is tied to the stream's Close.
	h.OnSuccess(&Response{
		StatusCode:    res.StatusCode,
		Headers:       FromHTTP(res.Header),
		Stream:        &cancelBody{body: res.Body, cancel: cancel},
		ContentLength: res.ContentLength,
	})
}

func (s *Stack) toHTTP(ctx context.Context, r *request.Request, extra, auth map[string]string) (*http.Request, error) {
	method := r.Method
	if method == "" {
		method = "GET"
	}

	var body io.Reader
	if len(r.Body) > 0 {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.URL, body)
	if err != nil {
		return nil, err
	}

	for name, vs := range r.Header {
		req.Header[name] = vs
	}
	for name, v := range extra {
		req.Header.Set(name, v)
	}
	for name, v := range auth {
		req.Header.Set(name, v)
	}
	return req, nil
}

func (s *Stack) doer() HTTPDoer {
	if s.HTTPDoer == nil {
		return http.DefaultClient
	}
	return s.HTTPDoer
}

// NewHTTP2Client returns an http.Client whose transport speaks HTTP/2
// over TLS when the server supports it, for use as a Stack's HTTPDoer.
func NewHTTP2Client() (*http.Client, error) {
	t := &http.Transport{}
	if err := http2.ConfigureTransport(t); err != nil {
		return nil, err
	}
	return &http.Client{Transport: t}, nil
}

// cancelBody releases the attempt's timeout context when the response
// stream is closed.
type cancelBody struct {
	body   io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelBody) Read(p []byte) (int, error) {
	return b.body.Read(p)
}

func (b *cancelBody) Close() error {
	err := b.body.Close()
	b.cancel()
	return err
}
