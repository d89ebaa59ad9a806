// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package volley is an asynchronous request-execution core: it
// dispatches logical requests to a pluggable transport, materializes
// response bodies, classifies outcomes, and retries transport failures
// according to a pluggable policy, resolving each request's completion
// callback exactly once.
//
// The central type is Network. Its PerformRequest method never blocks:
// the transport resolves each attempt asynchronously, and the only
// blocking operation in the pipeline, copying a streaming response
// body into memory, is pushed onto a dedicated blocking Executor so it
// can never starve the transport's own I/O goroutines. Body copies
// draw their scratch buffers from a bufpool.Pool.
//
// A minimal configuration needs a Transport and a blocking Executor:
//
//	n := &volley.Network{
//		Transport: &transport.Stack{},
//		Blocking:  volley.NewWorkerPool(4),
//	}
//	n.PerformRequest(request.New("GET", url, nil), cb)
//
// Outcomes are classified by a retry.Classifier. Responses with status
// codes outside [200,299] and transport I/O errors both flow through
// the classifier, which either ends the request with a terminal
// retry.Error or signals the Network to re-dispatch it after a backoff
// wait. Auth failures reported by the transport are always terminal.
//
// Requests carrying a cache entry are dispatched with conditional
// validation headers; a not-modified response short-circuits the
// pipeline and completes with the cached body.
package volley
