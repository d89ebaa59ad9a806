// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volley

import (
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/sai1025037768/volley/bufpool"
	"github.com/sai1025037768/volley/request"
	"github.com/sai1025037768/volley/retry"
	"github.com/sai1025037768/volley/transport"
)

// DefaultSlowThreshold is the attempt duration above which a request
// is logged as slow when Network.SlowThreshold is zero.
const DefaultSlowThreshold = 3 * time.Second

var emptyHandlers = HandlerGroup{}

var defaultPool = bufpool.New(bufpool.DefaultRetained)

// A Network drives logical requests through their lifecycle: it
// dispatches each attempt to the Transport, materializes the response
// body, classifies the outcome, and either resolves the completion
// callback or re-dispatches the request per the retry classifier's
// decision.
//
// Transport and Blocking are required; PerformRequest panics if either
// is missing, since that is a caller configuration error rather than a
// request failure. All other fields have usable defaults. A Network is
// safe for concurrent use by multiple goroutines and should be reused
// across requests.
type Network struct {
	// Transport performs the network I/O for each attempt.
	Transport transport.Transport

	// Blocking runs the blocking stream-to-bytes copies. It must be
	// set before any request is performed, even one whose responses
	// turn out to be pre-buffered.
	Blocking Executor

	// Pool supplies scratch buffers for body materialization. If nil,
	// a package-default pool shared by all Networks is used.
	Pool bufpool.Pool

	// Classifier converts failed attempts into retry decisions. If
	// nil, retry.DefaultClassifier is used.
	Classifier retry.Classifier

	// SlowThreshold is the attempt duration above which a diagnostic
	// log entry is emitted. Zero selects DefaultSlowThreshold; a
	// negative value disables slow-request logging.
	SlowThreshold time.Duration

	// Handlers allows custom handler chains to be invoked when
	// designated events occur during a request lifecycle. If nil, no
	// custom handlers run.
	Handlers *HandlerGroup

	// Logger receives slow-request and retry diagnostics. If nil,
	// logging is disabled.
	Logger Logger

	// Metrics records lifecycle metrics. If nil, no metrics are
	// recorded.
	Metrics *MetricsCollector
}

// PerformRequest dispatches a logical request and resolves cb with its
// terminal outcome. It returns immediately; cb is invoked exactly once
// from another goroutine, after however many transport attempts the
// retry classifier allows.
//
// PerformRequest panics if the Network has no Transport or no Blocking
// executor, or if cb is nil.
func (n *Network) PerformRequest(r *request.Request, cb Callback) {
	if n.Transport == nil {
		panic("volley: Transport must be set before performing requests")
	}
	if n.Blocking == nil {
		panic("volley: Blocking executor must be set before performing requests")
	}
	if cb == nil {
		panic("volley: nil callback")
	}

	n.handlers().run(BeforeRequest, r)
	if n.Metrics != nil {
		n.Metrics.requestStart(r)
	}
	n.perform(r, &resolver{network: n, req: r, cb: cb, start: time.Now()})
}

// perform dispatches one transport attempt.
func (n *Network) perform(r *request.Request, res *resolver) {
	start := time.Now()
	n.handlers().run(BeforeAttempt, r)
	extra := request.CacheHeaders(r.CacheEntry)
	n.Transport.ExecuteRequest(r, extra, &attemptHandler{
		network: n,
		req:     r,
		res:     res,
		start:   start,
	})
}

// An attemptHandler wires one transport attempt's callback back into
// the network core.
type attemptHandler struct {
	network *Network
	req     *request.Request
	res     *resolver
	start   time.Time
}

func (h *attemptHandler) OnSuccess(tr *transport.Response) {
	h.network.succeeded(h.req, h.start, tr, h.res)
}

func (h *attemptHandler) OnAuthError(err error) {
	// Auth failures are not transport-transient; they end the
	// lifecycle without consulting the classifier.
	var re *retry.Error
	if !errors.As(err, &re) {
		err = &retry.Error{
			Kind:     retry.KindAuth,
			Attempts: h.req.Attempt + 1,
			Elapsed:  time.Since(h.start),
			Cause:    err,
		}
	}
	h.res.fail(err)
}

func (h *attemptHandler) OnError(err error) {
	h.network.failed(h.req, h.res, err, h.start, nil, nil)
}

// succeeded handles a transport attempt that produced a response.
func (n *Network) succeeded(r *request.Request, start time.Time, tr *transport.Response, res *resolver) {
	if tr.StatusCode == http.StatusNotModified {
		if tr.Stream != nil {
			_ = tr.Stream.Close()
		}
		res.succeed(notModified(r, time.Since(start), tr.Headers))
		return
	}

	body := tr.Body
	if body == nil && tr.Stream == nil {
		// Neither a buffer nor a stream is an honest zero-length
		// body, not a body still pending.
		body = []byte{}
	}

	if body != nil {
		n.finish(r, start, tr, body, res)
		return
	}

	// The stream copy blocks, so it must not run on the goroutine
	// that delivered the transport callback.
	n.handlers().run(BeforeMaterialize, r)
	stream := tr.Stream
	n.Blocking.Execute(func() {
		b, err := materialize(stream, tr.ContentLength, n.pool())
		if err != nil {
			// A body that died mid-read is an I/O failure, not a usable
			// response; classify it without the partial response.
			n.failed(r, res, err, start, nil, nil)
			return
		}
		n.finish(r, start, tr, b, res)
	})
}

// finish classifies a fully materialized response: log it if it was
// slow, route non-2xx statuses into failure classification, and
// otherwise resolve the callback with a materialized Response.
func (n *Network) finish(r *request.Request, start time.Time, tr *transport.Response, body []byte, res *resolver) {
	elapsed := time.Since(start)
	n.logSlow(r, tr.StatusCode, body, elapsed)

	if tr.StatusCode < 200 || tr.StatusCode > 299 {
		n.failed(r, res, nil, start, tr, body)
		return
	}

	res.succeed(&Response{
		StatusCode: tr.StatusCode,
		Headers:    tr.Headers,
		Body:       body,
		Elapsed:    elapsed,
	})
}

// failed routes a failed attempt through the retry classifier. An
// HTTP-status failure arrives with the received response and body
// attached; a transport failure arrives with err only.
func (n *Network) failed(r *request.Request, res *resolver, err error, start time.Time, tr *transport.Response, body []byte) {
	d := n.classifier().Classify(&retry.Failure{
		Request:  r,
		Response: tr,
		Body:     body,
		Err:      err,
		Elapsed:  time.Since(start),
	})
	if !d.Retry {
		res.fail(d.Err)
		return
	}

	if n.Metrics != nil {
		n.Metrics.recordRetry(r)
	}
	if n.Logger != nil {
		n.Logger.Debug("retrying request", "request", r.String(), "wait", d.Wait)
	}
	n.handlers().run(AfterRetry, r)

	// Timer-driven resubmission: the retry loop never grows the call
	// stack, and a retry is only dispatched after the failed attempt
	// was fully processed. Termination is owned by the classifier.
	time.AfterFunc(d.Wait, func() {
		n.perform(r, res)
	})
}

func (n *Network) logSlow(r *request.Request, status int, body []byte, elapsed time.Duration) {
	threshold := n.SlowThreshold
	if threshold == 0 {
		threshold = DefaultSlowThreshold
	}
	if threshold < 0 || elapsed < threshold {
		return
	}
	if n.Metrics != nil {
		n.Metrics.recordSlow(r)
	}
	if n.Logger != nil {
		n.Logger.Warn("slow request", "request", r.String(),
			"elapsed", elapsed, "status", status, "bytes", len(body))
	}
}

func (n *Network) pool() bufpool.Pool {
	if n.Pool != nil {
		return n.Pool
	}
	return defaultPool
}

func (n *Network) classifier() retry.Classifier {
	if n.Classifier != nil {
		return n.Classifier
	}
	return retry.DefaultClassifier
}

func (n *Network) handlers() *HandlerGroup {
	if n.Handlers != nil {
		return n.Handlers
	}
	return &emptyHandlers
}

// A resolver guards a request's completion callback so that the
// lifecycle resolves at most once, even if a misbehaving transport
// delivers more than one callback for an attempt.
type resolver struct {
	network *Network
	req     *request.Request
	cb      Callback
	start   time.Time
	done    uint32
}

func (s *resolver) succeed(res *Response) {
	if !atomic.CompareAndSwapUint32(&s.done, 0, 1) {
		return
	}
	if m := s.network.Metrics; m != nil {
		m.requestEnd(s.req, res.StatusCode, nil, time.Since(s.start))
	}
	s.network.handlers().run(AfterRequest, s.req)
	s.cb.OnSuccess(res)
}

func (s *resolver) fail(err error) {
	if !atomic.CompareAndSwapUint32(&s.done, 0, 1) {
		return
	}
	if m := s.network.Metrics; m != nil {
		status := 0
		var re *retry.Error
		if errors.As(err, &re) {
			status = re.StatusCode
		}
		m.requestEnd(s.req, status, err, time.Since(s.start))
	}
	s.network.handlers().run(AfterRequest, s.req)
	s.cb.OnError(err)
}
