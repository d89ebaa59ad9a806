// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volley

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sai1025037768/volley/request"
)

func TestHandlerGroupNilHandler(t *testing.T) {
	g := &HandlerGroup{}
	assert.PanicsWithValue(t, "volley: nil handler", func() { g.PushBack(BeforeRequest, nil) })
}

func TestHandlerGroupRunOrder(t *testing.T) {
	var order []string
	g := &HandlerGroup{}
	g.PushBack(BeforeAttempt, HandlerFunc(func(Event, *request.Request) {
		order = append(order, "first")
	}))
	g.PushBack(BeforeAttempt, HandlerFunc(func(Event, *request.Request) {
		order = append(order, "second")
	}))
	g.PushBack(AfterRequest, HandlerFunc(func(Event, *request.Request) {
		order = append(order, "other")
	}))

	g.run(BeforeAttempt, request.New("GET", "http://example.com", nil))

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestHandlerGroupEmpty(t *testing.T) {
	g := &HandlerGroup{}
	assert.NotPanics(t, func() {
		g.run(AfterRequest, request.New("GET", "http://example.com", nil))
	})
}

func TestHandlerFunc(t *testing.T) {
	var gotEvt Event
	var gotReq *request.Request
	h := HandlerFunc(func(evt Event, r *request.Request) {
		gotEvt = evt
		gotReq = r
	})
	r := request.New("GET", "http://example.com", nil)
	h.Handle(AfterRetry, r)
	assert.Equal(t, AfterRetry, gotEvt)
	assert.Same(t, r, gotReq)
}
