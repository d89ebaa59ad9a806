// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volley

import (
	"github.com/sai1025037768/volley/request"
)

// A HandlerGroup is a group of event handler chains which can be
// installed in a Network.
type HandlerGroup struct {
	handlers [][]Handler
}

// PushBack adds an event handler to the back of the event handler
// chain for a specific event type.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("volley: nil handler")
	}

	if g.handlers == nil {
		g.handlers = make([][]Handler, numEvents)
	}

	g.handlers[evt] = append(g.handlers[evt], h)
}

func (g *HandlerGroup) run(evt Event, r *request.Request) {
	i := int(evt)
	if i < len(g.handlers) {
		for _, h := range g.handlers[i] {
			h.Handle(evt, r)
		}
	}
}

// A Handler handles the occurrence of an event during a request
// lifecycle. Handlers observing events for one request always run
// sequentially, but a Handler installed in a Network is shared by all
// of that Network's requests and must be safe for concurrent use.
type Handler interface {
	Handle(evt Event, r *request.Request)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as event handlers.
type HandlerFunc func(evt Event, r *request.Request)

// Handle calls f(evt, r).
func (f HandlerFunc) Handle(evt Event, r *request.Request) {
	f(evt, r)
}
