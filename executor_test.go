// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volley

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoroutines(t *testing.T) {
	var wg sync.WaitGroup
	var ran int32
	wg.Add(10)
	for i := 0; i < 10; i++ {
		Goroutines.Execute(func() {
			atomic.AddInt32(&ran, 1)
			wg.Done()
		})
	}
	wg.Wait()
	assert.EqualValues(t, 10, ran)
}

func TestWorkerPool(t *testing.T) {
	p := NewWorkerPool(4)
	defer p.Close()

	var wg sync.WaitGroup
	var ran int32
	wg.Add(100)
	for i := 0; i < 100; i++ {
		p.Execute(func() {
			atomic.AddInt32(&ran, 1)
			wg.Done()
		})
	}
	wg.Wait()
	assert.EqualValues(t, 100, ran)
}

func TestWorkerPoolExecuteDoesNotBlock(t *testing.T) {
	p := NewWorkerPool(1)
	defer p.Close()

	block := make(chan struct{})
	p.Execute(func() { <-block })

	// The single worker is busy; submitting must still return.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			p.Execute(func() {})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Execute blocked while the worker was busy")
	}
	close(block)
}

func TestWorkerPoolClose(t *testing.T) {
	p := NewWorkerPool(2)
	var wg sync.WaitGroup
	wg.Add(5)
	for i := 0; i < 5; i++ {
		p.Execute(func() { wg.Done() })
	}
	p.Close()
	wg.Wait()

	assert.Panics(t, func() { p.Execute(func() {}) })
}

func TestWorkerPoolBadArgs(t *testing.T) {
	assert.PanicsWithValue(t, "volley: worker pool needs at least one worker", func() { NewWorkerPool(0) })
	p := NewWorkerPool(1)
	defer p.Close()
	assert.PanicsWithValue(t, "volley: nil task", func() { p.Execute(nil) })
}
