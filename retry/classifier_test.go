// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClassifierBadArgs(t *testing.T) {
	w := NewFixedWaiter(0)
	assert.PanicsWithValue(t, "volley/retry: nil decider", func() { NewClassifier(nil, w) })
	assert.PanicsWithValue(t, "volley/retry: nil waiter", func() { NewClassifier(Times(1), nil) })
}

func TestClassifyRetry(t *testing.T) {
	c := NewClassifier(Times(3).And(TransientErr), NewFixedWaiter(10*time.Millisecond))
	f := failure(0, 0, syscall.ECONNRESET)

	d := c.Classify(f)

	assert.True(t, d.Retry)
	assert.Equal(t, 10*time.Millisecond, d.Wait)
	assert.NoError(t, d.Err)
	assert.Equal(t, 1, f.Request.Attempt, "a retry decision advances the attempt counter")
	assert.Zero(t, f.Request.Timeouts)
}

func TestClassifyRetryTimeout(t *testing.T) {
	c := NewClassifier(Times(3).And(TransientErr), NewFixedWaiter(0))
	f := failure(0, 0, syscall.ETIMEDOUT)

	d := c.Classify(f)

	assert.True(t, d.Retry)
	assert.Equal(t, 1, f.Request.Attempt)
	assert.Equal(t, 1, f.Request.Timeouts, "timeout failures advance the timeout counter too")
}

func TestClassifyTerminal(t *testing.T) {
	c := NewClassifier(Times(0), NewFixedWaiter(0))

	t.Run("Timeout", func(t *testing.T) {
		d := c.Classify(failure(0, 0, syscall.ETIMEDOUT))
		require.False(t, d.Retry)
		var e *Error
		require.ErrorAs(t, d.Err, &e)
		assert.Equal(t, KindTimeout, e.Kind)
	})
	t.Run("Network", func(t *testing.T) {
		cause := errors.New("dns misbehaving")
		d := c.Classify(failure(0, 0, cause))
		var e *Error
		require.ErrorAs(t, d.Err, &e)
		assert.Equal(t, KindNetwork, e.Kind)
		assert.ErrorIs(t, d.Err, cause)
	})
	t.Run("Auth", func(t *testing.T) {
		for _, s := range []int{401, 403} {
			d := c.Classify(failure(0, s, nil))
			var e *Error
			require.ErrorAs(t, d.Err, &e)
			assert.Equal(t, KindAuth, e.Kind)
			assert.Equal(t, s, e.StatusCode)
		}
	})
	t.Run("Server", func(t *testing.T) {
		f := failure(2, 502, nil)
		f.Body = []byte("bad gateway")
		f.Elapsed = 30 * time.Millisecond
		d := c.Classify(f)
		var e *Error
		require.ErrorAs(t, d.Err, &e)
		assert.Equal(t, KindServer, e.Kind)
		assert.Equal(t, 502, e.StatusCode)
		assert.Equal(t, []byte("bad gateway"), e.Body)
		assert.Equal(t, 3, e.Attempts)
		assert.Equal(t, 30*time.Millisecond, e.Elapsed)
	})
	t.Run("Client", func(t *testing.T) {
		d := c.Classify(failure(0, 404, nil))
		var e *Error
		require.ErrorAs(t, d.Err, &e)
		assert.Equal(t, KindClient, e.Kind)
	})
}

func TestTerminalErrorIdempotent(t *testing.T) {
	f := failure(1, 503, nil)
	f.Body = []byte("unavailable")
	assert.Equal(t, TerminalError(f), TerminalError(f))
}

func TestDefaultClassifier(t *testing.T) {
	f := failure(0, 0, syscall.ECONNREFUSED)
	d := DefaultClassifier.Classify(f)
	assert.True(t, d.Retry)

	f = failure(DefaultTimes, 0, syscall.ECONNREFUSED)
	d = DefaultClassifier.Classify(f)
	assert.False(t, d.Retry)
	require.Error(t, d.Err)
}
