// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volley

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sai1025037768/volley/bufpool"
)

func TestMaterializeDeclaredLength(t *testing.T) {
	body := bytes.Repeat([]byte("x"), 10000)
	pool := &trackingPool{}

	out, err := materialize(io.NopCloser(bytes.NewReader(body)), 10000, pool)

	require.NoError(t, err)
	assert.Equal(t, body, out)
	assert.Equal(t, 1, pool.gets)
	assert.Equal(t, 1, pool.puts)
	assert.GreaterOrEqual(t, pool.sizes[0], 10000)
}

func TestMaterializeUnknownLength(t *testing.T) {
	body := bytes.Repeat([]byte("y"), 5000)
	pool := &trackingPool{}

	out, err := materialize(io.NopCloser(bytes.NewReader(body)), -1, pool)

	require.NoError(t, err)
	assert.Equal(t, body, out)
	assert.Equal(t, defaultStreamBuffer, pool.sizes[0])
	assert.Greater(t, pool.gets, 1)
	assert.Equal(t, pool.gets, pool.puts)
}

func TestMaterializeEmpty(t *testing.T) {
	pool := &trackingPool{}

	out, err := materialize(io.NopCloser(bytes.NewReader(nil)), 0, pool)

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)
	assert.Equal(t, pool.gets, pool.puts)
}

func TestMaterializeLyingContentLength(t *testing.T) {
	// Body longer than declared still materializes fully.
	body := bytes.Repeat([]byte("z"), 3000)
	pool := &trackingPool{}

	out, err := materialize(io.NopCloser(bytes.NewReader(body)), 100, pool)

	require.NoError(t, err)
	assert.Equal(t, body, out)
	assert.Equal(t, pool.gets, pool.puts)
}

func TestMaterializeReadError(t *testing.T) {
	pool := &trackingPool{}
	cause := errors.New("mid-copy failure")
	stream := &brokenStream{data: bytes.Repeat([]byte("p"), 2000), err: cause}

	out, err := materialize(stream, -1, pool)

	require.ErrorIs(t, err, cause)
	assert.Nil(t, out)
	assert.True(t, stream.closed)
	assert.Equal(t, pool.gets, pool.puts, "every lease must be released on the error path")
}

func TestMaterializeUsesRealPool(t *testing.T) {
	pool := bufpool.New(64 * 1024)
	body := bytes.Repeat([]byte("q"), 2048)

	out, err := materialize(io.NopCloser(bytes.NewReader(body)), int64(len(body)), pool)
	require.NoError(t, err)
	assert.Equal(t, body, out)

	// The released buffer is retained and reused by the next copy.
	out2, err := materialize(io.NopCloser(bytes.NewReader(body)), int64(len(body)), pool)
	require.NoError(t, err)
	assert.Equal(t, body, out2)
	assert.Greater(t, pool.Retained(), 0)
}
