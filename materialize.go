// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volley

import (
	"io"

	"github.com/sai1025037768/volley/bufpool"
)

// defaultStreamBuffer is the buffer size leased when the response does
// not declare a usable content length.
const defaultStreamBuffer = 1024

// materialize copies a streaming response body into a contiguous byte
// slice using pooled buffers, then closes the stream. The stream is
// closed and every leased buffer is returned to the pool on every exit
// path, including read failures.
//
// length is the declared content length, or negative if unknown. The
// initial buffer is sized to the declared length plus one spare byte,
// so a body of exactly the declared length observes end-of-stream
// without forcing a second lease.
func materialize(stream io.ReadCloser, length int64, pool bufpool.Pool) (out []byte, err error) {
	defer func() {
		_ = stream.Close()
	}()

	size := defaultStreamBuffer
	if length > 0 && int64(int(length)) == length && int(length) < 1<<30 {
		size = int(length) + 1
	}

	buf := pool.Get(size)
	defer func() {
		pool.Put(buf)
	}()

	n := 0
	for {
		if n == len(buf) {
			grown := pool.Get(2 * len(buf))
			copy(grown, buf[:n])
			pool.Put(buf)
			buf = grown
		}
		m, rerr := stream.Read(buf[n:])
		n += m
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, rerr
		}
	}

	// The pooled buffer goes back to the pool, so the finalized bytes
	// must be copied out of it.
	out = make([]byte, n)
	copy(out, buf[:n])
	return out, nil
}
