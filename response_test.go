// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volley

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sai1025037768/volley/request"
	"github.com/sai1025037768/volley/transport"
)

func TestNotModifiedWithoutEntry(t *testing.T) {
	r := request.New("GET", "http://example.com", nil)
	fresh := transport.Headers{{Name: "Date", Value: "now"}}

	res := notModified(r, time.Second, fresh)

	assert.Equal(t, http.StatusNotModified, res.StatusCode)
	assert.True(t, res.NotModified)
	assert.NotNil(t, res.Body)
	assert.Empty(t, res.Body)
	assert.Equal(t, fresh, res.Headers)
	assert.Equal(t, time.Second, res.Elapsed)
}

func TestCombineHeaders(t *testing.T) {
	cached := http.Header{
		"Content-Type": []string{"text/plain"},
		"Date":         []string{"then"},
	}
	fresh := transport.Headers{{Name: "Date", Value: "now"}}

	out := combineHeaders(cached, fresh)

	assert.Equal(t, "now", out.Get("Date"))
	assert.Equal(t, []string{"now"}, out.Values("Date"), "cached headers re-sent by the 304 are dropped")
	assert.Equal(t, "text/plain", out.Get("Content-Type"))
}
