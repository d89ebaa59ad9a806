// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "network", KindNetwork.String())
	assert.Equal(t, "timeout", KindTimeout.String())
	assert.Equal(t, "auth", KindAuth.String())
	assert.Equal(t, "server", KindServer.String())
	assert.Equal(t, "client", KindClient.String())
	assert.Equal(t, "kind(99)", Kind(99).String())
}

func TestErrorString(t *testing.T) {
	cause := errors.New("boom")
	assert.Equal(t, "volley: server error: status 503: boom",
		(&Error{Kind: KindServer, StatusCode: 503, Cause: cause}).Error())
	assert.Equal(t, "volley: server error: status 503",
		(&Error{Kind: KindServer, StatusCode: 503}).Error())
	assert.Equal(t, "volley: network error: boom",
		(&Error{Kind: KindNetwork, Cause: cause}).Error())
	assert.Equal(t, "volley: timeout error",
		(&Error{Kind: KindTimeout}).Error())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := &Error{Kind: KindNetwork, Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestErrorIs(t *testing.T) {
	err := &Error{Kind: KindServer, StatusCode: 500}
	assert.ErrorIs(t, err, &Error{Kind: KindServer})
	assert.NotErrorIs(t, err, &Error{Kind: KindClient})
	assert.NotErrorIs(t, err, errors.New("server"))
}
