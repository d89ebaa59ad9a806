// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volley

import (
	"testing"
)

func TestSimpleLogger(t *testing.T) {
	logger := NewSimpleLogger()
	logger.Debug("debug message", "key", "value")
	logger.Info("info message")
	logger.Warn("warn message", "elapsed", "3s", "status", 200)
	logger.Error("error message", "dangling")
}
