// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry translates failed transport attempts into terminal
// errors or retry signals.
//
// The volley network core is retry-count-agnostic: after every failed
// attempt it hands a Failure to a Classifier and merely acts on the
// Decision that comes back, looping until the classifier declares the
// failure terminal. Retry bookkeeping (attempt and timeout counters)
// lives on the request itself and is mutated by the classifier, never
// by the core.
//
// A Classifier is typically built from a Decider, which decides whether
// to retry, and a Waiter, which decides how long to back off first.
// DefaultClassifier composes DefaultDecider and DefaultWaiter and is
// suitable for common use cases.
package retry
