// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pattern provides declarative shape/dtype patterns for
// validating multi-dimensional array values at runtime.
//
// # Overview
//
// A pattern describes the expected shape and element type of an
// array-like value. It is parsed once from a heterogeneous argument
// list and then matched against arbitrarily many concrete values:
//
//	spec, pat, err := pattern.Parse(
//	    []any{dtype.Int64, 1, 2, pattern.Ellipsis},
//	    dtype.Resolve,
//	)
//	if err != nil {
//	    // malformed pattern expression
//	}
//	ok := pattern.Matches(spec, pat, pattern.Shape{1, 2, 3, 7}, dtype.Int64)
//
// # Dimension tokens
//
//   - a non-negative int fixes one extent
//   - -1 is a wildcard: any extent >= 1 (a wildcard never accepts 0)
//   - pattern.Ellipsis spans zero or more dimensions; one per pattern
//   - pattern.Sym("n") is a symbolic dimension, any extent >= 0
//   - nil is a deliberate always-fail slot
//   - pattern.Scalar, or an empty sequence, requires rank 0
//
// A pure-ellipsis pattern accepts a scalar but rejects any shape that
// contains a zero extent; this asymmetry is intentional and tested.
//
// # Element types
//
// The optional element-type token is recognized through an injected
// dtype.Resolver, so the same grammar serves array runtimes with
// different type vocabularies. See the dtype package.
//
// Patterns and specs are immutable after Parse and safe to share
// across goroutines; matching is a pure function.
package pattern
