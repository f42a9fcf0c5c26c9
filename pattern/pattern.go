// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package pattern

import (
	"github.com/born-ml/shapeguard/dtype"
	"github.com/born-ml/shapeguard/internal/pattern"
)

// Shape represents the concrete dimensions of an array value.
// Example: Shape{2, 3, 4} is a 3D value; Shape{} is a scalar.
type Shape = pattern.Shape

// Dim is one slot of a shape pattern.
type Dim = pattern.Dim

// Fixed matches exactly one non-negative extent.
type Fixed = pattern.Fixed

// Sym is a named symbolic dimension, matching any extent >= 0.
type Sym = pattern.Sym

// Wild matches any positive extent; zero never matches.
var Wild = pattern.Wild

// Unset is the uninitialized-dimension sentinel; it matches nothing.
var Unset = pattern.Unset

// Ellipsis is the raw-token gap placeholder, matching a contiguous run
// of zero or more dimensions. At most one per pattern.
var Ellipsis = pattern.Ellipsis

// Scalar is the raw-token scalar marker; alone it requires rank 0.
var Scalar = pattern.Scalar

// Pattern is a parsed, immutable shape constraint.
type Pattern = pattern.Pattern

// Unconstrained returns the pattern that accepts every shape.
func Unconstrained() Pattern { return pattern.Unconstrained() }

// Result records the bindings behind a successful match, for
// diagnostics only.
type Result = pattern.Result

// SyntaxError reports a malformed pattern argument.
type SyntaxError = pattern.SyntaxError

// Parse failure sentinels, testable with errors.Is.
var (
	ErrAmbiguousDType  = pattern.ErrAmbiguousDType
	ErrMultipleGaps    = pattern.ErrMultipleGaps
	ErrMultipleScalars = pattern.ErrMultipleScalars
	ErrScalarWithDims  = pattern.ErrScalarWithDims
	ErrNegativeDim     = pattern.ErrNegativeDim
	ErrBadToken        = pattern.ErrBadToken
)

// Parse turns a raw subscript argument (a token or a sequence of
// tokens) into an element-type spec and a shape pattern. A nil
// resolver defaults to dtype.Resolve.
func Parse(raw any, resolve dtype.Resolver) (dtype.Spec, Pattern, error) {
	return pattern.Parse(raw, resolve)
}

// Matches reports whether a concrete shape and element descriptor
// conform to a pattern and element spec.
func Matches(spec dtype.Spec, p Pattern, shape Shape, elem dtype.DataType) bool {
	return pattern.Matches(spec, p, shape, elem)
}

// Match is Matches plus the concrete bindings of a successful match.
func Match(spec dtype.Spec, p Pattern, shape Shape, elem dtype.DataType) (Result, bool) {
	return pattern.Match(spec, p, shape, elem)
}

// Format renders a spec and pattern pair for display, e.g.
// "Pattern[int64, (1, 2, ...)]".
func Format(spec dtype.Spec, p Pattern) string {
	return pattern.Format(spec, p)
}

// Cache parses each distinct pattern expression at most once; the zero
// value is ready to use.
type Cache = pattern.Cache
