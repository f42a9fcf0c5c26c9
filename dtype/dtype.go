// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dtype provides the public element-type vocabulary for shapeguard.
//
// A DataType describes one concrete element type (kind plus byte
// width); a Kind is the coarse category alone; a Spec is the constraint
// a pattern places on them. Resolvers translate raw pattern tokens into
// Specs, one resolver per array runtime.
//
// Example:
//
//	spec := dtype.Exact(dtype.Int64)
//	spec.Admits(dtype.Int64) // true
//	spec.Admits(dtype.Int8)  // false
package dtype

import (
	"github.com/born-ml/shapeguard/internal/dtype"
)

// Kind is a coarse element-type category (integer, float, string, ...)
// independent of bit-width.
type Kind = dtype.Kind

// Kind codes, following the NumPy kind-character convention.
const (
	KindBool      Kind = dtype.KindBool
	KindInt       Kind = dtype.KindInt
	KindUint      Kind = dtype.KindUint
	KindFloat     Kind = dtype.KindFloat
	KindComplex   Kind = dtype.KindComplex
	KindBytes     Kind = dtype.KindBytes
	KindString    Kind = dtype.KindString
	KindObject    Kind = dtype.KindObject
	KindDatetime  Kind = dtype.KindDatetime
	KindTimedelta Kind = dtype.KindTimedelta
)

// DataType is a concrete element descriptor. Two descriptors are the
// same element type iff they are ==.
type DataType = dtype.DataType

// Predeclared descriptors.
var (
	Bool        = dtype.Bool
	Int8        = dtype.Int8
	Int16       = dtype.Int16
	Int32       = dtype.Int32
	Int64       = dtype.Int64
	Uint8       = dtype.Uint8
	Uint16      = dtype.Uint16
	Uint32      = dtype.Uint32
	Uint64      = dtype.Uint64
	Float32     = dtype.Float32
	Float64     = dtype.Float64
	Complex64   = dtype.Complex64
	Complex128  = dtype.Complex128
	Datetime64  = dtype.Datetime64
	Timedelta64 = dtype.Timedelta64
)

// Spec is an element-type constraint: unconstrained, kind-constrained,
// or exact.
type Spec = dtype.Spec

// Any returns the unconstrained spec.
func Any() Spec { return dtype.Any() }

// OfKind returns a spec admitting any descriptor of kind k.
func OfKind(k Kind) Spec { return dtype.OfKind(k) }

// Exact returns a spec admitting only the descriptor dt.
func Exact(dt DataType) Spec { return dtype.Exact(dt) }

// Resolver interprets raw pattern tokens as element-type constraints.
// It is the injection point that lets one parser serve different array
// runtimes.
type Resolver = dtype.Resolver

// Resolve is the default resolver for this package's vocabulary.
func Resolve(tok any) (Spec, bool) { return dtype.Resolve(tok) }
