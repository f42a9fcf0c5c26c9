// Package pattern implements the shape/dtype pattern grammar and its
// matching algorithm for the shapeguard validation engine.
package pattern

import (
	"strconv"
	"strings"
)

// Shape represents the concrete dimensions of an array value.
// Example: Shape{2, 3, 4} is a 3D value with extents 2×3×4; Shape{} is
// a scalar.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// IsScalar reports whether the shape has rank 0.
func (s Shape) IsScalar() bool {
	return len(s) == 0
}

// HasZeroDim reports whether any dimension has extent 0.
func (s Shape) HasZeroDim() bool {
	for _, dim := range s {
		if dim == 0 {
			return true
		}
	}
	return false
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String renders the shape as a tuple, e.g. "(2, 3)" or "()" for a
// scalar.
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, dim := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(dim))
	}
	b.WriteByte(')')
	return b.String()
}
