// Package dtype provides element-type descriptors for the shapeguard validation engine.
package dtype

import "strconv"

// Kind is a coarse element-type category, independent of bit-width.
// The codes follow the NumPy kind-character convention so descriptors
// translate directly across array runtimes.
type Kind byte

// Supported kinds.
const (
	KindBool      Kind = 'b'
	KindInt       Kind = 'i'
	KindUint      Kind = 'u'
	KindFloat     Kind = 'f'
	KindComplex   Kind = 'c'
	KindBytes     Kind = 'S'
	KindString    Kind = 'U'
	KindObject    Kind = 'O'
	KindDatetime  Kind = 'M'
	KindTimedelta Kind = 'm'
)

// Sized reports whether descriptors of this kind carry a fixed byte width.
// Bytes, strings, and opaque objects have no fixed width.
func (k Kind) Sized() bool {
	switch k {
	case KindBytes, KindString, KindObject:
		return false
	default:
		return true
	}
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindComplex:
		return "complex"
	case KindBytes:
		return "bytes"
	case KindString:
		return "str"
	case KindObject:
		return "object"
	case KindDatetime:
		return "datetime"
	case KindTimedelta:
		return "timedelta"
	default:
		return "unknown"
	}
}

// DataType is a concrete element descriptor: a kind plus a byte width.
// Size is 0 for unsized kinds. Two descriptors are the same element
// type iff they are ==.
type DataType struct {
	Kind Kind
	Size int
}

// Predeclared descriptors.
var (
	Bool        = DataType{KindBool, 1}
	Int8        = DataType{KindInt, 1}
	Int16       = DataType{KindInt, 2}
	Int32       = DataType{KindInt, 4}
	Int64       = DataType{KindInt, 8}
	Uint8       = DataType{KindUint, 1}
	Uint16      = DataType{KindUint, 2}
	Uint32      = DataType{KindUint, 4}
	Uint64      = DataType{KindUint, 8}
	Float32     = DataType{KindFloat, 4}
	Float64     = DataType{KindFloat, 8}
	Complex64   = DataType{KindComplex, 8}
	Complex128  = DataType{KindComplex, 16}
	Datetime64  = DataType{KindDatetime, 8}
	Timedelta64 = DataType{KindTimedelta, 8}
)

// Bits returns the width of the descriptor in bits, or 0 for unsized kinds.
func (dt DataType) Bits() int {
	return dt.Size * 8
}

// String returns a human-readable name for the descriptor, e.g. "int64"
// or "float32". Unsized kinds render by kind name alone.
func (dt DataType) String() string {
	if !dt.Kind.Sized() || dt.Size == 0 {
		return dt.Kind.String()
	}
	switch dt.Kind {
	case KindBool:
		return "bool"
	case KindDatetime:
		return "datetime64"
	case KindTimedelta:
		return "timedelta64"
	default:
		return dt.Kind.String() + strconv.Itoa(dt.Bits())
	}
}
