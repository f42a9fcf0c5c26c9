package pattern

import "strconv"

// Dim is one slot of a shape pattern. Concrete variants:
//
//   - Fixed(n): matches only extent n
//   - Wild: matches any extent >= 1 (never 0)
//   - Sym(name): matches any extent >= 0
//   - Unset: matches nothing (deliberate always-fail slot)
//
// The gap placeholder is not a Dim; it is stored as the pattern's gap
// position, since it spans a run of dimensions rather than one slot.
// All Dim variants are comparable, so patterns compare structurally
// with ==.
type Dim interface {
	isDim()
	String() string
}

// Fixed matches exactly one non-negative extent.
type Fixed int

func (Fixed) isDim() {}

func (f Fixed) String() string { return strconv.Itoa(int(f)) }

// Sym is a named symbolic dimension. It matches any extent >= 0.
// Repeated occurrences of the same name are matched independently;
// the matcher does not unify them across slots.
type Sym string

func (Sym) isDim() {}

func (s Sym) String() string { return string(s) }

type wildDim struct{}

func (wildDim) isDim() {}

func (wildDim) String() string { return "-1" }

// Wild matches any positive extent. Extent 0 never matches: a wildcard
// means "some positive extent", not "don't care about emptiness".
var Wild Dim = wildDim{}

type unsetDim struct{}

func (unsetDim) isDim() {}

func (unsetDim) String() string { return "nil" }

// Unset is the uninitialized-dimension sentinel. It fails against every
// concrete extent, including during gap expansion.
var Unset Dim = unsetDim{}

// admits reports whether one pattern slot accepts one concrete extent.
func admits(d Dim, extent int) bool {
	switch v := d.(type) {
	case Fixed:
		return extent == int(v)
	case wildDim:
		return extent >= 1
	case Sym:
		return extent >= 0
	default:
		return false
	}
}

// Raw-token sentinels recognized by Parse.

type ellipsisToken struct{}

func (ellipsisToken) String() string { return "..." }

// Ellipsis is the raw-token gap placeholder: it matches a contiguous
// run of zero or more dimensions. At most one may appear per pattern.
var Ellipsis = ellipsisToken{}

type scalarToken struct{}

func (scalarToken) String() string { return "()" }

// Scalar is the raw-token scalar marker. Alone it produces the scalar
// pattern (rank 0 required); combined with any other dimension token it
// is a syntax error. The empty sequence is an equivalent spelling.
var Scalar = scalarToken{}
