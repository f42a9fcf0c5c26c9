package pattern

import (
	"strings"

	"github.com/born-ml/shapeguard/internal/dtype"
)

// Pattern is a parsed, immutable shape constraint. It is one of:
//
//   - unconstrained: no shape requirement at all (the zero value)
//   - scalar: rank 0 required
//   - a sequence of Dim slots with at most one gap between them
//
// Patterns are built by Parse, never mutated afterwards, and are safe
// to share across goroutines.
type Pattern struct {
	dims   []Dim
	gapAt  int // gap sits before dims[gapAt]; meaningful only when hasGap
	hasGap bool
	scalar bool
	free   bool
}

// Unconstrained returns the pattern that accepts every shape.
func Unconstrained() Pattern {
	return Pattern{free: true}
}

func scalarPattern() Pattern {
	return Pattern{scalar: true}
}

// Dims returns a copy of the pattern's dimension slots, excluding the
// gap.
func (p Pattern) Dims() []Dim {
	out := make([]Dim, len(p.dims))
	copy(out, p.dims)
	return out
}

// Rank returns the number of dimension slots, excluding the gap.
func (p Pattern) Rank() int {
	return len(p.dims)
}

// HasGap reports whether the pattern contains an ellipsis gap.
func (p Pattern) HasGap() bool {
	return p.hasGap
}

// GapIndex returns the slot index the gap sits before, and whether a
// gap is present.
func (p Pattern) GapIndex() (int, bool) {
	return p.gapAt, p.hasGap
}

// IsScalarPattern reports whether the pattern explicitly requires
// rank 0.
func (p Pattern) IsScalarPattern() bool {
	return p.scalar
}

// IsUnconstrained reports whether the pattern accepts every shape.
func (p Pattern) IsUnconstrained() bool {
	return p.free
}

// Equal reports structural equality: same constraint mode, same dim
// sequence, same gap position.
func (p Pattern) Equal(other Pattern) bool {
	if p.free != other.free || p.scalar != other.scalar || p.hasGap != other.hasGap {
		return false
	}
	if p.hasGap && p.gapAt != other.gapAt {
		return false
	}
	if len(p.dims) != len(other.dims) {
		return false
	}
	for i := range p.dims {
		if p.dims[i] != other.dims[i] {
			return false
		}
	}
	return true
}

// String renders the pattern canonically: "any" for unconstrained,
// "()" for the scalar pattern, otherwise a tuple with "..." at the gap
// position, e.g. "(1, -1, ..., n)".
func (p Pattern) String() string {
	switch {
	case p.free:
		return "any"
	case p.scalar:
		return "()"
	}
	var b strings.Builder
	b.WriteByte('(')
	wrote := false
	for i, d := range p.dims {
		if p.hasGap && i == p.gapAt {
			if wrote {
				b.WriteString(", ")
			}
			b.WriteString("...")
			wrote = true
		}
		if wrote {
			b.WriteString(", ")
		}
		b.WriteString(d.String())
		wrote = true
	}
	if p.hasGap && p.gapAt == len(p.dims) {
		if wrote {
			b.WriteString(", ")
		}
		b.WriteString("...")
	}
	b.WriteByte(')')
	return b.String()
}

// Format renders an element spec and pattern pair the way a host
// exposes them in a repr, e.g. "Pattern[int64, (1, 2, ...)]". Fully
// unconstrained pairs render as "Pattern".
func Format(spec dtype.Spec, p Pattern) string {
	var parts []string
	if !spec.IsAny() {
		parts = append(parts, spec.String())
	}
	if !p.free {
		parts = append(parts, p.String())
	}
	if len(parts) == 0 {
		return "Pattern"
	}
	return "Pattern[" + strings.Join(parts, ", ") + "]"
}
