package pattern

import "github.com/born-ml/shapeguard/internal/dtype"

// Result records the concrete choices behind a successful match: the
// extent each symbolic slot accepted and the span the gap expanded
// over. It exists for diagnostics only; matching itself is strictly
// boolean, and callers must never branch on these bindings.
type Result struct {
	Syms     map[string]int // extent seen per symbolic name (last occurrence wins)
	GapStart int            // first concrete index the gap covers, -1 without a gap
	GapWidth int            // number of concrete dimensions the gap covers
}

// Matches reports whether a concrete shape and element descriptor
// conform to a pattern and element spec. The element check runs first
// and is decisive on failure. Matching never errors and never mutates
// the pattern.
func Matches(spec dtype.Spec, p Pattern, shape Shape, elem dtype.DataType) bool {
	_, ok := Match(spec, p, shape, elem)
	return ok
}

// Match is Matches plus the bindings chosen for wildcard-free slots;
// the Result is meaningful only when the second return is true.
func Match(spec dtype.Spec, p Pattern, shape Shape, elem dtype.DataType) (Result, bool) {
	res := Result{GapStart: -1}
	if !spec.Admits(elem) {
		return Result{}, false
	}
	switch {
	case p.free:
		return res, true
	case p.scalar:
		return res, shape.IsScalar()
	case !p.hasGap:
		if shape.Rank() != len(p.dims) {
			return Result{}, false
		}
		if !matchSlots(p.dims, shape, &res) {
			return Result{}, false
		}
		return res, true
	}

	// One gap: split the shape around the fixed left and right runs.
	left := p.gapAt
	right := len(p.dims) - p.gapAt
	if shape.Rank() < left+right {
		return Result{}, false
	}
	middle := shape[left : shape.Rank()-right]
	if !matchSlots(p.dims[:left], shape[:left], &res) {
		return Result{}, false
	}
	if !matchSlots(p.dims[left:], shape[shape.Rank()-right:], &res) {
		return Result{}, false
	}
	// The gap spans anything except zero extents: an empty middle is
	// fine (a pure-gap pattern accepts a scalar), a zero extent is not.
	if middle.HasZeroDim() {
		return Result{}, false
	}
	res.GapStart = left
	res.GapWidth = len(middle)
	return res, true
}

func matchSlots(dims []Dim, extents Shape, res *Result) bool {
	for i, d := range dims {
		if !admits(d, extents[i]) {
			return false
		}
		if s, ok := d.(Sym); ok {
			if res.Syms == nil {
				res.Syms = make(map[string]int)
			}
			res.Syms[string(s)] = extents[i]
		}
	}
	return true
}
