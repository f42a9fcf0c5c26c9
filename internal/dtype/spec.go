package dtype

// Spec is an element-type constraint attached to a shape pattern.
// It has exactly one of three states:
//
//   - unconstrained: any element type passes
//   - kind-constrained: any descriptor with a matching Kind passes
//   - exact: only one specific descriptor passes
//
// The zero value is the unconstrained spec. Specs are immutable value
// types and are compared with Equal.
type Spec struct {
	kind    Kind
	exact   DataType
	isKind  bool
	isExact bool
}

// Any returns the unconstrained spec.
func Any() Spec {
	return Spec{}
}

// OfKind returns a spec that admits any descriptor of kind k,
// regardless of width.
func OfKind(k Kind) Spec {
	return Spec{kind: k, isKind: true}
}

// Exact returns a spec that admits only the descriptor dt.
func Exact(dt DataType) Spec {
	return Spec{exact: dt, kind: dt.Kind, isExact: true}
}

// IsAny reports whether the spec is unconstrained.
func (s Spec) IsAny() bool { return !s.isKind && !s.isExact }

// IsKind reports whether the spec constrains the kind only.
func (s Spec) IsKind() bool { return s.isKind }

// IsExact reports whether the spec names one exact descriptor.
func (s Spec) IsExact() bool { return s.isExact }

// Kind returns the constrained kind. For exact specs this is the
// exact descriptor's kind; for unconstrained specs it is 0.
func (s Spec) Kind() Kind { return s.kind }

// DataType returns the exact descriptor and whether the spec is exact.
func (s Spec) DataType() (DataType, bool) { return s.exact, s.isExact }

// Admits reports whether a concrete descriptor satisfies the spec.
func (s Spec) Admits(dt DataType) bool {
	switch {
	case s.isExact:
		return dt == s.exact
	case s.isKind:
		return dt.Kind == s.kind
	default:
		return true
	}
}

// Equal reports whether two specs constrain identically.
func (s Spec) Equal(other Spec) bool {
	return s == other
}

// String renders the spec for diagnostics: the descriptor name for
// exact specs, the kind name for kind specs, "any" otherwise.
func (s Spec) String() string {
	switch {
	case s.isExact:
		return s.exact.String()
	case s.isKind:
		return s.kind.String()
	default:
		return "any"
	}
}
