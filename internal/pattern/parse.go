package pattern

import "github.com/born-ml/shapeguard/internal/dtype"

// Parse turns a raw subscript argument into an element-type spec and a
// shape pattern.
//
// The argument is a single token or a sequence of tokens ([]any, []int,
// or Shape). Recognized tokens:
//
//   - any token the resolver claims  -> element-type constraint (at most one)
//   - int n >= 0                     -> Fixed(n)
//   - int -1                         -> Wild
//   - Ellipsis                       -> the gap (at most one)
//   - nil                            -> Unset (always-fail slot)
//   - Sym("name")                    -> symbolic dimension
//   - a nested sequence              -> flattened one level
//   - Scalar or an empty sequence    -> scalar pattern (must stand alone)
//   - a Dim value                    -> itself
//
// A nil resolver defaults to dtype.Resolve. Parse is pure: it never
// returns a partial pattern, and the same argument always yields the
// same result.
func Parse(raw any, resolve dtype.Resolver) (dtype.Spec, Pattern, error) {
	if resolve == nil {
		resolve = dtype.Resolve
	}

	flat := flatten(raw)

	spec := dtype.Any()
	specSet := false
	var dims []Dim
	gapAt := -1
	scalars := 0

	for i, tok := range flat {
		if s, ok := resolve(tok); ok {
			if specSet {
				return dtype.Any(), Pattern{}, syntaxErr(ErrAmbiguousDType, tok, i)
			}
			spec, specSet = s, true
			continue
		}
		switch v := tok.(type) {
		case int:
			switch {
			case v >= 0:
				dims = append(dims, Fixed(v))
			case v == -1:
				dims = append(dims, Wild)
			default:
				return dtype.Any(), Pattern{}, syntaxErr(ErrNegativeDim, tok, i)
			}
		case ellipsisToken:
			if gapAt >= 0 {
				return dtype.Any(), Pattern{}, syntaxErr(ErrMultipleGaps, tok, i)
			}
			gapAt = len(dims)
		case scalarToken:
			scalars++
			if scalars > 1 {
				return dtype.Any(), Pattern{}, syntaxErr(ErrMultipleScalars, tok, i)
			}
		case nil:
			dims = append(dims, Unset)
		case Sym:
			dims = append(dims, v)
		case Dim:
			dims = append(dims, v)
		default:
			return dtype.Any(), Pattern{}, syntaxErr(ErrBadToken, tok, i)
		}
	}

	if scalars > 0 {
		if len(dims) > 0 || gapAt >= 0 {
			return dtype.Any(), Pattern{}, syntaxErr(ErrScalarWithDims, nil, -1)
		}
		return spec, scalarPattern(), nil
	}
	if len(dims) == 0 && gapAt < 0 {
		return spec, Unconstrained(), nil
	}
	if gapAt < 0 {
		return spec, Pattern{dims: dims}, nil
	}
	return spec, Pattern{dims: dims, gapAt: gapAt, hasGap: true}, nil
}

// flatten normalizes the raw argument into a single token list: a
// non-sequence becomes a one-token list, nested sequences are expanded
// one level, and empty sequences stand in for the scalar marker.
func flatten(raw any) []any {
	toks, ok := asSequence(raw)
	if !ok {
		return []any{raw}
	}
	if len(toks) == 0 {
		return []any{Scalar}
	}
	flat := make([]any, 0, len(toks))
	for _, tok := range toks {
		sub, ok := asSequence(tok)
		switch {
		case ok && len(sub) == 0:
			flat = append(flat, Scalar)
		case ok:
			flat = append(flat, sub...)
		default:
			flat = append(flat, tok)
		}
	}
	return flat
}

func asSequence(tok any) ([]any, bool) {
	switch v := tok.(type) {
	case []any:
		return v, true
	case []int:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, true
	case Shape:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, true
	default:
		return nil, false
	}
}
