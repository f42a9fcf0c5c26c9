package dtype

import "time"

// Resolver attempts to interpret a raw pattern token as an element-type
// constraint. It returns the constraint and true if the token names an
// element type, or false if the token should be treated as a dimension
// token instead. A Resolver is injected per array runtime, so one
// parser serves runtimes with different type vocabularies.
type Resolver func(tok any) (Spec, bool)

// Resolve is the default resolver for this package's vocabulary:
//
//   - DataType values become exact constraints
//   - Kind values become kind-only constraints
//   - time.Time and time.Duration values (or pointers used as type
//     markers) map to Datetime64 and Timedelta64
//
// Anything else is not an element-type token.
func Resolve(tok any) (Spec, bool) {
	switch v := tok.(type) {
	case DataType:
		return Exact(v), true
	case Kind:
		return OfKind(v), true
	case time.Time, *time.Time:
		return Exact(Datetime64), true
	case time.Duration, *time.Duration:
		return Exact(Timedelta64), true
	default:
		return Spec{}, false
	}
}
