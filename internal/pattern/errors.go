package pattern

import (
	"errors"
	"fmt"
)

// Parse failure reasons.
var (
	ErrAmbiguousDType  = errors.New("multiple element-type tokens")
	ErrMultipleGaps    = errors.New("multiple ellipsis placeholders")
	ErrMultipleScalars = errors.New("multiple scalar markers")
	ErrScalarWithDims  = errors.New("scalar marker combined with dimension tokens")
	ErrNegativeDim     = errors.New("negative dimension (only -1 is a wildcard)")
	ErrBadToken        = errors.New("unrecognized pattern token")
)

// SyntaxError reports a malformed pattern argument. It is returned only
// by Parse; matching never errors.
type SyntaxError struct {
	Reason error // one of the Err* sentinels
	Token  any   // offending token, if one exists
	Pos    int   // token position in the flattened argument list, -1 if n/a
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("invalid shape pattern: %v (token %v at position %d)", e.Reason, e.Token, e.Pos)
	}
	return fmt.Sprintf("invalid shape pattern: %v", e.Reason)
}

// Unwrap returns the sentinel reason, so callers can test with
// errors.Is.
func (e *SyntaxError) Unwrap() error {
	return e.Reason
}

func syntaxErr(reason error, tok any, pos int) error {
	return &SyntaxError{Reason: reason, Token: tok, Pos: pos}
}
