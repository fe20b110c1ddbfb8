package parc

import "fmt"

// ParseError reports input a grammar cannot continue past. It is the
// unrecoverable channel: ordinary failure travels inside Result and carries
// no payload, while Get and Consume hand a ParseError to the caller.
// Combinators never produce or inspect one.
type ParseError struct {
	Msg      string // human-readable description
	Token    Token  // offending token, when known
	Expected Kind   // expected kind, when the failure was a kind mismatch
}

func (e *ParseError) Error() string { return e.Msg }

// Errorf builds a ParseError from a format string.
func Errorf(format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}
