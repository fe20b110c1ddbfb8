package parc

// Parser reads tokens from a stream and produces a Result. Failure does not
// restore the stream: whatever a parser consumed before failing stays
// consumed. See the package documentation for what that means for
// alternation.
type Parser[R any] func(TokenStream) Result[R]

// Get runs p and unwraps the outcome, turning ordinary failure into a
// *ParseError. It is the bridge from the Result channel to the error
// channel at the top of a grammar.
func (p Parser[R]) Get(s TokenStream) (R, error) {
	if v, ok := p(s).Value(); ok {
		return v, nil
	}
	var zero R
	return zero, Errorf("parse failed")
}

// Const returns a parser that always succeeds with v and reads nothing.
func Const[R any](v R) Parser[R] {
	return func(TokenStream) Result[R] { return Succeed(v) }
}

// Never returns a parser that always fails.
func Never[R any]() Parser[R] {
	return func(TokenStream) Result[R] { return Fail[R]() }
}

// Term returns a parser for a single token of kind k. It consumes the
// token on success and consumes nothing on failure, which makes it the
// safe guard at the front of a choice alternative.
func Term(k Kind) Parser[Token] {
	return func(s TokenStream) Result[Token] {
		tok := s.Token()
		if tok.Kind() != k {
			return Fail[Token]()
		}
		s.Next()
		return Succeed(tok)
	}
}

// Lazy defers building a parser until its first run, so a grammar can
// refer to itself.
func Lazy[R any](build func() Parser[R]) Parser[R] {
	var p Parser[R]
	return func(s TokenStream) Result[R] {
		if p == nil {
			p = build()
		}
		return p(s)
	}
}
