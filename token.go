package parc

import "fmt"

// Kind identifies a class of tokens. The engine compares kinds only for
// equality; token producers choose the vocabulary.
type Kind string

// KindEnd is the kind of every end-of-stream token.
const KindEnd Kind = "END"

// Token is one unit of parser input. The engine never looks inside a token
// beyond its kind.
type Token interface {
	Kind() Kind
}

// EndOfStream is the token reported at and past the last position of a
// stream. Streams mint them freely, so there may be many distinct values;
// check the kind, never identity.
type EndOfStream struct{}

func (EndOfStream) Kind() Kind { return KindEnd }

func (EndOfStream) String() string { return "<end of stream>" }

// TokenStream is a cursor over a token sequence.
//
// Token returns the current token without moving the cursor and may be
// called any number of times. Next advances one position and returns the
// new current token. Once the input is exhausted both keep returning
// end-of-stream tokens; advancing past the end is not an error.
type TokenStream interface {
	Token() Token
	Next() Token
}

// Consume checks the current token of s against k. On a match it advances
// past that token; on a mismatch it leaves s untouched and returns a
// *ParseError carrying the offending token and the expected kind.
func Consume(s TokenStream, k Kind) error {
	tok := s.Token()
	if tok.Kind() != k {
		return &ParseError{
			Msg:      fmt.Sprintf("%v did not match expected type %s", tok, k),
			Token:    tok,
			Expected: k,
		}
	}
	s.Next()
	return nil
}

// SliceStream is a TokenStream over a token slice.
type SliceStream struct {
	toks []Token
	pos  int
}

// NewSliceStream returns a stream positioned on the first token of toks.
func NewSliceStream(toks []Token) *SliceStream {
	return &SliceStream{toks: toks}
}

// Token returns the current token, or an end-of-stream token once the
// cursor has moved past the last one.
func (s *SliceStream) Token() Token {
	if s.pos >= len(s.toks) {
		return EndOfStream{}
	}
	return s.toks[s.pos]
}

// Next advances the cursor and returns the new current token.
func (s *SliceStream) Next() Token {
	if s.pos < len(s.toks) {
		s.pos++
	}
	return s.Token()
}

// Pos reports how many tokens have been consumed. Handy in error messages:
// because parsers do not rewind, after a failed parse the cursor sits on
// the token that stopped it.
func (s *SliceStream) Pos() int { return s.pos }
