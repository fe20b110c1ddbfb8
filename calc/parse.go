// Package calc implements a small arithmetic expression language on top of
// the parc combinators: numbers, variables, the usual operators with
// precedence, parentheses and # comments. It doubles as the house example
// of writing a rewind-free grammar.
package calc

import (
	"errors"
	"fmt"

	"github.com/dhamidi/parc"
	"github.com/dhamidi/parc/lexer"
)

// Parse parses one calc expression. The whole input must be consumed.
func Parse(src string) (*Node, error) {
	return ParseFile(src, "")
}

// ParseFile is Parse with a file name for positions in error messages.
func ParseFile(src, file string) (*Node, error) {
	toks := lexer.New(LexerConfig()).Tokens([]byte(src), file)
	for _, tok := range toks {
		if tok.Type == lexer.KindError {
			return nil, &parc.ParseError{
				Msg:   fmt.Sprintf("%s: unexpected input %q", tok.Span.Start, tok.Literal),
				Token: tok,
			}
		}
	}

	s := lexer.Stream(toks)
	node, ok := grammar(s).Value()
	if !ok || hasMissing(node) {
		return nil, syntaxError(s)
	}
	if err := parc.Consume(s, parc.KindEnd); err != nil {
		return nil, trailingError(err)
	}
	return node, nil
}

// syntaxError reports the token the parse stopped on. Parsers do not
// rewind, so after a failure the stream still sits on exactly that token.
func syntaxError(s parc.TokenStream) error {
	tok := s.Token()
	if lt, ok := tok.(lexer.Token); ok {
		return &parc.ParseError{
			Msg:   fmt.Sprintf("%s: unexpected %s %q", lt.Span.Start, lt.Type, lt.Literal),
			Token: lt,
		}
	}
	return &parc.ParseError{Msg: "unexpected end of input", Token: tok}
}

func trailingError(err error) error {
	var perr *parc.ParseError
	if errors.As(err, &perr) {
		if lt, ok := perr.Token.(lexer.Token); ok {
			perr.Msg = fmt.Sprintf("%s: unexpected trailing %s %q", lt.Span.Start, lt.Type, lt.Literal)
		}
	}
	return err
}
