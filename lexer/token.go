package lexer

import (
	"fmt"

	"github.com/dhamidi/parc"
)

// KindError marks input no rule matched. The scanners in this package never
// fail; they emit error tokens and keep going.
const KindError parc.Kind = "ERROR"

// Position represents a location in source text.
type Position struct {
	File   string
	Offset int // byte offset from start of input
	Line   int // 1-based line number
	Column int // 1-based column (in bytes, not runes)
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span covers a token from its first byte to just past its last.
type Span struct {
	Start Position
	End   Position
}

// Token is a lexed token. The field is named Type because Kind is the
// parc.Token method that exposes it.
type Token struct {
	Type    parc.Kind
	Literal string
	Span    Span
}

// Kind implements parc.Token.
func (t Token) Kind() parc.Kind { return t.Type }

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Span.Start, t.Type, t.Literal)
}

// Filter returns the tokens whose kind is not in skip, preserving order.
func Filter(toks []Token, skip ...parc.Kind) []Token {
	drop := make(map[parc.Kind]bool, len(skip))
	for _, k := range skip {
		drop[k] = true
	}
	kept := make([]Token, 0, len(toks))
	for _, t := range toks {
		if !drop[t.Type] {
			kept = append(kept, t)
		}
	}
	return kept
}

// Stream wraps toks in a stream for the combinators. The stream supplies
// end-of-stream tokens on its own; nothing is appended here.
func Stream(toks []Token) *parc.SliceStream {
	ts := make([]parc.Token, len(toks))
	for i, t := range toks {
		ts[i] = t
	}
	return parc.NewSliceStream(ts)
}
