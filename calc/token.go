package calc

import (
	"github.com/dhamidi/parc"
	"github.com/dhamidi/parc/lexer"
)

// Token kinds of the calc language.
const (
	TokenNumber     parc.Kind = "NUMBER"
	TokenIdent      parc.Kind = "IDENT"
	TokenPlus       parc.Kind = "PLUS"
	TokenMinus      parc.Kind = "MINUS"
	TokenStar       parc.Kind = "STAR"
	TokenSlash      parc.Kind = "SLASH"
	TokenPercent    parc.Kind = "PERCENT"
	TokenLParen     parc.Kind = "LPAREN"
	TokenRParen     parc.Kind = "RPAREN"
	TokenWhitespace parc.Kind = "WS"
	TokenComment    parc.Kind = "COMMENT"
)

// LexerConfig returns the lexical shape of calc input: numbers, variable
// names, arithmetic operators, parentheses and # line comments.
func LexerConfig() lexer.Config {
	return lexer.Config{
		Symbols: map[string]parc.Kind{
			"+": TokenPlus,
			"-": TokenMinus,
			"*": TokenStar,
			"/": TokenSlash,
			"%": TokenPercent,
			"(": TokenLParen,
			")": TokenRParen,
		},
		Ident:         TokenIdent,
		Number:        TokenNumber,
		Whitespace:    TokenWhitespace,
		LineComment:   TokenComment,
		CommentPrefix: "#",
		Skip:          []parc.Kind{TokenWhitespace, TokenComment},
	}
}
