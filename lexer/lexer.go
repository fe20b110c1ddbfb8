// Package lexer turns source text into tokens for the parc combinators.
//
// Two scanners are provided. Lexer runs from a Config of symbol and keyword
// tables and covers the usual hand-written-lexer ground: identifiers,
// keywords, numbers, strings, line comments, operators. EBNF scans by
// matching the token productions of an EBNF grammar, for languages whose
// lexical shape is described in a grammar file rather than in code.
package lexer

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/parc"
)

// Config declares the lexical shape of a language. An empty kind disables
// its class, except Whitespace: with no whitespace kind, whitespace is
// dropped silently instead of tokenized.
type Config struct {
	Symbols       map[string]parc.Kind // operators and punctuation; longest match wins
	Keywords      map[string]parc.Kind // identifiers promoted to keywords
	Ident         parc.Kind            // identifiers
	Number        parc.Kind            // numeric literals (decimal, optional fraction)
	String        parc.Kind            // double-quoted strings with backslash escapes
	Whitespace    parc.Kind            // whitespace runs
	LineComment   parc.Kind            // comments from CommentPrefix to end of line
	CommentPrefix string               // line comment opener, e.g. "#" or "//"
	Skip          []parc.Kind          // kinds Tokens drops before returning
}

// Lexer is a rule-driven scanner over byte input.
type Lexer struct {
	cfg     Config
	symbols []string // Symbols keys, longest first

	input  []byte
	file   string
	pos    int
	line   int
	column int
}

// New builds a Lexer from cfg.
func New(cfg Config) *Lexer {
	syms := make([]string, 0, len(cfg.Symbols))
	for s := range cfg.Symbols {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool {
		if len(syms[i]) != len(syms[j]) {
			return len(syms[i]) > len(syms[j])
		}
		return syms[i] < syms[j]
	})
	return &Lexer{cfg: cfg, symbols: syms}
}

// Scan tokenizes input, reporting positions against file. Unlexable bytes
// become single-byte ERROR tokens; Scan itself never fails.
func (l *Lexer) Scan(input []byte, file string) []Token {
	l.input = input
	l.file = file
	l.pos = 0
	l.line = 1
	l.column = 1

	var toks []Token
	for l.pos < len(l.input) {
		if l.cfg.Whitespace == "" && isSpace(l.peek()) {
			l.advance()
			continue
		}
		toks = append(toks, l.next())
	}
	return toks
}

// Tokens scans input and drops the kinds listed in cfg.Skip. This is the
// usual entry point for feeding a parser.
func (l *Lexer) Tokens(input []byte, file string) []Token {
	return Filter(l.Scan(input, file), l.cfg.Skip...)
}

// Position returns the current position in the input.
func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) hasPrefix(prefix string) bool {
	if prefix == "" {
		return false
	}
	rest := l.input[l.pos:]
	return len(rest) >= len(prefix) && string(rest[:len(prefix)]) == prefix
}

func (l *Lexer) next() Token {
	start := l.Position()
	ch := l.peek()

	switch {
	case l.cfg.Whitespace != "" && isSpace(ch):
		return l.scanWhitespace(start)
	case l.cfg.LineComment != "" && l.hasPrefix(l.cfg.CommentPrefix):
		return l.scanLineComment(start)
	case l.cfg.Number != "" && isDigit(ch):
		return l.scanNumber(start)
	case l.cfg.String != "" && ch == '"':
		return l.scanString(start)
	default:
		if tok, ok := l.scanSymbol(start); ok {
			return tok
		}
		if l.cfg.Ident != "" && isLetter(ch) {
			return l.scanIdent(start)
		}
		l.advance()
		return l.token(KindError, start)
	}
}

func (l *Lexer) scanWhitespace(start Position) Token {
	for isSpace(l.peek()) {
		l.advance()
	}
	return l.token(l.cfg.Whitespace, start)
}

func (l *Lexer) scanLineComment(start Position) Token {
	l.advanceN(len(l.cfg.CommentPrefix))
	for l.peek() != 0 && l.peek() != '\n' {
		l.advance()
	}
	return l.token(l.cfg.LineComment, start)
}

func (l *Lexer) scanNumber(start Position) Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	// A fraction needs a digit after the dot, so "1." stays NUMBER DOT.
	if l.peek() == '.' && l.pos+1 < len(l.input) && isDigit(l.input[l.pos+1]) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	return l.token(l.cfg.Number, start)
}

func (l *Lexer) scanString(start Position) Token {
	l.advance()
	for l.peek() != 0 && l.peek() != '"' && l.peek() != '\n' {
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	if l.peek() == '"' {
		l.advance()
	}
	return l.token(l.cfg.String, start)
}

func (l *Lexer) scanIdent(start Position) Token {
	for isLetter(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
	literal := string(l.input[start.Offset:l.pos])
	if kind, ok := l.cfg.Keywords[literal]; ok {
		return l.token(kind, start)
	}
	return l.token(l.cfg.Ident, start)
}

func (l *Lexer) scanSymbol(start Position) (Token, bool) {
	for _, sym := range l.symbols {
		if l.hasPrefix(sym) {
			l.advanceN(len(sym))
			return l.token(l.cfg.Symbols[sym], start), true
		}
	}
	return Token{}, false
}

func (l *Lexer) token(kind parc.Kind, start Position) Token {
	end := l.Position()
	return Token{
		Type:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	if ch >= 128 {
		r, _ := utf8.DecodeRune([]byte{ch})
		return unicode.IsLetter(r) || r == '_'
	}
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
