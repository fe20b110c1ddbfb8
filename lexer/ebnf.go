package lexer

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/parc"
)

// EBNF scans input by matching the token productions of an EBNF grammar.
// Productions whose name starts with an uppercase letter are token rules;
// lowercase productions only serve as helpers referenced from them. At each
// position the longest match wins, with ties going to the alphabetically
// first production, so keyword rules must sort before a catch-all
// identifier rule to take precedence at equal length.
type EBNF struct {
	grammar ebnf.Grammar
	tokens  []string // token production names, sorted

	input    []byte
	file     string
	pos      int
	line     int
	column   int
	memo     map[memoKey]int  // (production, offset) -> match length, -1 for no match
	visiting map[memoKey]bool // cycle detection for recursive productions
}

type memoKey struct {
	name   string
	offset int
}

// NewEBNF builds a scanner for grammar.
func NewEBNF(grammar ebnf.Grammar) *EBNF {
	var tokens []string
	for name, prod := range grammar {
		if name == "" || prod.Expr == nil {
			continue
		}
		if name[0] >= 'A' && name[0] <= 'Z' {
			tokens = append(tokens, name)
		}
	}
	sort.Strings(tokens)
	return &EBNF{grammar: grammar, tokens: tokens}
}

// LoadGrammar reads an EBNF grammar from a file.
func LoadGrammar(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	grammar, err := ebnf.Parse(filename, f)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return grammar, nil
}

// Scan tokenizes input, reporting positions against file. Input no token
// production matches becomes single-byte ERROR tokens; Scan never fails.
func (e *EBNF) Scan(input []byte, file string) []Token {
	e.input = input
	e.file = file
	e.pos = 0
	e.line = 1
	e.column = 1

	var toks []Token
	for e.pos < len(e.input) {
		toks = append(toks, e.next())
	}
	return toks
}

func (e *EBNF) next() Token {
	// The memo lives for one token: entries computed under a cycle cut are
	// only valid for the visiting context they were computed in.
	e.memo = make(map[memoKey]int)
	start := e.position()
	kind, length := e.bestMatch(e.pos)
	if length == 0 {
		e.advance()
		return e.token(KindError, start)
	}
	for i := 0; i < length; i++ {
		e.advance()
	}
	return e.token(kind, start)
}

// bestMatch tries every token production at offset and keeps the longest
// hit. Zero-length matches are discarded: a token has to consume input.
func (e *EBNF) bestMatch(offset int) (parc.Kind, int) {
	var bestKind parc.Kind
	best := 0
	for _, name := range e.tokens {
		e.visiting = make(map[memoKey]bool)
		n, ok := e.match(e.grammar[name].Expr, offset)
		if ok && n > best {
			best = n
			bestKind = parc.Kind(name)
		}
	}
	return bestKind, best
}

// match reports the length an expression matches at offset. The second
// return distinguishes a zero-length match (an absent option, an empty
// repetition) from no match at all, so sequences can contain options.
func (e *EBNF) match(expr ebnf.Expression, offset int) (int, bool) {
	switch x := expr.(type) {
	case *ebnf.Token:
		return e.matchLiteral(x.String, offset)

	case *ebnf.Range:
		return e.matchRange(x.Begin.String, x.End.String, offset)

	case *ebnf.Name:
		return e.matchName(x.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range x {
			n, ok := e.match(item, offset+total)
			if !ok {
				return 0, false
			}
			total += n
		}
		return total, true

	case ebnf.Alternative:
		best, matched := 0, false
		for _, alt := range x {
			if n, ok := e.match(alt, offset); ok {
				matched = true
				if n > best {
					best = n
				}
			}
		}
		return best, matched

	case *ebnf.Repetition:
		total := 0
		for {
			n, ok := e.match(x.Body, offset+total)
			if !ok || n == 0 {
				return total, true
			}
			total += n
		}

	case *ebnf.Option:
		if n, ok := e.match(x.Body, offset); ok {
			return n, true
		}
		return 0, true

	case *ebnf.Group:
		return e.match(x.Body, offset)

	default:
		return 0, false
	}
}

// matchName matches a named production, memoized, breaking left-recursive
// cycles by treating a reentrant attempt as no match.
func (e *EBNF) matchName(name string, offset int) (int, bool) {
	key := memoKey{name: name, offset: offset}

	if n, ok := e.memo[key]; ok {
		if n < 0 {
			return 0, false
		}
		return n, true
	}
	if e.visiting[key] {
		return 0, false
	}

	prod, ok := e.grammar[name]
	if !ok || prod.Expr == nil {
		e.memo[key] = -1
		return 0, false
	}

	e.visiting[key] = true
	n, matched := e.match(prod.Expr, offset)
	delete(e.visiting, key)

	if !matched {
		e.memo[key] = -1
		return 0, false
	}
	e.memo[key] = n
	return n, true
}

func (e *EBNF) matchLiteral(lit string, offset int) (int, bool) {
	s := strings.Trim(lit, `"`)
	if offset+len(s) > len(e.input) {
		return 0, false
	}
	if string(e.input[offset:offset+len(s)]) != s {
		return 0, false
	}
	return len(s), true
}

func (e *EBNF) matchRange(begin, end string, offset int) (int, bool) {
	if offset >= len(e.input) {
		return 0, false
	}
	lo := strings.Trim(begin, `"`)
	hi := strings.Trim(end, `"`)
	if len(lo) != 1 || len(hi) != 1 {
		return 0, false
	}
	if ch := e.input[offset]; ch >= lo[0] && ch <= hi[0] {
		return 1, true
	}
	return 0, false
}

func (e *EBNF) position() Position {
	return Position{
		File:   e.file,
		Offset: e.pos,
		Line:   e.line,
		Column: e.column,
	}
}

func (e *EBNF) advance() {
	if e.pos >= len(e.input) {
		return
	}
	if e.input[e.pos] == '\n' {
		e.line++
		e.column = 1
	} else {
		e.column++
	}
	e.pos++
}

func (e *EBNF) token(kind parc.Kind, start Position) Token {
	end := e.position()
	return Token{
		Type:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(e.input[start.Offset:end.Offset]),
	}
}
