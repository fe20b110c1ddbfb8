package calc

import (
	"strconv"

	"github.com/dhamidi/parc"
	"github.com/dhamidi/parc/lexer"
)

// The grammar is LL(1): every alternative starts on a distinct token kind,
// so a rejected alternative has consumed nothing and the next one still
// sees an intact stream. The combinators do not rewind, which makes that
// property load-bearing rather than cosmetic.
//
//	expr       = term termTail
//	termTail   = ("+" term | "-" term) termTail | ε
//	term       = factor factorTail
//	factorTail = ("*" factor | "/" factor | "%" factor) factorTail | ε
//	factor     = NUMBER | IDENT | "-" factor | "(" expr ")"
//
// The tails return functions pending their left operand, which keeps the
// built tree left-associative despite the right-recursive shape.

// grammar is the compiled expression grammar. Parsers are stateless, so
// one compiled instance serves all parses.
var grammar = expr()

// tail attaches trailing operator applications to a left operand.
type tail func(*Node) *Node

func applyTail(left *Node, t tail) *Node { return t(left) }

func expr() parc.Parser[*Node] {
	return parc.Map(parc.Then(term(), termTail()), parc.Unpair(applyTail))
}

func termTail() parc.Parser[tail] {
	return parc.Choice(
		tailStep(TokenPlus, term, termTail),
		tailStep(TokenMinus, term, termTail),
		emptyTail(),
	)
}

func term() parc.Parser[*Node] {
	return parc.Map(parc.Then(factor(), factorTail()), parc.Unpair(applyTail))
}

func factorTail() parc.Parser[tail] {
	return parc.Choice(
		tailStep(TokenStar, factor, factorTail),
		tailStep(TokenSlash, factor, factorTail),
		tailStep(TokenPercent, factor, factorTail),
		emptyTail(),
	)
}

// tailStep parses one trailing operator application plus whatever follows,
// yielding the function that attaches them to a left operand in source
// order.
func tailStep(op parc.Kind, operand func() parc.Parser[*Node], rest func() parc.Parser[tail]) parc.Parser[tail] {
	step := parc.Then(parc.IgnoreThen(parc.Term(op), required(parc.Lazy(operand))), parc.Lazy(rest))
	return parc.Map(step, parc.Unpair(func(right *Node, more tail) tail {
		return func(left *Node) *Node { return more(Binary(op, left, right)) }
	}))
}

func emptyTail() parc.Parser[tail] {
	return parc.Const(tail(func(left *Node) *Node { return left }))
}

// required accepts a marker node instead of failing when an operand is
// absent. At this point the operator is already consumed, and an ordinary
// failure would let the enclosing choice fall through to its empty
// alternative and succeed on the mangled stream. Parse rejects trees
// containing the marker afterwards.
func required(p parc.Parser[*Node]) parc.Parser[*Node] {
	return parc.Choice(p, parc.Const(missing()))
}

func missing() *Node { return &Node{Kind: KindMissing} }

func hasMissing(n *Node) bool {
	if n == nil {
		return false
	}
	return n.Kind == KindMissing || hasMissing(n.Left) || hasMissing(n.Right)
}

func factor() parc.Parser[*Node] {
	return parc.Choice(number(), variable(), negation(), group())
}

func number() parc.Parser[*Node] {
	return parc.Map(parc.Term(TokenNumber), func(tok parc.Token) *Node {
		v, _ := strconv.ParseFloat(literalOf(tok), 64)
		return NumberLit(v)
	})
}

func variable() parc.Parser[*Node] {
	return parc.Map(parc.Term(TokenIdent), func(tok parc.Token) *Node {
		return VarRef(literalOf(tok))
	})
}

func negation() parc.Parser[*Node] {
	return parc.Map(parc.IgnoreThen(parc.Term(TokenMinus), parc.Lazy(factor)), func(operand *Node) *Node {
		return Unary(TokenMinus, operand)
	})
}

func group() parc.Parser[*Node] {
	return parc.ThenIgnore(parc.IgnoreThen(parc.Term(TokenLParen), parc.Lazy(expr)), parc.Term(TokenRParen))
}

func literalOf(tok parc.Token) string {
	if t, ok := tok.(lexer.Token); ok {
		return t.Literal
	}
	return ""
}

// ParseStream runs the expression grammar directly against a stream,
// exposing the raw combinator surface. Most callers want Parse.
func ParseStream(s parc.TokenStream) parc.Result[*Node] {
	return grammar(s)
}
