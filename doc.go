// Package parc provides a small parser-combinator engine over token streams.
//
// # Overview
//
// A Parser is a function from a token stream to a Result. Small parsers
// recognize one token; combinators glue them into grammars. The engine never
// looks inside tokens beyond their Kind, so any lexer can feed it; the lexer
// package in this repository is one such producer.
//
//	┌─────────────┐     ┌──────────────┐     ┌─────────────┐
//	│   Tokens    │────▶│ TokenStream  │────▶│  Parser[R]  │
//	│  (lexer)    │     │  (cursor)    │     │  (Result)   │
//	└─────────────┘     └──────────────┘     └─────────────┘
//
// # Streams
//
// A TokenStream is a forward-only cursor:
//
//	type TokenStream interface {
//	    Token() Token // current token, no movement
//	    Next() Token  // advance, return new current token
//	}
//
// Once the input runs out, both methods report end-of-stream tokens forever;
// reading past the end is never an error. SliceStream is the canonical
// implementation over a token slice.
//
// # Results and the two error channels
//
// Result[R] is a two-variant value: success with an R, or failure with no
// payload. Failure is the ordinary control signal of alternation and is not
// an error. The error channel is separate: Get and Consume return a
// *ParseError when the input cannot be accepted at all, and nothing in the
// combinators converts one channel into the other.
//
// # Sequencing and alternation
//
//	Then(p, q)       // p then q, both values as a Pair
//	ThenIgnore(p, q) // p then q, keep p's value
//	IgnoreThen(p, q) // p then q, keep q's value
//	Map(p, f)        // transform p's value
//	Choice(a, b, c)  // first success wins, tried in order
//
// All of them run left to right and stop at the first failure. The result of
// Then is a Pair; Unpair adapts an ordinary two-argument function so it can
// be used with Map:
//
//	add := Map(Then(number, number), Unpair(func(a, b int) int { return a + b }))
//
// # No rewinding
//
// Parsers do not back up. An alternative inside Choice that consumes tokens
// and then fails leaves the stream where it stopped, and the next
// alternative starts from there. This keeps the engine trivially simple and
// makes the failure point visible to diagnostics, at the price of a
// discipline: every alternative must decide on its leading token. Term fails
// before consuming, so guarding each alternative with a Term on a distinct
// kind is enough. The calc package shows the discipline applied to a full
// expression grammar.
//
// # Example
//
//	digit := parc.Term("DIGIT")
//	plus := parc.Term("PLUS")
//	sum := parc.Map(
//	    parc.Then(digit, parc.IgnoreThen(plus, digit)),
//	    parc.Unpair(func(a, b parc.Token) string { return "sum" }),
//	)
//	result := sum(parc.NewSliceStream(toks))
//	if result.Success() { ... }
//
// A Parser instance is stateless; the stream holds all position state. Do
// not share one stream between goroutines.
package parc
