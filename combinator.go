package parc

// The sequencing combinators are package functions rather than methods
// because Go methods cannot introduce type parameters of their own.

// Pair is the product of two parse results.
type Pair[R, S any] struct {
	First  R
	Second S
}

// Unpair adapts a two-argument function to one over a Pair, for use with
// Map over a Then result.
func Unpair[R, S, T any](f func(R, S) T) func(Pair[R, S]) T {
	return func(p Pair[R, S]) T { return f(p.First, p.Second) }
}

// Then runs p and then q against the same stream, succeeding with both
// values as a Pair. If p fails, q never runs. If q fails, whatever p
// consumed stays consumed.
func Then[R, S any](p Parser[R], q Parser[S]) Parser[Pair[R, S]] {
	return func(s TokenStream) Result[Pair[R, S]] {
		left, ok := p(s).Value()
		if !ok {
			return Fail[Pair[R, S]]()
		}
		right, ok := q(s).Value()
		if !ok {
			return Fail[Pair[R, S]]()
		}
		return Succeed(Pair[R, S]{First: left, Second: right})
	}
}

// ThenIgnore runs p and then q, keeping only p's value.
func ThenIgnore[R, S any](p Parser[R], q Parser[S]) Parser[R] {
	return Map(Then(p, q), func(pr Pair[R, S]) R { return pr.First })
}

// IgnoreThen runs p and then q, keeping only q's value.
func IgnoreThen[R, S any](p Parser[R], q Parser[S]) Parser[S] {
	return Map(Then(p, q), func(pr Pair[R, S]) S { return pr.Second })
}

// Map transforms p's value with f. On failure f never runs and the failure
// passes through.
func Map[R, T any](p Parser[R], f func(R) T) Parser[T] {
	return func(s TokenStream) Result[T] {
		if v, ok := p(s).Value(); ok {
			return Succeed(f(v))
		}
		return Fail[T]()
	}
}

// Choice tries each alternative in order against the same stream and
// returns the first success. Alternatives after the winner never run.
// With no alternatives Choice fails.
//
// Choice does not rewind: an alternative that consumes tokens before
// failing leaves the stream where it stopped, and the next alternative
// starts there. Grammars that want reliable alternation must make every
// alternative fail before consuming anything, for example by guarding
// each one with Term on a distinct leading kind.
func Choice[S any](alternatives ...Parser[S]) Parser[S] {
	return func(s TokenStream) Result[S] {
		for _, alt := range alternatives {
			if r := alt(s); r.Success() {
				return r
			}
		}
		return Fail[S]()
	}
}
