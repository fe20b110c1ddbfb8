package parc

import "testing"

func TestThen(t *testing.T) {
	s := stream("A", "B")

	v, ok := Then(Term("A"), Term("B"))(s).Value()
	if !ok {
		t.Fatal("Then(A, B) failed on A B")
	}
	if v.First.Kind() != "A" || v.Second.Kind() != "B" {
		t.Errorf("Then(A, B) = (%v, %v), want (A, B)", v.First, v.Second)
	}
	if s.Pos() != 2 {
		t.Errorf("Pos() = %d, want 2", s.Pos())
	}
}

func TestThenLeftFails(t *testing.T) {
	ran := false
	right := Parser[int](func(TokenStream) Result[int] { ran = true; return Succeed(1) })

	if Then(Never[int](), right)(stream("A")).Success() {
		t.Error("Then succeeded after left failure")
	}
	if ran {
		t.Error("right parser ran after left failure")
	}
}

func TestThenRightFails(t *testing.T) {
	s := stream("A", "B")

	if Then(Term("A"), Term("C"))(s).Success() {
		t.Error("Then(A, C) succeeded on A B")
	}
	// No rewinding: the A stays consumed.
	if s.Pos() != 1 {
		t.Errorf("Pos() = %d, want 1", s.Pos())
	}
}

func TestThenIgnore(t *testing.T) {
	s := stream("A", "B")

	v, ok := ThenIgnore(Term("A"), Term("B"))(s).Value()
	if !ok {
		t.Fatal("ThenIgnore(A, B) failed on A B")
	}
	if v.Kind() != "A" {
		t.Errorf("ThenIgnore(A, B) = %v, want A", v)
	}
	if s.Pos() != 2 {
		t.Errorf("Pos() = %d, want 2", s.Pos())
	}
}

func TestIgnoreThen(t *testing.T) {
	s := stream("A", "B")

	v, ok := IgnoreThen(Term("A"), Term("B"))(s).Value()
	if !ok {
		t.Fatal("IgnoreThen(A, B) failed on A B")
	}
	if v.Kind() != "B" {
		t.Errorf("IgnoreThen(A, B) = %v, want B", v)
	}
}

func TestIgnoreThenLeftFailureWins(t *testing.T) {
	// The ignored side still decides failure.
	if IgnoreThen(Never[int](), Const("x"))(stream()).Success() {
		t.Error("IgnoreThen succeeded after left failure")
	}
}

func TestThenIgnoreRightFailureWins(t *testing.T) {
	if ThenIgnore(Const("x"), Never[int]())(stream()).Success() {
		t.Error("ThenIgnore succeeded after right failure")
	}
}

func TestMap(t *testing.T) {
	v, ok := Map(Const(21), func(n int) int { return n * 2 })(stream()).Value()
	if !ok {
		t.Fatal("Map over success failed")
	}
	if v != 42 {
		t.Errorf("Map = %d, want 42", v)
	}
}

func TestMapIdentity(t *testing.T) {
	id := func(n int) int { return n }

	if v, ok := Map(Const(7), id)(stream()).Value(); !ok || v != 7 {
		t.Errorf("Map(success, id) = %d, %v, want 7, true", v, ok)
	}
	if Map(Never[int](), id)(stream()).Success() {
		t.Error("Map(failure, id) succeeded")
	}
}

func TestMapSkipsOnFailure(t *testing.T) {
	calls := 0

	if Map(Never[int](), func(n int) int { calls++; return n })(stream("A")).Success() {
		t.Error("Map over failure succeeded")
	}
	if calls != 0 {
		t.Errorf("f ran %d times on failure, want 0", calls)
	}
}

func TestChoiceFirstWins(t *testing.T) {
	ran := false
	spy := Parser[string](func(TokenStream) Result[string] { ran = true; return Succeed("second") })

	v, ok := Choice(Const("first"), spy)(stream()).Value()
	if !ok || v != "first" {
		t.Errorf("Choice = %q, %v, want %q, true", v, ok, "first")
	}
	if ran {
		t.Error("later alternative ran after a success")
	}
}

func TestChoiceOrder(t *testing.T) {
	tests := []struct {
		name string
		p    Parser[string]
		want string
	}{
		{"b before a", Choice(Const("b"), Const("a")), "b"},
		{"a before b", Choice(Const("a"), Const("b")), "a"},
		{"skips failures", Choice(Never[string](), Const("b")), "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p(stream()).GetOrElse("none"); got != tt.want {
				t.Errorf("Choice = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChoiceEmpty(t *testing.T) {
	if Choice[int]()(stream("A")).Success() {
		t.Error("empty Choice succeeded")
	}
}

func TestChoiceExhausted(t *testing.T) {
	s := stream("A")

	if Choice(Never[int](), Never[int]())(s).Success() {
		t.Error("Choice of failures succeeded")
	}
	if s.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0", s.Pos())
	}
}

func TestChoiceDoesNotRewind(t *testing.T) {
	// The first alternative consumes the A and then fails. The second
	// starts where it stopped, so a grammar that would match from the
	// beginning does not get a second chance.
	s := stream("A", "B")
	p := Choice(
		ThenIgnore(Term("A"), Never[Token]()),
		ThenIgnore(Term("A"), Term("B")),
	)

	if p(s).Success() {
		t.Error("Choice succeeded, want failure caused by the consumed prefix")
	}
	if s.Pos() != 1 {
		t.Errorf("Pos() = %d, want 1", s.Pos())
	}
}

func TestChoiceGuardedAlternatives(t *testing.T) {
	// Term fails without consuming, so alternatives with distinct leading
	// kinds stay independent.
	p := Choice(
		Map(Term("A"), func(Token) string { return "a" }),
		Map(Term("B"), func(Token) string { return "b" }),
	)

	tests := []struct {
		kind Kind
		want string
	}{
		{"A", "a"},
		{"B", "b"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := p(stream(tt.kind)).GetOrElse("none"); got != tt.want {
				t.Errorf("Choice on %s = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestUnpair(t *testing.T) {
	f := Unpair(func(a, b int) int { return a - b })

	if got := f(Pair[int, int]{First: 10, Second: 4}); got != 6 {
		t.Errorf("Unpair f over (10, 4) = %d, want 6", got)
	}
}
