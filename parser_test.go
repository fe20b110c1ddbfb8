package parc

import (
	"errors"
	"testing"
)

// touchyStream records whether a parser read from it at all.
type touchyStream struct{ touched bool }

func (s *touchyStream) Token() Token { s.touched = true; return EndOfStream{} }
func (s *touchyStream) Next() Token  { s.touched = true; return EndOfStream{} }

func TestGet(t *testing.T) {
	v, err := Const("hello").Get(stream())
	if err != nil {
		t.Fatalf("Get() = %v, want nil", err)
	}
	if v != "hello" {
		t.Errorf("Get() = %q, want %q", v, "hello")
	}
}

func TestGetFailure(t *testing.T) {
	_, err := Never[string]().Get(stream("A"))
	if err == nil {
		t.Fatal("Get() = nil, want error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("Get() error type = %T, want *ParseError", err)
	}
}

func TestConstReadsNothing(t *testing.T) {
	s := &touchyStream{}

	if !Const(1)(s).Success() {
		t.Error("Const(1) failed")
	}
	if s.touched {
		t.Error("Const read from the stream")
	}
}

func TestNever(t *testing.T) {
	s := stream("A")

	if Never[int]()(s).Success() {
		t.Error("Never succeeded")
	}
	if s.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0", s.Pos())
	}
}

func TestTerm(t *testing.T) {
	s := stream("A", "B")

	v, ok := Term("A")(s).Value()
	if !ok {
		t.Fatal("Term(A) failed on A")
	}
	if v.Kind() != "A" {
		t.Errorf("Term(A) = %v, want kind A", v)
	}
	if s.Pos() != 1 {
		t.Errorf("Pos() = %d, want 1", s.Pos())
	}
}

func TestTermMismatch(t *testing.T) {
	s := stream("B")

	if Term("A")(s).Success() {
		t.Error("Term(A) succeeded on B")
	}
	if s.Pos() != 0 {
		t.Errorf("Pos() = %d after mismatch, want 0", s.Pos())
	}
}

func TestTermAtEnd(t *testing.T) {
	if Term("A")(stream()).Success() {
		t.Error("Term(A) succeeded on empty input")
	}
}

func TestLazy(t *testing.T) {
	builds := 0

	// nested = 'L' nested 'R' | 'X', counting the nesting depth.
	var nested Parser[int]
	nested = Choice(
		Map(
			ThenIgnore(IgnoreThen(Term("L"), Lazy(func() Parser[int] { builds++; return nested })), Term("R")),
			func(depth int) int { return depth + 1 },
		),
		Map(Term("X"), func(Token) int { return 0 }),
	)

	v, err := nested.Get(stream("L", "L", "X", "R", "R"))
	if err != nil {
		t.Fatalf("Get() = %v, want nil", err)
	}
	if v != 2 {
		t.Errorf("depth = %d, want 2", v)
	}
	if builds != 1 {
		t.Errorf("builder ran %d times, want 1", builds)
	}
}
