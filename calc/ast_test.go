package calc

import "testing"

func TestNodeKindString(t *testing.T) {
	tests := []struct {
		kind NodeKind
		want string
	}{
		{KindNumberLit, "NumberLit"},
		{KindVarRef, "VarRef"},
		{KindUnary, "Unary"},
		{KindBinary, "Binary"},
		{KindMissing, "Missing"},
		{NodeKind(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("NodeKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestNodeString(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"number", NumberLit(1.5), "1.5"},
		{"integer", NumberLit(7), "7"},
		{"variable", VarRef("x"), "x"},
		{"unary", Unary(TokenMinus, VarRef("x")), "(- x)"},
		{"binary", Binary(TokenPlus, NumberLit(1), NumberLit(2)), "(+ 1 2)"},
		{"nested", Binary(TokenStar, Binary(TokenPlus, NumberLit(1), NumberLit(2)), VarRef("y")), "(* (+ 1 2) y)"},
		{"nil", nil, "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
