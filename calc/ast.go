package calc

import (
	"fmt"
	"strconv"

	"github.com/dhamidi/parc"
)

// NodeKind identifies the type of an expression node.
type NodeKind int

const (
	KindNumberLit NodeKind = iota
	KindVarRef
	KindUnary
	KindBinary
	KindMissing
)

var nodeKindNames = map[NodeKind]string{
	KindNumberLit: "NumberLit",
	KindVarRef:    "VarRef",
	KindUnary:     "Unary",
	KindBinary:    "Binary",
	KindMissing:   "Missing",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is a parsed expression.
type Node struct {
	Kind  NodeKind
	Value float64   // KindNumberLit
	Name  string    // KindVarRef
	Op    parc.Kind // operator token kind for KindUnary and KindBinary
	Left  *Node     // operand for KindUnary, left operand for KindBinary
	Right *Node     // right operand for KindBinary
}

// NumberLit builds a number literal node.
func NumberLit(v float64) *Node { return &Node{Kind: KindNumberLit, Value: v} }

// VarRef builds a variable reference node.
func VarRef(name string) *Node { return &Node{Kind: KindVarRef, Name: name} }

// Unary builds a unary operator node.
func Unary(op parc.Kind, operand *Node) *Node {
	return &Node{Kind: KindUnary, Op: op, Left: operand}
}

// Binary builds a binary operator node.
func Binary(op parc.Kind, left, right *Node) *Node {
	return &Node{Kind: KindBinary, Op: op, Left: left, Right: right}
}

var opTexts = map[parc.Kind]string{
	TokenPlus:    "+",
	TokenMinus:   "-",
	TokenStar:    "*",
	TokenSlash:   "/",
	TokenPercent: "%",
}

// OpText returns the source spelling of an operator token kind.
func OpText(k parc.Kind) string {
	if s, ok := opTexts[k]; ok {
		return s
	}
	return string(k)
}

// String renders the node as an s-expression, e.g. "(+ 1 (* x 2))".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case KindNumberLit:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	case KindVarRef:
		return n.Name
	case KindUnary:
		return fmt.Sprintf("(%s %s)", OpText(n.Op), n.Left)
	case KindBinary:
		return fmt.Sprintf("(%s %s %s)", OpText(n.Op), n.Left, n.Right)
	case KindMissing:
		return "?"
	}
	return "<invalid>"
}
