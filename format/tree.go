package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/parc/calc"
)

// TreeEncoder renders an expression as an indented tree, one node per line.
type TreeEncoder struct {
	w    io.Writer
	node *calc.Node
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(node *calc.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	writeTree(&sb, e.node, 0)
	return []byte(sb.String()), nil
}

func writeTree(sb *strings.Builder, n *calc.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n == nil {
		fmt.Fprintf(sb, "%s<nil>\n", indent)
		return
	}

	switch n.Kind {
	case calc.KindNumberLit:
		fmt.Fprintf(sb, "%sNumberLit %s\n", indent, strconv.FormatFloat(n.Value, 'g', -1, 64))
	case calc.KindVarRef:
		fmt.Fprintf(sb, "%sVarRef %s\n", indent, n.Name)
	case calc.KindUnary:
		fmt.Fprintf(sb, "%sUnary %s\n", indent, calc.OpText(n.Op))
		writeTree(sb, n.Left, depth+1)
	case calc.KindBinary:
		fmt.Fprintf(sb, "%sBinary %s\n", indent, calc.OpText(n.Op))
		writeTree(sb, n.Left, depth+1)
		writeTree(sb, n.Right, depth+1)
	default:
		fmt.Fprintf(sb, "%s%s\n", indent, n.Kind)
	}
}
