package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/parc/calc"
)

type JSONEncoder struct {
	w    io.Writer
	node *calc.Node
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(node *calc.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(e.node), "", "  ")
}

type jsonNode struct {
	Kind     string      `json:"kind"`
	Value    *float64    `json:"value,omitempty"`
	Name     string      `json:"name,omitempty"`
	Op       string      `json:"op,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

func nodeToJSON(n *calc.Node) *jsonNode {
	if n == nil {
		return nil
	}

	jn := &jsonNode{Kind: n.Kind.String()}
	switch n.Kind {
	case calc.KindNumberLit:
		v := n.Value
		jn.Value = &v
	case calc.KindVarRef:
		jn.Name = n.Name
	case calc.KindUnary:
		jn.Op = calc.OpText(n.Op)
		jn.Children = []*jsonNode{nodeToJSON(n.Left)}
	case calc.KindBinary:
		jn.Op = calc.OpText(n.Op)
		jn.Children = []*jsonNode{nodeToJSON(n.Left), nodeToJSON(n.Right)}
	}
	return jn
}
