// Package format renders parsed calc expressions for other tools to read.
package format

import (
	"encoding"

	"github.com/dhamidi/parc/calc"
)

// Encoder writes one expression tree in some output format.
type Encoder interface {
	encoding.TextMarshaler
	Encode(node *calc.Node) error
}
