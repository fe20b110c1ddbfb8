package calc

import (
	"fmt"
	"math"
)

// Eval computes the value of an expression. Variables resolve through
// vars; a nil map defines none.
func Eval(n *Node, vars map[string]float64) (float64, error) {
	if n == nil {
		return 0, fmt.Errorf("evaluate nil expression")
	}
	switch n.Kind {
	case KindNumberLit:
		return n.Value, nil

	case KindVarRef:
		v, ok := vars[n.Name]
		if !ok {
			return 0, fmt.Errorf("undefined variable %q", n.Name)
		}
		return v, nil

	case KindUnary:
		v, err := Eval(n.Left, vars)
		if err != nil {
			return 0, err
		}
		return -v, nil

	case KindBinary:
		left, err := Eval(n.Left, vars)
		if err != nil {
			return 0, err
		}
		right, err := Eval(n.Right, vars)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case TokenPlus:
			return left + right, nil
		case TokenMinus:
			return left - right, nil
		case TokenStar:
			return left * right, nil
		case TokenSlash:
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return left / right, nil
		case TokenPercent:
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return math.Mod(left, right), nil
		}
	}
	return 0, fmt.Errorf("cannot evaluate %s node", n.Kind)
}
