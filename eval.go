package calc

import (
	"errors"
	"fmt"

	"github.com/xiam/lisp-calc/ast"
)

// ErrDivisionByZero is returned when the right operand of a division
// evaluates to zero
var ErrDivisionByZero = errors.New("division by zero")

// Eval reduces an expression tree to a single integer. Arithmetic is 64-bit
// two's-complement and wraps silently on overflow; division truncates toward
// zero. The left operand is always evaluated before the right one.
func Eval(node ast.Expr) (int64, error) {
	switch n := node.(type) {
	case *ast.Literal:
		return n.Value(), nil

	case *ast.BinaryOp:
		left, err := Eval(n.Left())
		if err != nil {
			return 0, err
		}

		right, err := Eval(n.Right())
		if err != nil {
			return 0, err
		}

		switch n.Op() {
		case ast.OpAdd:
			return left + right, nil
		case ast.OpSub:
			return left - right, nil
		case ast.OpMul:
			return left * right, nil
		case ast.OpDiv:
			if right == 0 {
				return 0, fmt.Errorf("%w: %v", ErrDivisionByZero, n.Token())
			}
			return left / right, nil
		}
	}

	// the parser only builds nodes with the four supported operators
	panic("unreachable")
}
