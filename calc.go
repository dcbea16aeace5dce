// Package calc evaluates fully-parenthesized prefix arithmetic expressions
// over integers, such as (* (- 7 4) (+ (/ 26 2) 1)).
package calc

import (
	"github.com/xiam/lisp-calc/parser"
)

// Evaluate scans, parses and evaluates the expression within src. It is a
// pure function: calls share no state and may run concurrently.
func Evaluate(src string) (int64, error) {
	root, err := parser.Parse(src)
	if err != nil {
		return 0, err
	}

	return Eval(root)
}
