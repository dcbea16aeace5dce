package ast

import (
	"fmt"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n Expr) {
	printLevel(n, 0)
}

func printLevel(n Expr, level int) {
	indent := strings.Repeat("    ", level)

	switch node := n.(type) {
	case *Literal:
		fmt.Printf("%s(literal): %d (%v)\n", indent, node.Value(), node.Token())

	case *BinaryOp:
		fmt.Printf("%s(%v): (%v)\n", indent, node.Op(), node.Token())
		printLevel(node.Left(), level+1)
		printLevel(node.Right(), level+1)

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node back into its canonical text representation
func Encode(n Expr) []byte {
	switch node := n.(type) {
	case *Literal:
		return []byte(fmt.Sprintf("%d", node.Value()))

	case *BinaryOp:
		left := Encode(node.Left())
		right := Encode(node.Right())
		return []byte(fmt.Sprintf("(%v %s %s)", node.Op(), left, right))

	default:
		panic("unknown node type")
	}
}
