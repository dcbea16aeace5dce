package main

import (
	"log"

	"github.com/xiam/lisp-calc/ast"
	"github.com/xiam/lisp-calc/parser"
)

func main() {
	input := `(* (- 7 4) (+ (/ 26 2) 1))`

	root, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(root)
}
