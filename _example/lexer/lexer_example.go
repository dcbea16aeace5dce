package main

import (
	"fmt"
	"log"

	"github.com/xiam/lisp-calc/lexer"
)

func main() {
	input := `(* (- 7 4) (+ (/ 26 2) 1))`

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
