package main

import (
	"fmt"
	"log"

	calc "github.com/xiam/lisp-calc"
)

func main() {
	input := `(* (- 7 4) (+ (/ 26 2) 1))`

	result, err := calc.Evaluate(input)
	if err != nil {
		log.Fatal("calc.Evaluate:", err)
	}

	fmt.Printf("%s = %d\n", input, result)
}
