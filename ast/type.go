package ast

// Op represents one of the supported binary arithmetic operators
type Op uint8

// Supported operators
const (
	OpInvalid Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

var opNames = map[Op]string{
	OpInvalid: "invalid",
	OpAdd:     "+",
	OpSub:     "-",
	OpMul:     "*",
	OpDiv:     "/",
}

func (op Op) String() string {
	if v, ok := opNames[op]; ok {
		return v
	}
	return opNames[OpInvalid]
}
