package ast

import (
	"fmt"

	"github.com/xiam/lisp-calc/lexer"
)

// Expr represents a node of the AST. It is either a Literal or a BinaryOp;
// the distinction is carried by the concrete type, never by a nil field.
type Expr interface {
	// Token returns the token the node was built from
	Token() *lexer.Token

	exprNode()
}

// Literal represents a leaf node holding an integer value
type Literal struct {
	tok   *lexer.Token
	value int64
}

// NewLiteral creates a leaf node from the given token and value
func NewLiteral(tok *lexer.Token, value int64) *Literal {
	return &Literal{
		tok:   tok,
		value: value,
	}
}

// Token returns the token the literal was built from
func (n Literal) Token() *lexer.Token {
	return n.tok
}

// Value returns the integer value of the literal
func (n Literal) Value() int64 {
	return n.value
}

func (n Literal) String() string {
	return fmt.Sprintf("%d", n.value)
}

func (*Literal) exprNode() {}

// BinaryOp represents the application of an operator to two operands. The
// operands are exclusively owned by this node.
type BinaryOp struct {
	tok *lexer.Token
	op  Op

	left  Expr
	right Expr
}

// NewBinaryOp creates a branch node applying op to the given operands
func NewBinaryOp(tok *lexer.Token, op Op, left Expr, right Expr) *BinaryOp {
	return &BinaryOp{
		tok:   tok,
		op:    op,
		left:  left,
		right: right,
	}
}

// Token returns the operator token the node was built from
func (n BinaryOp) Token() *lexer.Token {
	return n.tok
}

// Op returns the operator of the node
func (n BinaryOp) Op() Op {
	return n.op
}

// Left returns the first operand of the node
func (n BinaryOp) Left() Expr {
	return n.left
}

// Right returns the second operand of the node
func (n BinaryOp) Right() Expr {
	return n.right
}

func (n BinaryOp) String() string {
	return fmt.Sprintf("(%v %v %v)", n.op, n.left, n.right)
}

func (*BinaryOp) exprNode() {}

var (
	_ = Expr(&Literal{})
	_ = Expr(&BinaryOp{})
)
