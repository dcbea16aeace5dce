package parser

import (
	"fmt"
	"strconv"

	"github.com/xiam/lisp-calc/ast"
	"github.com/xiam/lisp-calc/lexer"
)

// TokenEOF is handed out once the lexer channel closes
var TokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0, 0)

// DefaultMaxDepth is the nesting depth limit used unless SetOptions overrides
// it. Parsing and evaluation recurse once per nesting level, so the limit
// bounds stack growth on adversarially deep input.
const DefaultMaxDepth = 4096

// ParserOptions controls optional parser behavior
type ParserOptions struct {
	// MaxDepth is the maximum expression nesting depth. Zero means
	// DefaultMaxDepth.
	MaxDepth int
}

// Parser reads tokens from a lexer and builds an AST for the grammar
//
//	expr     := INTEGER | '(' operator expr expr ')'
//	operator := '+' | '-' | '*' | '/'
//	program  := expr EOF
type Parser struct {
	lx *lexer.Lexer

	nextTok *lexer.Token

	maxDepth int
}

// New initializes a Parser over the given source string
func New(src string) *Parser {
	return &Parser{
		lx:       lexer.New(src),
		maxDepth: DefaultMaxDepth,
	}
}

// SetOptions modifies the parser's behavior
func (p *Parser) SetOptions(opts ParserOptions) {
	if opts.MaxDepth > 0 {
		p.maxDepth = opts.MaxDepth
	}
}

// Parse consumes the whole input and returns the AST of the single expression
// within it. Input with no expression, a malformed expression or anything
// following the expression is rejected.
func (p *Parser) Parse() (ast.Expr, error) {
	errCh := make(chan error, 1)

	go func() {
		errCh <- p.lx.Scan()
	}()

	root, err := p.parseProgram()
	if err != nil {
		p.lx.Stop()
	}

	for range p.lx.Tokens() {
		// drain channel so the scan goroutine exits
	}

	if scanErr := <-errCh; scanErr != nil && err == nil {
		err = scanErr
	}

	if err != nil {
		return nil, err
	}
	return root, nil
}

func (p *Parser) parseProgram() (ast.Expr, error) {
	root, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}

	if tok := p.next(); !tok.Is(lexer.TokenEOF) {
		return nil, fmt.Errorf("%w: %v", ErrTrailingInput, tok)
	}

	return root, nil
}

func (p *Parser) read() *lexer.Token {
	tok, ok := <-p.lx.Tokens()
	if ok {
		return &tok
	}
	return TokenEOF
}

func (p *Parser) peek() *lexer.Token {
	if p.nextTok != nil {
		return p.nextTok
	}

	p.nextTok = p.read()
	return p.nextTok
}

func (p *Parser) next() *lexer.Token {
	if p.nextTok != nil {
		tok := p.nextTok
		p.nextTok = nil
		return tok
	}

	return p.read()
}

// expect consumes the next token and verifies its type
func (p *Parser) expect(tt lexer.TokenType) (*lexer.Token, error) {
	tok := p.next()
	if tok.Is(lexer.TokenEOF) {
		return nil, fmt.Errorf("%w: expected %v", ErrUnexpectedEOF, tt)
	}
	if !tok.Is(tt) {
		return nil, fmt.Errorf("%w: expected %v, got %v", ErrUnexpectedToken, tt, tok)
	}
	return tok, nil
}

var tokenOps = map[lexer.TokenType]ast.Op{
	lexer.TokenPlus:  ast.OpAdd,
	lexer.TokenMinus: ast.OpSub,
	lexer.TokenStar:  ast.OpMul,
	lexer.TokenSlash: ast.OpDiv,
}

func (p *Parser) parseExpr(depth int) (ast.Expr, error) {
	if depth >= p.maxDepth {
		return nil, fmt.Errorf("%w (%d)", ErrMaxDepth, p.maxDepth)
	}

	tok := p.peek()

	switch tok.Type() {
	case lexer.TokenInteger:
		p.next()
		return p.literalNode(tok)

	case lexer.TokenOpenParen:
		p.next()
		return p.parseBinaryOp(depth)

	case lexer.TokenEOF:
		return nil, fmt.Errorf("%w: expected expression", ErrUnexpectedEOF)

	case lexer.TokenInvalid:
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, tok)

	default:
		return nil, fmt.Errorf("%w: expected expression, got %v", ErrUnexpectedToken, tok)
	}
}

// literalNode converts the span of an integer token into a leaf node. The
// conversion happens here, not in the lexer.
func (p *Parser) literalNode(tok *lexer.Token) (ast.Expr, error) {
	i64, err := strconv.ParseInt(tok.Text(), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadNumber, tok)
	}
	return ast.NewLiteral(tok, i64), nil
}

// parseBinaryOp parses the remainder of a compound expression after its
// opening parenthesis was consumed
func (p *Parser) parseBinaryOp(depth int) (ast.Expr, error) {
	opTok := p.next()

	op, ok := tokenOps[opTok.Type()]
	if !ok {
		switch opTok.Type() {
		case lexer.TokenEOF:
			return nil, fmt.Errorf("%w: expected operator", ErrUnexpectedEOF)
		case lexer.TokenInvalid:
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, opTok)
		default:
			return nil, fmt.Errorf("%w: expected operator, got %v", ErrUnexpectedToken, opTok)
		}
	}

	left, err := p.parseExpr(depth + 1)
	if err != nil {
		return nil, err
	}

	right, err := p.parseExpr(depth + 1)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.TokenCloseParen); err != nil {
		return nil, err
	}

	return ast.NewBinaryOp(opTok, op, left, right), nil
}

// Parse builds the AST for the single expression within src
func Parse(src string) (ast.Expr, error) {
	return New(src).Parse()
}
