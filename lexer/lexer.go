package lexer

import (
	"io"
)

type lexState func(*Lexer) lexState

var (
	isOpenParen  = isTokenType(TokenOpenParen)
	isCloseParen = isTokenType(TokenCloseParen)

	isPlus  = isTokenType(TokenPlus)
	isMinus = isTokenType(TokenMinus)
	isStar  = isTokenType(TokenStar)
	isSlash = isTokenType(TokenSlash)

	isInteger    = isTokenType(TokenInteger)
	isWhitespace = isTokenType(TokenWhitespace)
)

// New initializes a Lexer over the given source string
func New(src string) *Lexer {
	return &Lexer{
		in:     src,
		tokens: make(chan Token),
		done:   make(chan struct{}),
	}
}

// Lexer represents a lexical analyzer. Lexemes are spans of the source string
// delimited by the start and offset cursors.
type Lexer struct {
	in string

	tokens chan Token
	done   chan struct{}

	stopped bool

	start  int
	offset int

	line int
	col  int

	startLine int
	startCol  int
}

// Tokens returns a channel that is going to receive tokens as soon as they are
// detected.
func (lx *Lexer) Tokens() chan Token {
	return lx.tokens
}

// Stop tells a running Scan to quit without emitting further tokens. It must
// be called at most once, after the consumer decides to stop reading.
func (lx *Lexer) Stop() {
	close(lx.done)
}

// Scan starts scanning the source for tokens. The token channel is closed
// when the scan ends.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		select {
		case <-lx.done:
			lx.stopped = true
			state = nil
		default:
			state = state(lx)
		}
	}

	if !lx.stopped {
		lx.emit(TokenEOF)
	}

	close(lx.tokens)
	return nil
}

func (lx *Lexer) emit(tt TokenType) bool {
	tok := Token{
		tt:     tt,
		lexeme: lx.in[lx.start:lx.offset],

		line: lx.startLine + 1,
		col:  lx.startCol + 1,
	}

	select {
	case lx.tokens <- tok:
		lx.skip()
		return true
	case <-lx.done:
		lx.stopped = true
		return false
	}
}

// skip discards the current span without emitting a token
func (lx *Lexer) skip() {
	lx.start = lx.offset
	lx.startLine, lx.startCol = lx.line, lx.col
}

func (lx *Lexer) peek() byte {
	if lx.offset >= len(lx.in) {
		return 0
	}
	return lx.in[lx.offset]
}

func (lx *Lexer) next() (byte, error) {
	if lx.offset >= len(lx.in) {
		return 0, io.EOF
	}

	c := lx.in[lx.offset]
	lx.offset++

	if c == '\n' {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}

	return c, nil
}

func lexDefaultState(lx *Lexer) lexState {
	c, err := lx.next()
	if err != nil {
		return nil
	}

	switch {

	case isOpenParen(c):
		return lexEmit(TokenOpenParen)
	case isCloseParen(c):
		return lexEmit(TokenCloseParen)

	case isPlus(c):
		return lexEmit(TokenPlus)
	case isMinus(c):
		return lexEmit(TokenMinus)
	case isStar(c):
		return lexEmit(TokenStar)
	case isSlash(c):
		return lexEmit(TokenSlash)

	case isInteger(c):
		return lexCollectStream(TokenInteger)
	case isWhitespace(c):
		return lexSkipStream(TokenWhitespace)

	default:
		return lexEmit(TokenInvalid)

	}
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		if !lx.emit(tt) {
			return nil
		}
		return lexDefaultState
	}
}

func lexCollectStream(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		for (isTokenType(tt))(lx.peek()) {
			if _, err := lx.next(); err != nil {
				return nil
			}
		}
		return lexEmit(tt)
	}
}

func lexSkipStream(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		for (isTokenType(tt))(lx.peek()) {
			if _, err := lx.next(); err != nil {
				return nil
			}
		}
		lx.skip()
		return lexDefaultState
	}
}

// Tokenize scans the whole source and returns all the tokens within it,
// ending with a token of type EOF.
func Tokenize(src string) ([]Token, error) {
	tokens := []Token{}
	done := make(chan struct{})

	lx := New(src)

	go func() {
		for tok := range lx.tokens {
			tokens = append(tokens, tok)
		}
		done <- struct{}{}
	}()

	if err := lx.Scan(); err != nil {
		return nil, err
	}

	<-done
	return tokens, nil
}
