package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota // Any character outside the grammar
	TokenOpenParen                   // Open parenthesis: "("
	TokenCloseParen                  // Close parenthesis: ")"
	TokenPlus                        // Plus sign: "+"
	TokenMinus                       // Minus sign: "-"
	TokenStar                        // Asterisk: "*"
	TokenSlash                       // Forward slash: "/"
	TokenInteger                     // Integers
	TokenWhitespace                  // Space, tab, linefeed, carriage return or newline
	TokenEOF                         // End of input
)

var tokenValues = map[TokenType][]byte{
	TokenOpenParen:  {'('},
	TokenCloseParen: {')'},
	TokenPlus:       {'+'},
	TokenMinus:      {'-'},
	TokenStar:       {'*'},
	TokenSlash:      {'/'},
	TokenInteger:    []byte("0123456789"),
	TokenWhitespace: []byte(" \f\t\r\n"),
}

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenOpenParen:  "open_paren",
	TokenCloseParen: "close_paren",
	TokenPlus:       "plus",
	TokenMinus:      "minus",
	TokenStar:       "star",
	TokenSlash:      "slash",
	TokenInteger:    "integer",
	TokenWhitespace: "whitespace",
	TokenEOF:        "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(c byte) bool {
	return func(c byte) bool {
		for _, v := range tokenValues[tt] {
			if v == c {
				return true
			}
		}
		return false
	}
}
