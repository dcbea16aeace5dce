package parser

import (
	"errors"
)

// Errors returned by the parser. Wrapped values carry the offending token;
// use errors.Is to match the kind.
var (
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrInvalidToken    = errors.New("invalid character")
	ErrTrailingInput   = errors.New("trailing input")
	ErrBadNumber       = errors.New("malformed integer literal")
	ErrMaxDepth        = errors.New("maximum nesting depth exceeded")
)
