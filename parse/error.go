package parse

import (
	"fmt"

	"github.com/susji/cminus/token"
)

type ParseError struct {
	Wrapped error
	Fn      string
	Tok     *token.Token
}

func (e *ParseError) Error() string {
	if e.Tok == nil {
		return fmt.Sprintf("%s: end of input: %s", e.Fn, e.Wrapped)
	}
	lineno, col := e.Tok.Lineno(), e.Tok.Col()
	return fmt.Sprintf("%s:%d:%d: %s", e.Fn, lineno, col, e.Wrapped)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}
