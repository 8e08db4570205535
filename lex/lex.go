// Package lex turns C-minus source text into tokens.
package lex

import (
	"errors"
	"fmt"
	"strings"
	"text/scanner"

	"github.com/susji/cminus/token"
)

var (
	ErrUnexpectedRune = errors.New("unexpected character")
	ErrScan           = errors.New("scan error")
	ErrNumber         = errors.New("invalid number")
)

type LexError struct {
	Pos     token.Pos
	Fn      string
	Wrapped error
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Fn, e.Pos.Lineno, e.Pos.Col, e.Wrapped)
}

func (e *LexError) Unwrap() error {
	return e.Wrapped
}

var singles = map[rune]token.Kind{
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	';': token.Semicolon,
	',': token.Comma,
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBrack,
	']': token.RBrack,
	'{': token.LCurly,
	'}': token.RCurly,
}

// doubles holds the kind of a lone rune and of the same rune followed by
// '='. A negative kind means the lone rune is not a token.
var doubles = map[rune][2]token.Kind{
	'<': {token.Lt, token.Le},
	'>': {token.Gt, token.Ge},
	'=': {token.Assign, token.Eq},
	'!': {-1, token.Ne},
}

func isDecimal(text string) bool {
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(text) > 0
}

// Lex scans all of src. Scanning continues past errors so that every
// offending character is reported.
func Lex(fn, src string) (*token.Tokens, []error) {
	toks := &token.Tokens{}
	var errs []error

	errorf := func(pos token.Pos, err error, format string, a ...interface{}) {
		errs = append(errs, &LexError{
			Pos:     pos,
			Fn:      fn,
			Wrapped: fmt.Errorf("%w: %s", err, fmt.Sprintf(format, a...)),
		})
	}

	var s scanner.Scanner
	s.Init(strings.NewReader(src))
	s.Filename = fn
	s.Mode = scanner.ScanIdents | scanner.ScanInts |
		scanner.ScanComments | scanner.SkipComments
	s.Error = func(s *scanner.Scanner, msg string) {
		pos := s.Pos()
		errorf(token.Pos{Lineno: pos.Line, Col: pos.Column}, ErrScan, "%s", msg)
	}

	for r := s.Scan(); r != scanner.EOF; r = s.Scan() {
		pos := token.Pos{Lineno: s.Position.Line, Col: s.Position.Column}
		text := s.TokenText()
		switch r {
		case scanner.Ident:
			if kw, ok := token.Keyword(text); ok {
				toks.Add(token.New(kw, pos, text))
			} else {
				toks.Add(token.New(token.Id, pos, text))
			}
			continue
		case scanner.Int:
			// Only plain decimal constants exist in C-minus.
			if !isDecimal(text) {
				errorf(pos, ErrNumber, "%q", text)
				continue
			}
			toks.Add(token.New(token.Num, pos, text))
			continue
		}
		if k, ok := singles[r]; ok {
			toks.Add(token.New(k, pos, text))
			continue
		}
		if pair, ok := doubles[r]; ok {
			if s.Peek() == '=' {
				s.Next()
				toks.Add(token.New(pair[1], pos, text+"="))
				continue
			}
			if pair[0] < 0 {
				errorf(pos, ErrUnexpectedRune, "%q", text)
				continue
			}
			toks.Add(token.New(pair[0], pos, text))
			continue
		}
		errorf(pos, ErrUnexpectedRune, "%q", text)
	}
	return toks, errs
}
