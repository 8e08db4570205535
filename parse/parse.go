// Package parse is a recursive-descent parser for C-minus. It produces the
// syntax tree defined in package node with declared types filled in and
// every expression type left undetermined.
package parse

import (
	"errors"
	"fmt"

	"github.com/susji/cminus/node"
	"github.com/susji/cminus/token"
)

var (
	ErrParse      = errors.New("parsing met with error(s)")
	ErrUnexpected = errors.New("unexpected token")
	ErrLvalue     = errors.New("assignment target must be a variable")
	EOT           = token.EOT
)

type Parser struct {
	fn    string
	nodes []node.Node
	errs  []error
}

func (p *Parser) errorf(tok *token.Token, format string, a ...interface{}) error {
	err := &ParseError{
		Tok:     tok,
		Fn:      p.fn,
		Wrapped: fmt.Errorf(format, a...),
	}
	p.errs = append(p.errs, err)
	return err
}

// expect consumes a token of the given kind or records an error about it.
func (p *Parser) expect(toks *token.Tokens, kind token.Kind, what string) (*token.Token, error) {
	cur := toks.Peek()
	if cur == nil {
		return nil, p.errorf(nil, "%w: expecting %q %s", EOT, kind, what)
	}
	if cur.Kind() != kind {
		return nil, p.errorf(cur, "%w: expecting %q %s, got %v",
			ErrUnexpected, kind, what, cur)
	}
	return toks.Pop(), nil
}

func (p *Parser) Errors() []error {
	if len(p.errs) == 0 {
		return nil
	}
	return p.errs
}

func (p *Parser) Nodes() []node.Node {
	return p.nodes
}

func (p *Parser) Fn() string {
	return p.fn
}

// Parse consumes all of toks as one C-minus program.
func (p *Parser) Parse(toks *token.Tokens) error {
	p.errs = []error{}
	p.nodes = []node.Node{}
	for toks.Len() > 0 {
		if newnode, err := p.GlobalDecl(toks); err == nil {
			p.nodes = append(p.nodes, newnode)
		} else {
			// If we completely failed in parsing, rewind until the next ';' or
			// '}' is reached. This gives us a better chance to catch multiple
			// errors.
			toks.Find(token.Semicolon, token.RCurly)
			toks.Pop()
		}
	}
	if len(p.errs) > 0 {
		return ErrParse
	}
	return nil
}

func New() *Parser {
	return NewFile("<stdin>")
}

func NewFile(fn string) *Parser {
	return &Parser{fn: fn}
}
