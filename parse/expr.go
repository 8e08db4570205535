package parse

import (
	"strconv"

	"github.com/susji/cminus/node"
	"github.com/susji/cminus/token"
)

var tok_to_relop = map[token.Kind]node.KindOpBin{
	token.Lt: node.OPBIN_LT,
	token.Le: node.OPBIN_LE,
	token.Gt: node.OPBIN_GT,
	token.Ge: node.OPBIN_GE,
	token.Eq: node.OPBIN_EQ,
	token.Ne: node.OPBIN_NE,
}

var tok_to_addop = map[token.Kind]node.KindOpBin{
	token.Plus:  node.OPBIN_ADD,
	token.Minus: node.OPBIN_SUB,
}

var tok_to_mulop = map[token.Kind]node.KindOpBin{
	token.Star:  node.OPBIN_MUL,
	token.Slash: node.OPBIN_DIV,
}

// Expr implements
//
// <expression> = <var> "=" <expression> | <simple-expression>
//
// As "<var>" is also a "<simple-expression>", we parse the latter first and
// then check whether we ended up with an lvalue in front of '='.
func (p *Parser) Expr(toks *token.Tokens) (node.Node, error) {
	lv, err := p.SimpleExpr(toks)
	if err != nil {
		return nil, err
	}
	next := toks.Peek()
	if next == nil || next.Kind() != token.Assign {
		return lv, nil
	}
	to, ok := lv.(*node.VarAccess)
	if !ok {
		return nil, p.errorf(next, "%w: got %s", ErrLvalue, lv)
	}
	toks.Pop()
	rv, err := p.Expr(toks)
	if err != nil {
		return nil, err
	}
	return &node.Assign{
		Common: node.At(next.Lineno(), 0),
		To:     to,
		What:   rv,
	}, nil
}

// binary parses a left-associative chain "<sub> { <op> <sub> }".
func (p *Parser) binary(
	toks *token.Tokens,
	ops map[token.Kind]node.KindOpBin,
	sub func(*token.Tokens) (node.Node, error)) (node.Node, error) {
	left, err := sub(toks)
	if err != nil {
		return nil, err
	}
	for {
		optok := toks.Peek()
		if optok == nil {
			return left, nil
		}
		op, ok := ops[optok.Kind()]
		if !ok {
			return left, nil
		}
		toks.Pop()
		right, err := sub(toks)
		if err != nil {
			return nil, err
		}
		left = &node.BinOp{
			Common: node.At(optok.Lineno(), 0),
			Op:     op,
			Left:   left,
			Right:  right,
		}
	}
}

// SimpleExpr implements
//
// <simple-expression> = <additive-expression> [ <relop> <additive-expression> ]
//
func (p *Parser) SimpleExpr(toks *token.Tokens) (node.Node, error) {
	left, err := p.Additive(toks)
	if err != nil {
		return nil, err
	}
	optok := toks.Peek()
	if optok == nil {
		return left, nil
	}
	op, ok := tok_to_relop[optok.Kind()]
	if !ok {
		return left, nil
	}
	toks.Pop()
	right, err := p.Additive(toks)
	if err != nil {
		return nil, err
	}
	return &node.BinOp{
		Common: node.At(optok.Lineno(), 0),
		Op:     op,
		Left:   left,
		Right:  right,
	}, nil
}

func (p *Parser) Additive(toks *token.Tokens) (node.Node, error) {
	return p.binary(toks, tok_to_addop, p.Term)
}

func (p *Parser) Term(toks *token.Tokens) (node.Node, error) {
	return p.binary(toks, tok_to_mulop, p.Factor)
}

// Factor implements
//
// <factor> = "(" <expression> ")" | NUM | ID | ID "[" <expression> "]"
//          | ID "(" <args> ")"
//
func (p *Parser) Factor(toks *token.Tokens) (node.Node, error) {
	this := toks.Peek()
	if this == nil {
		return nil, p.errorf(nil, "%w: expecting expression", EOT)
	}
	switch this.Kind() {
	case token.LParen:
		toks.Pop()
		parexpr, err := p.Expr(toks)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(toks, token.RParen, "to close parentheses"); err != nil {
			return nil, err
		}
		return parexpr, nil
	case token.Num:
		toks.Pop()
		val, err := strconv.ParseInt(this.Value(), 10, 32)
		if err != nil {
			return nil, p.errorf(this, "invalid integer: %w", err)
		}
		return &node.Const{
			Common: node.At(this.Lineno(), 0),
			Value:  int(val),
		}, nil
	case token.Id:
		toks.Pop()
		switch {
		case toks.Is(token.LParen):
			return p.Call(toks, this)
		case toks.Is(token.LBrack):
			toks.Pop()
			index, err := p.Expr(toks)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(toks, token.RBrack, "to close index"); err != nil {
				return nil, err
			}
			return &node.VarAccess{
				Common: node.At(this.Lineno(), 0),
				Name:   this.Value(),
				Index:  index,
			}, nil
		}
		return &node.VarAccess{
			Common: node.At(this.Lineno(), 0),
			Name:   this.Value(),
		}, nil
	default:
		return nil, p.errorf(this, "%w: expecting expression, got %v",
			ErrUnexpected, this)
	}
}

// Call parses "(" <args> ")" after the callee's name.
func (p *Parser) Call(toks *token.Tokens, name *token.Token) (node.Node, error) {
	if _, err := p.expect(toks, token.LParen, "to start arguments"); err != nil {
		return nil, err
	}
	call := &node.Call{
		Common: node.At(name.Lineno(), 0),
		Name:   name.Value(),
	}
	if toks.Is(token.RParen) {
		toks.Pop()
		return call, nil
	}
	for {
		arg, err := p.Expr(toks)
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if toks.Is(token.Comma) {
			toks.Pop()
			continue
		}
		if _, err := p.expect(toks, token.RParen, "to close arguments"); err != nil {
			return nil, err
		}
		return call, nil
	}
}
