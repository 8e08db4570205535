package parse

import (
	"strconv"

	"github.com/susji/cminus/node"
	"github.com/susji/cminus/token"
	"github.com/susji/cminus/types"
)

// TypeSpec implements "<type-specifier> = int | void".
func (p *Parser) TypeSpec(toks *token.Tokens) (types.Type, error) {
	cur := toks.Peek()
	if cur == nil {
		return types.TYPE_UNDETERMINED, p.errorf(nil, "%w: expecting type", EOT)
	}
	switch cur.Kind() {
	case token.Int:
		toks.Pop()
		return types.TYPE_INT, nil
	case token.Void:
		toks.Pop()
		return types.TYPE_VOID, nil
	default:
		return types.TYPE_UNDETERMINED,
			p.errorf(cur, "%w: expecting type, got %v", ErrUnexpected, cur)
	}
}

func isTypeSpec(tok *token.Token) bool {
	return tok != nil && (tok.Kind() == token.Int || tok.Kind() == token.Void)
}

// GlobalDecl parses either a variable or a function declaration.
//
// <declaration> = <type-specifier> ID ";"
//               | <type-specifier> ID "[" NUM "]" ";"
//               | <type-specifier> ID "(" <params> ")" <compound-stmt>
//
func (p *Parser) GlobalDecl(toks *token.Tokens) (node.Node, error) {
	kind, err := p.TypeSpec(toks)
	if err != nil {
		return nil, err
	}
	id, err := p.expect(toks, token.Id, "for declaration name")
	if err != nil {
		return nil, err
	}
	if toks.Is(token.LParen) {
		return p.FunDecl(toks, kind, id)
	}
	return p.varDeclRest(toks, kind, id)
}

// VarDecl parses a local variable declaration.
func (p *Parser) VarDecl(toks *token.Tokens) (*node.VarDecl, error) {
	kind, err := p.TypeSpec(toks)
	if err != nil {
		return nil, err
	}
	id, err := p.expect(toks, token.Id, "for variable name")
	if err != nil {
		return nil, err
	}
	return p.varDeclRest(toks, kind, id)
}

func (p *Parser) varDeclRest(toks *token.Tokens, kind types.Type, id *token.Token) (*node.VarDecl, error) {
	decl := &node.VarDecl{
		Common: node.At(id.Lineno(), kind),
		Name:   id.Value(),
	}
	if toks.Is(token.LBrack) {
		toks.Pop()
		num, err := p.expect(toks, token.Num, "for array size")
		if err != nil {
			return nil, err
		}
		size, err := strconv.Atoi(num.Value())
		if err != nil {
			return nil, p.errorf(num, "invalid array size: %w", err)
		}
		if _, err := p.expect(toks, token.RBrack, "after array size"); err != nil {
			return nil, err
		}
		decl.Typ = kind.Array()
		decl.Size = size
	}
	if _, err := p.expect(toks, token.Semicolon, "after declaration"); err != nil {
		return nil, err
	}
	return decl, nil
}

// FunDecl parses the rest of a function declaration after its name.
func (p *Parser) FunDecl(toks *token.Tokens, returns types.Type, id *token.Token) (*node.FunDecl, error) {
	params, err := p.FuncParams(toks)
	if err != nil {
		return nil, err
	}
	body, err := p.Block(toks, true)
	if err != nil {
		return nil, err
	}
	return &node.FunDecl{
		Common: node.At(id.Lineno(), returns),
		Name:   id.Value(),
		Params: params,
		Body:   body,
	}, nil
}

// FuncParams implements
//
// <params> = "(" <param-list> ")" | "(" "void" ")" | "(" ")"
//
// The last two produce a single marker Param with NoParams set.
func (p *Parser) FuncParams(toks *token.Tokens) ([]*node.Param, error) {
	first, err := p.expect(toks, token.LParen, "to start parameters")
	if err != nil {
		return nil, err
	}
	marker := func() []*node.Param {
		return []*node.Param{{
			Common:   node.At(first.Lineno(), types.TYPE_VOID),
			NoParams: true,
		}}
	}
	if toks.Is(token.RParen) {
		toks.Pop()
		return marker(), nil
	}
	if toks.Is(token.Void) {
		if next := toks.PeekAt(1); next != nil && next.Kind() == token.RParen {
			toks.Pop()
			toks.Pop()
			return marker(), nil
		}
	}
	params := []*node.Param{}
params:
	for {
		param, err := p.Param(toks)
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		parorcomma := toks.Peek()
		if parorcomma == nil {
			return nil, p.errorf(first, "%w: unterminated parameter list", EOT)
		}
		switch parorcomma.Kind() {
		case token.RParen:
			toks.Pop()
			break params
		case token.Comma:
			toks.Pop()
		default:
			return nil, p.errorf(parorcomma,
				"%w: in parameter list: %v", ErrUnexpected, parorcomma)
		}
	}
	return params, nil
}

// Param implements "<param> = <type-specifier> ID [ "[" "]" ]".
func (p *Parser) Param(toks *token.Tokens) (*node.Param, error) {
	kind, err := p.TypeSpec(toks)
	if err != nil {
		return nil, err
	}
	id, err := p.expect(toks, token.Id, "for parameter name")
	if err != nil {
		return nil, err
	}
	if toks.Is(token.LBrack) {
		toks.Pop()
		if _, err := p.expect(toks, token.RBrack, "for array parameter"); err != nil {
			return nil, err
		}
		kind = kind.Array()
	}
	return &node.Param{
		Common: node.At(id.Lineno(), kind),
		Name:   id.Value(),
	}, nil
}
