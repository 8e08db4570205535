package parse

import (
	"github.com/susji/cminus/node"
	"github.com/susji/cminus/token"
)

// Block implements
//
// <compound-stmt> = "{" <local-declarations> <statement-list> "}"
//
// funcbody marks the block as the body of a function declaration.
func (p *Parser) Block(toks *token.Tokens, funcbody bool) (*node.Compound, error) {
	first, err := p.expect(toks, token.LCurly, "to start block")
	if err != nil {
		return nil, err
	}
	block := &node.Compound{
		Common:   node.At(first.Lineno(), 0),
		FuncBody: funcbody,
	}
	for isTypeSpec(toks.Peek()) {
		decl, err := p.VarDecl(toks)
		if err != nil {
			p.recover(toks)
			continue
		}
		block.Decls = append(block.Decls, decl)
	}
	for toks.Peek() != nil && toks.Peek().Kind() != token.RCurly {
		stmt, err := p.Stmt(toks)
		if err != nil {
			p.recover(toks)
			continue
		}
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
	}
	if _, err := p.expect(toks, token.RCurly, "to terminate block"); err != nil {
		return nil, err
	}
	return block, nil
}

// recover skips to the end of the current statement. A '}' is left in place
// so that the enclosing block can still terminate.
func (p *Parser) recover(toks *token.Tokens) {
	if found := toks.Find(token.Semicolon, token.RCurly); found != nil &&
		found.Kind() == token.Semicolon {
		toks.Pop()
	}
}

// Stmt parses a single statement. An empty statement ";" yields a nil Node
// and no error.
func (p *Parser) Stmt(toks *token.Tokens) (node.Node, error) {
	first := toks.Peek()
	if first == nil {
		return nil, p.errorf(nil, "%w: expecting statement", EOT)
	}
	switch first.Kind() {
	case token.LCurly:
		block, err := p.Block(toks, false)
		if err != nil {
			return nil, err
		}
		return block, nil
	case token.If:
		return p.If(toks)
	case token.While:
		return p.While(toks)
	case token.Return:
		return p.Return(toks)
	case token.Semicolon:
		toks.Pop()
		return nil, nil
	}
	expr, err := p.Expr(toks)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(toks, token.Semicolon, "after expression"); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) cond(toks *token.Tokens, what string) (node.Node, error) {
	if _, err := p.expect(toks, token.LParen, "after "+what); err != nil {
		return nil, err
	}
	cond, err := p.Expr(toks)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(toks, token.RParen, "after "+what+" condition"); err != nil {
		return nil, err
	}
	return cond, nil
}

// body parses a statement that must exist, such as the branch of an if.
func (p *Parser) body(toks *token.Tokens) (node.Node, error) {
	first := toks.Peek()
	stmt, err := p.Stmt(toks)
	if err != nil {
		return nil, err
	}
	if stmt == nil {
		// An empty statement as a body is an empty block.
		return &node.Compound{Common: node.At(first.Lineno(), 0)}, nil
	}
	return stmt, nil
}

// If implements
//
// <selection-stmt> = "if" "(" <expression> ")" <statement>
//                  [ "else" <statement> ]
//
func (p *Parser) If(toks *token.Tokens) (node.Node, error) {
	first := toks.Pop()
	cond, err := p.cond(toks, "if")
	if err != nil {
		return nil, err
	}
	then, err := p.body(toks)
	if err != nil {
		return nil, err
	}
	ret := &node.If{
		Common: node.At(first.Lineno(), 0),
		Cond:   cond,
		Then:   then,
	}
	if toks.Is(token.Else) {
		toks.Pop()
		els, err := p.body(toks)
		if err != nil {
			return nil, err
		}
		ret.Else = els
	}
	return ret, nil
}

// While implements "<iteration-stmt> = "while" "(" <expression> ")" <statement>".
func (p *Parser) While(toks *token.Tokens) (node.Node, error) {
	first := toks.Pop()
	cond, err := p.cond(toks, "while")
	if err != nil {
		return nil, err
	}
	body, err := p.body(toks)
	if err != nil {
		return nil, err
	}
	return &node.While{
		Common: node.At(first.Lineno(), 0),
		Cond:   cond,
		Body:   body,
	}, nil
}

// Return implements "<return-stmt> = "return" [ <expression> ] ";"".
func (p *Parser) Return(toks *token.Tokens) (node.Node, error) {
	first := toks.Pop()
	ret := &node.Return{Common: node.At(first.Lineno(), 0)}
	if toks.Is(token.Semicolon) {
		toks.Pop()
		return ret, nil
	}
	expr, err := p.Expr(toks)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(toks, token.Semicolon, "after return"); err != nil {
		return nil, err
	}
	ret.Expr = expr
	return ret, nil
}
