package token_test

import (
	"testing"

	"github.com/susji/cminus/testers/assert"
	"github.com/susji/cminus/token"
)

func p(lineno int) token.Pos {
	return token.Pos{Lineno: lineno, Col: 1}
}

func TestTokensFind(t *testing.T) {
	toks := &token.Tokens{}
	toks.Add(token.New(token.Num, p(1), "1")).
		Add(token.New(token.Num, p(1), "2")).
		Add(token.New(token.Id, p(2), "one")).
		Add(token.New(token.Plus, p(2), "+")).
		Add(token.New(token.Semicolon, p(2), ";")).
		Add(token.New(token.Id, p(3), "two")).
		Add(token.New(token.RCurly, p(4), "}"))

	first := toks.Find(token.Id)
	toks.Pop()
	semi := toks.Find(token.Semicolon, token.RCurly)
	toks.Pop()
	second := toks.Find(token.Id)
	toks.Pop()
	curly := toks.Find(token.Semicolon, token.RCurly)
	toks.Pop()
	assert.Nil(t, toks.Peek())

	assert.Equal(t, "one", first.Value())
	assert.Equal(t, token.Kind(token.Semicolon), semi.Kind())
	assert.Equal(t, "two", second.Value())
	assert.Equal(t, 3, second.Lineno())
	assert.Equal(t, token.Kind(token.RCurly), curly.Kind())
}

func TestAccept(t *testing.T) {
	toks := &token.Tokens{}
	toks.Add(token.New(token.Int, p(1), "int")).
		Add(token.New(token.Id, p(1), "x"))

	assert.NotNil(t, toks.Accept(token.Void))
	assert.Equal(t, 2, toks.Len())
	assert.Nil(t, toks.Accept(token.Int))
	assert.True(t, toks.Is(token.Id))
	assert.Nil(t, toks.Accept(token.Id))
	assert.Equal(t, token.EOT, toks.Accept(token.Semicolon))
}

func TestKeyword(t *testing.T) {
	k, ok := token.Keyword("while")
	assert.True(t, ok)
	assert.Equal(t, token.Kind(token.While), k)
	_, ok = token.Keyword("output")
	assert.False(t, ok)
	assert.Equal(t, "<=", token.Kind(token.Le).String())
}
