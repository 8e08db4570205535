package token

import (
	"errors"
	"fmt"
	"strings"
)

var EOT = errors.New("end of tokens")

// Pos is a 1-based (lineno, col) pair.
type Pos struct {
	Lineno, Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Lineno, p.Col)
}

// Tokens implements a FIFO for individual tokens.
type Tokens struct {
	toks []Token
}

type Token struct {
	pos   Pos
	kind  Kind
	value string
}

func New(kind Kind, pos Pos, value string) Token {
	if !validkind(kind) {
		panic(fmt.Sprintf("invalid token kind: %v", kind))
	}
	return Token{
		kind:  kind,
		value: value,
		pos:   pos,
	}
}

type Kind int

const (
	Id = iota
	Num
	Else
	If
	Int
	Return
	Void
	While
	Plus
	Minus
	Star // 10
	Slash
	Lt
	Le
	Gt
	Ge
	Eq
	Ne
	Assign
	Semicolon
	Comma // 20
	LParen
	RParen
	LBrack
	RBrack
	LCurly
	RCurly
)

var toknames = [...]string{
	"id",
	"num",
	"else",
	"if",
	"int",
	"return",
	"void",
	"while",
	"+",
	"-",
	"*",
	"/",
	"<",
	"<=",
	">",
	">=",
	"==",
	"!=",
	"=",
	";",
	",",
	"(",
	")",
	"[",
	"]",
	"{",
	"}",
}

var keywords = map[string]Kind{
	"else":   Else,
	"if":     If,
	"int":    Int,
	"return": Return,
	"void":   Void,
	"while":  While,
}

// Keyword returns the reserved-word kind for id, if it is one.
func Keyword(id string) (Kind, bool) {
	k, ok := keywords[id]
	return k, ok
}

func (k Kind) String() string {
	return toknames[k]
}

func validkind(kind Kind) bool {
	return kind >= 0 && int(kind) <= (len(toknames)-1)
}

func (tok *Token) String() string {
	switch tok.kind {
	case Id, Num:
		return tok.value
	default:
		return fmt.Sprintf("%q", toknames[tok.kind])
	}
}

func (tok *Token) Value() string {
	return tok.value
}

func (tok *Token) Kind() Kind {
	return tok.kind
}

func (tok *Token) Lineno() int {
	return tok.pos.Lineno
}

func (tok *Token) Col() int {
	return tok.pos.Col
}

func (tok *Token) Pos() Pos {
	return tok.pos
}

func (toks *Tokens) Add(tok Token) *Tokens {
	toks.toks = append(toks.toks, tok)
	return toks
}

func (toks *Tokens) String() string {
	b := &strings.Builder{}
	for _, tok := range toks.toks {
		b.WriteString(
			fmt.Sprintf("[%d:%d] %s\n", tok.Lineno(), tok.Col(), tok.String()))
	}
	return b.String()
}

func (toks *Tokens) Len() int {
	return len(toks.toks)
}

func (toks *Tokens) Pop() *Token {
	if toks.Len() == 0 {
		return nil
	}
	var tok Token
	tok, toks.toks = toks.toks[0], toks.toks[1:]
	return &tok
}

// Peek returns the current token-to-be-parsed without consuming it.
func (toks *Tokens) Peek() *Token {
	if toks.Len() == 0 {
		return nil
	}
	return &toks.toks[0]
}

// PeekAt looks n tokens ahead of Peek.
func (toks *Tokens) PeekAt(n int) *Token {
	if n >= toks.Len() {
		return nil
	}
	return &toks.toks[n]
}

// Is reports whether the current token is of the given kind.
func (toks *Tokens) Is(kind Kind) bool {
	cur := toks.Peek()
	return cur != nil && cur.Kind() == kind
}

func (toks *Tokens) Accept(kind Kind) error {
	cur := toks.Peek()
	if cur == nil {
		return EOT
	}
	got := cur.Kind()
	if got != kind {
		return fmt.Errorf("expecting %q, got %v", toknames[kind], cur)
	}
	toks.Pop()
	return nil
}

func (toks *Tokens) Find(kinds ...Kind) *Token {
	find := map[Kind]struct{}{}
	for _, kind := range kinds {
		find[kind] = struct{}{}
	}
	for {
		cur := toks.Peek()
		if cur == nil {
			return nil
		}
		if _, ok := find[cur.Kind()]; ok {
			return cur
		}
		toks.Pop()
	}
}
