package postlisp

import (
	"fmt"
	"strconv"
	"strings"
)

type TokenKind uint8

const (
	NumberToken TokenKind = iota
	BooleanToken
	SymbolToken
	OperatorToken
	OpenParen
	CloseParen
)

func (k TokenKind) String() string {
	switch k {
	case NumberToken:
		return "number"
	case BooleanToken:
		return "boolean"
	case SymbolToken:
		return "symbol"
	case OperatorToken:
		return "operator"
	case OpenParen:
		return "'('"
	case CloseParen:
		return "')'"
	}
	return "unknown"
}

// Pos is a 1-based line and column in program text.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

type Token struct {
	Kind TokenKind
	Text string
	Num  int64
	Bool bool
	Pos  Pos
}

func (t Token) String() string {
	return t.Text
}

// An Expression is either an Atom or a List.
type Expression interface {
	fmt.Stringer
	Position() Pos
}

type Atom struct {
	Token Token
}

func (a Atom) String() string {
	return a.Token.Text
}

func (a Atom) Position() Pos {
	return a.Token.Pos
}

type List struct {
	Items []Expression
	Pos   Pos
}

func (l List) String() string {
	parts := make([]string, len(l.Items))
	for i, e := range l.Items {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (l List) Position() Pos {
	return l.Pos
}

type ValueKind uint8

const (
	NumberValue ValueKind = iota
	BooleanValue
	SymbolValue
)

func (k ValueKind) String() string {
	switch k {
	case NumberValue:
		return "number"
	case BooleanValue:
		return "boolean"
	case SymbolValue:
		return "symbol"
	}
	return "unknown"
}

// Value is the result of evaluation. A Symbol value is a name that was not
// bound when it was pushed.
type Value struct {
	kind ValueKind
	num  int64
	b    bool
	sym  string
}

func NewNumber(n int64) Value {
	return Value{kind: NumberValue, num: n}
}

func NewBoolean(b bool) Value {
	return Value{kind: BooleanValue, b: b}
}

func NewSymbol(name string) Value {
	return Value{kind: SymbolValue, sym: name}
}

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) IsNumber() bool { return v.kind == NumberValue }
func (v Value) IsBoolean() bool { return v.kind == BooleanValue }
func (v Value) IsSymbol() bool { return v.kind == SymbolValue }

func (v Value) AsNumber() int64 {
	if !v.IsNumber() {
		panic("not a number")
	}
	return v.num
}

func (v Value) AsBoolean() bool {
	if !v.IsBoolean() {
		panic("not a boolean")
	}
	return v.b
}

func (v Value) AsSymbol() string {
	if !v.IsSymbol() {
		panic("not a symbol")
	}
	return v.sym
}

func (v Value) String() string {
	switch v.kind {
	case NumberValue:
		return strconv.FormatInt(v.num, 10)
	case BooleanValue:
		if v.b {
			return "True"
		}
		return "False"
	}
	return v.sym
}
