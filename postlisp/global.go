package postlisp

import (
	"sort"
)

// builtinProc transforms the whole stack of the list it appears in into a
// single value. Arity has already been checked when it is called.
type builtinProc func(c call, args []Value) (Value, error)

type operator struct {
	arity    int
	variadic bool // arity is a minimum
	proc     builtinProc
}

// call is the context an operator runs in.
type call struct {
	op  string
	pos Pos
	env *Env
}

var operators map[string]operator

// reserved keywords lex as operators and cannot be bound, but have no
// behaviour of their own.
var reserved = map[string]bool{
	"begin": true,
}

func init() {
	operators = map[string]operator{
		"+":      {arity: 1, variadic: true, proc: add},
		"*":      {arity: 1, variadic: true, proc: mul},
		"-":      {arity: 2, proc: sub},
		"/":      {arity: 2, proc: div},
		"<":      {arity: 2, proc: compare(func(a, b int64) bool { return a < b })},
		"<=":     {arity: 2, proc: compare(func(a, b int64) bool { return a <= b })},
		">":      {arity: 2, proc: compare(func(a, b int64) bool { return a > b })},
		">=":     {arity: 2, proc: compare(func(a, b int64) bool { return a >= b })},
		"==":     {arity: 2, proc: compare(func(a, b int64) bool { return a == b })},
		"and":    {arity: 2, proc: and},
		"or":     {arity: 2, proc: or},
		"not":    {arity: 1, proc: not},
		"if":     {arity: 3, proc: ifThenElse},
		"define": {arity: 2, proc: define},
	}
}

// IsKeyword reports whether name is an operator or a reserved keyword.
func IsKeyword(name string) bool {
	if reserved[name] {
		return true
	}
	_, ok := operators[name]
	return ok
}

// Keywords lists every operator and reserved keyword in sorted order.
func Keywords() []string {
	words := make([]string, 0, len(operators)+len(reserved))
	for k := range operators {
		words = append(words, k)
	}
	for k := range reserved {
		words = append(words, k)
	}
	sort.Strings(words)
	return words
}

func (c call) number(args []Value, i int) (int64, error) {
	if !args[i].IsNumber() {
		return 0, &TypeError{Op: c.op, Pos: c.pos, Operand: i + 1, Want: NumberValue, Got: args[i]}
	}
	return args[i].AsNumber(), nil
}

func (c call) boolean(args []Value, i int) (bool, error) {
	if !args[i].IsBoolean() {
		return false, &TypeError{Op: c.op, Pos: c.pos, Operand: i + 1, Want: BooleanValue, Got: args[i]}
	}
	return args[i].AsBoolean(), nil
}

func (c call) numbers(args []Value) ([]int64, error) {
	ns := make([]int64, len(args))
	for i := range args {
		n, err := c.number(args, i)
		if err != nil {
			return nil, err
		}
		ns[i] = n
	}
	return ns, nil
}

func add(c call, args []Value) (Value, error) {
	ns, err := c.numbers(args)
	if err != nil {
		return Value{}, err
	}
	var sum int64
	for _, n := range ns {
		sum += n
	}
	return NewNumber(sum), nil
}

func mul(c call, args []Value) (Value, error) {
	ns, err := c.numbers(args)
	if err != nil {
		return Value{}, err
	}
	var product int64 = 1
	for _, n := range ns {
		product *= n
	}
	return NewNumber(product), nil
}

func sub(c call, args []Value) (Value, error) {
	ns, err := c.numbers(args)
	if err != nil {
		return Value{}, err
	}
	return NewNumber(ns[0] - ns[1]), nil
}

func div(c call, args []Value) (Value, error) {
	ns, err := c.numbers(args)
	if err != nil {
		return Value{}, err
	}
	if ns[1] == 0 {
		return Value{}, &ArithmeticError{Op: c.op, Pos: c.pos, Msg: "division by zero"}
	}
	return NewNumber(ns[0] / ns[1]), nil
}

func compare(f func(a, b int64) bool) builtinProc {
	return func(c call, args []Value) (Value, error) {
		ns, err := c.numbers(args)
		if err != nil {
			return Value{}, err
		}
		return NewBoolean(f(ns[0], ns[1])), nil
	}
}

func and(c call, args []Value) (Value, error) {
	a, err := c.boolean(args, 0)
	if err != nil {
		return Value{}, err
	}
	b, err := c.boolean(args, 1)
	if err != nil {
		return Value{}, err
	}
	return NewBoolean(a && b), nil
}

func or(c call, args []Value) (Value, error) {
	a, err := c.boolean(args, 0)
	if err != nil {
		return Value{}, err
	}
	b, err := c.boolean(args, 1)
	if err != nil {
		return Value{}, err
	}
	return NewBoolean(a || b), nil
}

func not(c call, args []Value) (Value, error) {
	a, err := c.boolean(args, 0)
	if err != nil {
		return Value{}, err
	}
	return NewBoolean(!a), nil
}

// (cond then else if)
func ifThenElse(c call, args []Value) (Value, error) {
	cond, err := c.boolean(args, 0)
	if err != nil {
		return Value{}, err
	}
	if cond {
		return args[1], nil
	}
	return args[2], nil
}

// (name value define) binds name and leaves value on the stack.
func define(c call, args []Value) (Value, error) {
	target := args[0]
	if !target.IsSymbol() {
		return Value{}, &TypeError{Op: c.op, Pos: c.pos, Operand: 1, Want: SymbolValue, Got: target}
	}
	if err := c.env.Bind(target.AsSymbol(), args[1]); err != nil {
		if rerr, ok := err.(*ReservedNameError); ok {
			rerr.Pos = c.pos
		}
		return Value{}, err
	}
	return args[1], nil
}
