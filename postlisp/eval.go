package postlisp

import (
	"log"
)

type evaluator struct {
	env   *Env
	trace *log.Logger
}

// Evaluate runs a top-level list against env and returns whatever is left on
// its stack, in push order.
func Evaluate(program List, env *Env) ([]Value, error) {
	return evaluator{env: env}.evalList(program)
}

// evalList evaluates the children of l left to right against a fresh stack.
// Operators consume the whole stack; nested lists must reduce to one value.
func (ev evaluator) evalList(l List) ([]Value, error) {
	stack := make([]Value, 0, len(l.Items))
	for _, e := range l.Items {
		switch e := e.(type) {
		case List:
			vals, err := ev.evalList(e)
			if err != nil {
				return nil, err
			}
			if len(vals) != 1 {
				return nil, &ReductionError{Pos: e.Pos, Got: len(vals)}
			}
			stack = append(stack, vals[0])
		case Atom:
			tok := e.Token
			switch tok.Kind {
			case NumberToken:
				stack = append(stack, NewNumber(tok.Num))
			case BooleanToken:
				stack = append(stack, NewBoolean(tok.Bool))
			case SymbolToken:
				if v, ok := ev.env.Lookup(tok.Text); ok {
					stack = append(stack, v)
					continue
				}
				stack = append(stack, NewSymbol(tok.Text))
			case OperatorToken:
				v, err := ev.apply(tok, stack)
				if err != nil {
					return nil, err
				}
				stack = []Value{v}
			}
		}
	}
	return stack, nil
}

func (ev evaluator) apply(tok Token, stack []Value) (Value, error) {
	if reserved[tok.Text] {
		return Value{}, &ReservedNameError{Name: tok.Text, Pos: tok.Pos, Evaluated: true}
	}
	op := operators[tok.Text]
	if len(stack) < op.arity || (!op.variadic && len(stack) != op.arity) {
		return Value{}, &ArityError{Op: tok.Text, Pos: tok.Pos, Want: op.arity, AtLeast: op.variadic, Got: len(stack)}
	}
	v, err := op.proc(call{op: tok.Text, pos: tok.Pos, env: ev.env}, stack)
	if err != nil {
		return Value{}, err
	}
	if ev.trace != nil {
		ev.trace.Printf("%s %s %v -> %s", tok.Pos, tok.Text, stack, v)
	}
	return v, nil
}
