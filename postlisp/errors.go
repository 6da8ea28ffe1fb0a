package postlisp

import (
	"fmt"
)

// at renders " at line:col", or nothing for positions that are not known,
// such as errors raised through the Environment API.
func at(p Pos) string {
	if p.Line == 0 {
		return ""
	}
	return " at " + p.String()
}

// LexError reports a token that cannot be part of any program.
type LexError struct {
	Pos Pos
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error%s: %s", at(e.Pos), e.Msg)
}

// ParseError reports structurally invalid programs. Incomplete is set when
// the only problem is that the input ended before the top-level list was
// closed. Err holds the underlying cause for I/O failures in file mode.
type ParseError struct {
	Pos        Pos
	Msg        string
	Incomplete bool
	Err        error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error%s: %s: %v", at(e.Pos), e.Msg, e.Err)
	}
	return fmt.Sprintf("parse error%s: %s", at(e.Pos), e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ArityError reports an operator applied to a stack of the wrong size.
type ArityError struct {
	Op      string
	Pos     Pos
	Want    int
	AtLeast bool
	Got     int
}

func (e *ArityError) Error() string {
	qualifier := "exactly"
	if e.AtLeast {
		qualifier = "at least"
	}
	return fmt.Sprintf("arity error%s: '%s' expects %s %d %s, stack holds %d",
		at(e.Pos), e.Op, qualifier, e.Want, plural(e.Want, "operand"), e.Got)
}

// TypeError reports an operand of the wrong kind. Operand is 1-based in push
// order.
type TypeError struct {
	Op      string
	Pos     Pos
	Operand int
	Want    ValueKind
	Got     Value
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error%s: operand %d of '%s' must be a %s, got %s %s",
		at(e.Pos), e.Operand, e.Op, e.Want, e.Got.Kind(), e.Got)
}

// ReductionError reports a nested list that left zero or several values.
type ReductionError struct {
	Pos Pos
	Got int
}

func (e *ReductionError) Error() string {
	return fmt.Sprintf("reduction error%s: nested expression did not reduce to a single value (left %d %s)",
		at(e.Pos), e.Got, plural(e.Got, "value"))
}

// ReservedNameError reports an attempt to bind a keyword, or to evaluate a
// keyword that is reserved but has no operator behind it.
type ReservedNameError struct {
	Name      string
	Pos       Pos
	Evaluated bool
}

func (e *ReservedNameError) Error() string {
	if e.Evaluated {
		return fmt.Sprintf("reserved name error%s: '%s' is reserved and has no operator semantics", at(e.Pos), e.Name)
	}
	return fmt.Sprintf("reserved name error%s: '%s' is a keyword and cannot be bound", at(e.Pos), e.Name)
}

// ArithmeticError reports an undefined arithmetic result.
type ArithmeticError struct {
	Op  string
	Pos Pos
	Msg string
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("arithmetic error%s: '%s': %s", at(e.Pos), e.Op, e.Msg)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
