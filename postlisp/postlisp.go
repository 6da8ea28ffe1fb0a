package postlisp

import (
	"log"
	"strings"
)

const Version = "0.1.0"

// Interpreter holds the Environment of one session. Successive calls to Run
// see each other's bindings, also after a failed call.
type Interpreter struct {
	Env   *Env
	trace *log.Logger
}

func New() Interpreter {
	return Interpreter{Env: NewEnv()}
}

// WithTrace returns a copy of the interpreter, sharing its Environment, that
// logs every operator application to l.
func (i Interpreter) WithTrace(l *log.Logger) Interpreter {
	i.trace = l
	return i
}

func (i Interpreter) Run(program string) ([]Value, error) {
	list, err := ParseProgram(program)
	if err != nil {
		return nil, err
	}
	return evaluator{env: i.Env, trace: i.trace}.evalList(list)
}

// RunProgram parses and evaluates program against env.
func RunProgram(program string, env *Env) ([]Value, error) {
	list, err := ParseProgram(program)
	if err != nil {
		return nil, err
	}
	return Evaluate(list, env)
}

// Render formats a result stack as (v1 v2 ...).
func Render(values []Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func RenderError(err error) string {
	return "Error: " + err.Error()
}
