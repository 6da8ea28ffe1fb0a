package postlisp

import (
	"sort"
)

// Env maps names to values for one session. Bindings are only ever added or
// overwritten.
type Env struct {
	dict map[string]Value
}

func NewEnv() *Env {
	return &Env{dict: map[string]Value{}}
}

// Lookup returns the value bound to name. Keywords are never bound.
func (e *Env) Lookup(name string) (Value, bool) {
	if IsKeyword(name) {
		return Value{}, false
	}
	v, ok := e.dict[name]
	return v, ok
}

func (e *Env) Bind(name string, v Value) error {
	if IsKeyword(name) || name == "True" || name == "False" {
		return &ReservedNameError{Name: name}
	}
	e.dict[name] = v
	return nil
}

// Names returns all bound names in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.dict))
	for k := range e.dict {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (e *Env) Len() int {
	return len(e.dict)
}
