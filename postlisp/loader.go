package postlisp

import (
	"os"
)

// ReadFile slurps a program from disk. Failing to read it is reported as a
// ParseError so that file mode has a single error path.
func ReadFile(filename string) (string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", &ParseError{Msg: "cannot read " + filename, Err: err}
	}
	return string(b), nil
}

func ParseFile(filename string) (List, error) {
	program, err := ReadFile(filename)
	if err != nil {
		return List{}, err
	}
	return ParseProgram(program)
}

func (i Interpreter) RunFile(filename string) ([]Value, error) {
	program, err := ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return i.Run(program)
}

// Load runs each program for its bindings, discarding results.
func (i Interpreter) Load(programs ...string) error {
	for _, p := range programs {
		if _, err := i.Run(p); err != nil {
			return err
		}
	}
	return nil
}
