// Package repl runs an interactive postlisp session. One Environment lives
// for the whole session; failed inputs are reported and the session goes on.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/deosjr/postlisp/postlisp"
)

const helpText = `commands:
  :env     list bindings
  :help    show this text
  :quit    exit (so does Ctrl+D)
`

// LineReader supplies input lines. *liner.State implements it.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

type historian interface {
	AppendHistory(item string)
}

type REPL struct {
	interp postlisp.Interpreter
	cfg    Config
	in     LineReader
	out    io.Writer
	errOut io.Writer
}

func New(interp postlisp.Interpreter, cfg Config, in LineReader, out, errOut io.Writer) *REPL {
	return &REPL{interp: interp, cfg: cfg, in: in, out: out, errOut: errOut}
}

// Start runs a session on the terminal with line editing and history.
func Start(interp postlisp.Interpreter, cfg Config, out, errOut io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetMultiLineMode(cfg.MultiLine)

	if path := cfg.HistoryPath(); path != "" {
		if f, err := os.Open(path); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(path); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}
	return New(interp, cfg, ln, out, errOut).Run()
}

// Run reads and evaluates inputs until end of input or :quit.
func (r *REPL) Run() error {
	for {
		input, ok, err := r.read()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(r.out)
			return nil
		}
		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if quit := r.command(trimmed); quit {
				return nil
			}
			continue
		}
		if h, ok := r.in.(historian); ok {
			h.AppendHistory(strings.ReplaceAll(input, "\n", " "))
		}
		values, err := r.interp.Run(input)
		if err != nil {
			fmt.Fprintln(r.errOut, r.red(postlisp.RenderError(err)))
			continue
		}
		fmt.Fprintln(r.out, postlisp.Render(values))
	}
}

// read collects lines until they form a program that is not merely
// unfinished. The boolean is false at end of input.
func (r *REPL) read() (string, bool, error) {
	var b strings.Builder
	for {
		prompt := r.cfg.Prompt
		if b.Len() > 0 {
			prompt = r.cfg.ContinuationPrompt
		}
		line, err := r.in.Prompt(prompt)
		switch {
		case errors.Is(err, io.EOF):
			if b.Len() > 0 {
				return b.String(), true, nil
			}
			return "", false, nil
		case errors.Is(err, liner.ErrPromptAborted):
			return "", true, nil
		case err != nil:
			return "", false, err
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" || strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true, nil
		}
		_, perr := postlisp.ParseProgram(src)
		var parseErr *postlisp.ParseError
		if errors.As(perr, &parseErr) && parseErr.Incomplete {
			continue
		}
		return src, true, nil
	}
}

func (r *REPL) command(cmd string) (quit bool) {
	switch strings.ToLower(cmd) {
	case ":quit", ":q", ":exit":
		return true
	case ":env":
		for _, name := range r.interp.Env.Names() {
			v, _ := r.interp.Env.Lookup(name)
			fmt.Fprintf(r.out, "%s = %s\n", name, v)
		}
	case ":help":
		fmt.Fprint(r.out, helpText)
	default:
		fmt.Fprintf(r.errOut, "unknown command %s. Type :help for a list.\n", cmd)
	}
	return false
}

func (r *REPL) red(s string) string {
	if !r.cfg.Color {
		return s
	}
	return "\x1b[31m" + s + "\x1b[0m"
}
