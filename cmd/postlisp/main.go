package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/deosjr/postlisp/postlisp"
	"github.com/deosjr/postlisp/repl"
)

const usage = `usage:
  postlisp                 start an interactive session
  postlisp -e EXPRESSION   evaluate one program and exit
  postlisp FILE            evaluate the program in FILE and exit

flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code: 0 on success, 1 when the program or
// session fails, 2 on bad usage.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("postlisp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	expr := fs.String("e", "", "evaluate `expression` and exit")
	configPath := fs.String("config", repl.DefaultConfigPath(), "interactive session config `file`")
	trace := fs.Bool("trace", false, "log every operator application to stderr")
	version := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	exprSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "e" {
			exprSet = true
		}
	})

	l := postlisp.New()
	if *trace {
		l = l.WithTrace(log.New(stderr, "trace: ", 0))
	}

	switch {
	case *version:
		fmt.Fprintln(stdout, "postlisp", postlisp.Version)
		return 0
	case exprSet && fs.NArg() > 0, fs.NArg() > 1:
		fs.Usage()
		return 2
	case exprSet:
		return report(stdout, stderr)(l.Run(*expr))
	case fs.NArg() == 1:
		return report(stdout, stderr)(l.RunFile(fs.Arg(0)))
	}

	cfg, err := repl.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, postlisp.RenderError(err))
		return 1
	}
	if err := repl.Start(l, cfg, stdout, stderr); err != nil {
		fmt.Fprintln(stderr, postlisp.RenderError(err))
		return 1
	}
	return 0
}

func report(stdout, stderr io.Writer) func([]postlisp.Value, error) int {
	return func(values []postlisp.Value, err error) int {
		if err != nil {
			fmt.Fprintln(stderr, postlisp.RenderError(err))
			return 1
		}
		fmt.Fprintln(stdout, postlisp.Render(values))
		return 0
	}
}
