package postlisp

import (
	"strings"
	"testing"
)

func TestOperators(t *testing.T) {
	for i, tt := range []struct {
		input string
		want  string
	}{
		{input: "(1 2 +)", want: "(3)"},
		{input: "(5 +)", want: "(5)"},
		{input: "(-1 -2 +)", want: "(-3)"},
		{input: "(4 2 -)", want: "(2)"},
		{input: "(2 4 -)", want: "(-2)"},
		{input: "(2 3 4 *)", want: "(24)"},
		{input: "(7 2 /)", want: "(3)"},
		{input: "(-7 2 /)", want: "(-3)"},
		{input: "(1 2 <)", want: "(True)"},
		{input: "(2 1 <)", want: "(False)"},
		{input: "(2 2 <)", want: "(False)"},
		{input: "(2 2 <=)", want: "(True)"},
		{input: "(3 2 >)", want: "(True)"},
		{input: "(2 3 >=)", want: "(False)"},
		{input: "(3 3 ==)", want: "(True)"},
		{input: "(True False and)", want: "(False)"},
		{input: "(True True and)", want: "(True)"},
		{input: "(True False or)", want: "(True)"},
		{input: "(False not)", want: "(True)"},
		{input: "(True 1 2 if)", want: "(1)"},
		{input: "(False 1 2 if)", want: "(2)"},
		{input: "(False x True if)", want: "(True)"},
		{input: "((-1 1 <) 0 False if)", want: "(0)"},
		{input: "((1 -1 <) 0 False if)", want: "(False)"},
		{input: "(1 2 + 3 +)", want: "(6)"},
		{input: "(1 2 - 3 +)", want: "(2)"},
		{input: "((1 2 +) (10 4 -) *)", want: "(18)"},
		{input: "(x 5 define)", want: "(5)"},
	} {
		values, err := RunProgram(tt.input, NewEnv())
		if err != nil {
			t.Errorf("%d) %s: eval error %v", i, tt.input, err)
			continue
		}
		if got := Render(values); got != tt.want {
			t.Errorf("%d) %s: got %s want %s", i, tt.input, got, tt.want)
		}
	}
}

func TestWholeStackArity(t *testing.T) {
	for i, input := range []string{
		"(4 2 12 -)",
		"(9 1 2 <)",
		"(True True True and)",
		"(True 1 if)",
		"(True 1 2 3 if)",
		"(x y 1 define)",
		"(1 2 3 /)",
		"(True False not)",
	} {
		_, err := RunProgram(input, NewEnv())
		if _, ok := err.(*ArityError); !ok {
			t.Errorf("%d) %s: got %v want ArityError", i, input, err)
		}
	}
}

func TestDefine(t *testing.T) {
	l := New()
	for i, tt := range []struct {
		input string
		want  string
	}{
		{input: "(a True define)", want: "(True)"},
		{input: "(a a and)", want: "(True)"},
		{input: "(b a define)", want: "(True)"},
		{input: "(c (2 3 +) define)", want: "(5)"},
		{input: "(c 1 +)", want: "(6)"},
		{input: "(p q define)", want: "(q)"},
		{input: "(p)", want: "(q)"},
		{input: "(q 1 define)", want: "(1)"},
		{input: "(p)", want: "(q)"},
		{input: "((d 4 define) d +)", want: "(8)"},
	} {
		values, err := l.Run(tt.input)
		if err != nil {
			t.Errorf("%d) %s: eval error %v", i, tt.input, err)
			continue
		}
		if got := Render(values); got != tt.want {
			t.Errorf("%d) %s: got %s want %s", i, tt.input, got, tt.want)
		}
	}
}

func TestBindingKeywordsFails(t *testing.T) {
	for _, keyword := range []string{"begin", "define", "+", "-", "<", "and", "if"} {
		for _, value := range []string{"True", "1", "(1 2 +)", "x"} {
			input := "(" + keyword + " " + value + " define)"
			l := New()
			_, err := l.Run(input)
			if err == nil {
				t.Errorf("%s: expected error", input)
				continue
			}
			switch err.(type) {
			case *ReservedNameError, *ArityError:
			default:
				t.Errorf("%s: got %T %v", input, err, err)
			}
			if !strings.HasPrefix(RenderError(err), "Error") {
				t.Errorf("%s: got %q", input, RenderError(err))
			}
			if l.Env.Len() != 0 {
				t.Errorf("%s: env changed: %v", input, l.Env.Names())
			}
		}
	}
}

func TestReductionInsideOperators(t *testing.T) {
	for i, input := range []string{
		"((1 2) +)",
		"(() 1 +)",
		"(((1 2)) 1 +)",
		"((a b) c define)",
	} {
		_, err := RunProgram(input, NewEnv())
		if _, ok := err.(*ReductionError); !ok {
			t.Errorf("%d) %s: got %v want ReductionError", i, input, err)
		}
	}
}
