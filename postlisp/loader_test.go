package postlisp

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestRunFile(t *testing.T) {
	for i, tt := range []struct {
		filename string
		want     string
	}{
		{filename: "testdata/test3.slp", want: "(2)"},
		{filename: "testdata/test4.slp", want: "(-1)"},
		{filename: "testdata/test_crlf.slp", want: "(-1)"},
	} {
		values, err := New().RunFile(tt.filename)
		if err != nil {
			t.Errorf("%d) %s: %v", i, tt.filename, err)
			continue
		}
		if got := Render(values); got != tt.want {
			t.Errorf("%d) %s: got %s want %s", i, tt.filename, got, tt.want)
		}
	}
}

func TestLineEndingsParseIdentically(t *testing.T) {
	lf, err := ParseFile("testdata/test4.slp")
	if err != nil {
		t.Fatal(err)
	}
	crlf, err := ParseFile("testdata/test_crlf.slp")
	if err != nil {
		t.Fatal(err)
	}
	if lf.String() != crlf.String() {
		t.Errorf("got %s and %s", lf, crlf)
	}
	program := "(a -1 define)\n"
	for i, input := range []string{
		"((a\n1\n<)\n2\n3\nif)",
		"((a\r\n1\r\n<)\r\n2\r\n3\r\nif)",
	} {
		l := New()
		if err := l.Load(program); err != nil {
			t.Fatal(err)
		}
		values, err := l.Run(input)
		if err != nil {
			t.Errorf("%d) eval error %v", i, err)
			continue
		}
		if got := Render(values); got != "(2)" {
			t.Errorf("%d) got %s want (2)", i, got)
		}
	}
}

func TestRunFileMissing(t *testing.T) {
	_, err := New().RunFile("/there/is/no/such/file")
	if err == nil {
		t.Fatal("expected error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("got %T want *ParseError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error does not wrap fs.ErrNotExist: %v", err)
	}
	if got := RenderError(err); !strings.HasPrefix(got, "Error: parse error: cannot read /there/is/no/such/file") {
		t.Errorf("got %q", got)
	}
}

func TestLoader(t *testing.T) {
	l := New()
	if err := l.Load("(r 10 define)", "(s (r r +) define)"); err != nil {
		t.Fatal(err)
	}
	values, err := l.Run("(r s +)")
	if err != nil {
		t.Fatal(err)
	}
	if got := Render(values); got != "(30)" {
		t.Errorf("got %s want (30)", got)
	}
	if err := l.Load("(t 1 define)", "(1 2 3 -)", "(u 2 define)"); err == nil {
		t.Error("expected load to stop at the failing program")
	}
	if _, ok := l.Env.Lookup("t"); !ok {
		t.Error("binding before the failure was lost")
	}
	if _, ok := l.Env.Lookup("u"); ok {
		t.Error("program after the failure was run")
	}
}
