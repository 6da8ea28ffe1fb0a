package postlisp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseProgram tokenizes and parses a complete program.
func ParseProgram(program string) (List, error) {
	tokens, err := Tokenize(program)
	if err != nil {
		return List{}, err
	}
	return Parse(tokens)
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Tokenize splits program text into tokens. Line endings are normalized
// first, so \n and \r\n sources produce identical tokens and positions.
func Tokenize(program string) ([]Token, error) {
	l := &lexer{program: newlines.Replace(program), pos: Pos{Line: 1, Col: 1}}
	tokens := []Token{}
	for {
		text, start, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		if text == "" {
			return tokens, nil
		}
		tok, err := classify(text, start)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

type lexer struct {
	program string
	pos     Pos
}

func (l *lexer) advance(r rune, size int) {
	l.program = l.program[size:]
	if r == '\n' {
		l.pos.Line++
		l.pos.Col = 1
		return
	}
	l.pos.Col++
}

// skip consumes whitespace and ; comments up to the next token.
func (l *lexer) skip() {
	for len(l.program) > 0 {
		r, size := utf8.DecodeRuneInString(l.program)
		switch {
		case r == ';':
			for len(l.program) > 0 {
				r, size = utf8.DecodeRuneInString(l.program)
				if r == '\n' {
					break
				}
				l.advance(r, size)
			}
		case unicode.IsSpace(r):
			l.advance(r, size)
		default:
			return
		}
	}
}

// nextToken returns the text of the next token and where it starts, or an
// empty string at the end of input.
func (l *lexer) nextToken() (string, Pos, error) {
	l.skip()
	start := l.pos
	var token []byte
	for len(l.program) > 0 {
		r, size := utf8.DecodeRuneInString(l.program)
		if r == '(' || r == ')' {
			if len(token) == 0 {
				l.advance(r, size)
				return string(r), start, nil
			}
			break
		}
		if unicode.IsSpace(r) || r == ';' {
			break
		}
		switch {
		case r == '"':
			return "", start, &LexError{Pos: l.pos, Msg: `unexpected '"': string literals are not supported`}
		case r == utf8.RuneError && size == 1:
			return "", start, &LexError{Pos: l.pos, Msg: "invalid UTF-8 encoding"}
		case !unicode.IsPrint(r):
			return "", start, &LexError{Pos: l.pos, Msg: fmt.Sprintf("unexpected character %q", r)}
		}
		l.advance(r, size)
		token = utf8.AppendRune(token, r)
	}
	return string(token), start, nil
}

func classify(text string, pos Pos) (Token, error) {
	tok := Token{Text: text, Pos: pos}
	switch {
	case text == "(":
		tok.Kind = OpenParen
	case text == ")":
		tok.Kind = CloseParen
	case text == "True" || text == "False":
		tok.Kind = BooleanToken
		tok.Bool = text == "True"
	case IsKeyword(text):
		tok.Kind = OperatorToken
	case looksNumeric(text):
		n, err := strconv.ParseInt(text, 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			return Token{}, &LexError{Pos: pos, Msg: fmt.Sprintf("number %s out of range", text)}
		}
		if err != nil {
			return Token{}, &LexError{Pos: pos, Msg: fmt.Sprintf("malformed number %q", text)}
		}
		tok.Kind = NumberToken
		tok.Num = n
	default:
		tok.Kind = SymbolToken
	}
	return tok, nil
}

// looksNumeric reports whether text starts like an integer literal: a digit,
// or a minus sign directly followed by a digit.
func looksNumeric(text string) bool {
	if strings.HasPrefix(text, "-") {
		text = text[1:]
	}
	return len(text) > 0 && text[0] >= '0' && text[0] <= '9'
}

// Parse builds the single top-level list of a program.
func Parse(tokens []Token) (List, error) {
	if len(tokens) == 0 {
		return List{}, &ParseError{Msg: "empty input"}
	}
	if tokens[0].Kind != OpenParen {
		return List{}, &ParseError{Pos: tokens[0].Pos, Msg: fmt.Sprintf("program must be a parenthesized list, found %s %q", tokens[0].Kind, tokens[0].Text)}
	}
	p := &parser{tokens: tokens}
	list, err := p.parseList()
	if err != nil {
		return List{}, err
	}
	if p.i < len(tokens) {
		extra := tokens[p.i]
		return List{}, &ParseError{Pos: extra.Pos, Msg: fmt.Sprintf("unexpected %q after top-level list: a program is exactly one list", extra.Text)}
	}
	return list, nil
}

type parser struct {
	tokens []Token
	i      int
}

// parseList expects p.tokens[p.i] to be an open paren and consumes up to and
// including its matching close paren.
func (p *parser) parseList() (List, error) {
	open := p.tokens[p.i]
	p.i++
	list := List{Items: []Expression{}, Pos: open.Pos}
	for {
		if p.i >= len(p.tokens) {
			return List{}, &ParseError{Pos: open.Pos, Msg: "missing ')' for list opened here", Incomplete: true}
		}
		tok := p.tokens[p.i]
		switch tok.Kind {
		case CloseParen:
			p.i++
			return list, nil
		case OpenParen:
			child, err := p.parseList()
			if err != nil {
				return List{}, err
			}
			list.Items = append(list.Items, child)
		default:
			list.Items = append(list.Items, Atom{Token: tok})
			p.i++
		}
	}
}
