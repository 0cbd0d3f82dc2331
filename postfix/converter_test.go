package postfix

import (
	"testing"

	"github.com/nguyenhuy0905/rare/lexer"
	"github.com/nguyenhuy0905/rare/token"
)

func convertPattern(t *testing.T, pattern string) []token.Token {
	t.Helper()
	toks, err := lexer.Scan(pattern)
	if err != nil {
		t.Fatalf("Scan(%q) error = %v", pattern, err)
	}
	post, err := Convert(toks)
	if err != nil {
		t.Fatalf("Convert(%q) error = %v", pattern, err)
	}
	return post
}

func kindString(toks []token.Token) string {
	s := ""
	for _, tk := range toks {
		switch tk.Kind {
		case token.Char:
			s += string(tk.Char)
		case token.Concat:
			s += "&"
		case token.Beam:
			s += "|"
		case token.Star:
			s += "*"
		case token.Plus:
			s += "+"
		case token.Question:
			s += "?"
		case token.Hat:
			s += "^"
		case token.Dollar:
			s += "$"
		case token.Dot:
			s += "."
		}
	}
	return s
}

func TestConvertConcat(t *testing.T) {
	post := convertPattern(t, "ab")
	if got := kindString(post); got != "ab&" {
		t.Errorf("postfix = %q, want %q", got, "ab&")
	}
}

func TestConvertAlternationPrecedesConcat(t *testing.T) {
	post := convertPattern(t, "ab|c")
	if got := kindString(post); got != "ab&c|" {
		t.Errorf("postfix = %q, want %q", got, "ab&c|")
	}
}

func TestConvertGroupOverridesPrecedence(t *testing.T) {
	post := convertPattern(t, "a(b|c)")
	if got := kindString(post); got != "abc|&" {
		t.Errorf("postfix = %q, want %q", got, "abc|&")
	}
}

func TestConvertStarBindsTighter(t *testing.T) {
	post := convertPattern(t, "ab*")
	if got := kindString(post); got != "ab*&" {
		t.Errorf("postfix = %q, want %q", got, "ab*&")
	}
}

func TestConvertUnmatchedOpenParen(t *testing.T) {
	toks, _ := lexer.Scan("(a")
	if _, err := Convert(toks); err == nil {
		t.Fatal("Convert() should fail on unmatched '('")
	}
}

func TestConvertUnmatchedCloseParen(t *testing.T) {
	toks, _ := lexer.Scan("a)")
	if _, err := Convert(toks); err == nil {
		t.Fatal("Convert() should fail on unmatched ')'")
	}
}

func TestConvertDollarMisplacedFails(t *testing.T) {
	toks, err := lexer.Scan("a$b")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if _, err := Convert(toks); err == nil {
		t.Fatal(`Convert("a$b") should fail: '$' not at end of alternative`)
	}
}

func TestConvertDollarBeforeParenOK(t *testing.T) {
	toks, err := lexer.Scan("(a$)")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if _, err := Convert(toks); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
}

func TestConvertDollarBeforeBeamOK(t *testing.T) {
	toks, err := lexer.Scan("a$|b")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if _, err := Convert(toks); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
}
