package literal

import (
	"reflect"
	"testing"

	"github.com/nguyenhuy0905/rare/lexer"
)

func TestExtractSingleLiteral(t *testing.T) {
	toks, err := lexer.Scan("cat")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	lits, ok := Extract(toks)
	if !ok {
		t.Fatal("Extract() ok = false, want true")
	}
	if want := []string{"cat"}; !reflect.DeepEqual(lits, want) {
		t.Errorf("Extract() = %v, want %v", lits, want)
	}
}

func TestExtractAlternation(t *testing.T) {
	toks, err := lexer.Scan("cat|dog|fish")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	lits, ok := Extract(toks)
	if !ok {
		t.Fatal("Extract() ok = false, want true")
	}
	want := []string{"cat", "dog", "fish"}
	if !reflect.DeepEqual(lits, want) {
		t.Errorf("Extract() = %v, want %v", lits, want)
	}
}

func TestExtractRejectsQuantifier(t *testing.T) {
	toks, err := lexer.Scan("ab*")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if _, ok := Extract(toks); ok {
		t.Error("Extract() ok = true, want false for a pattern with a quantifier")
	}
}

func TestExtractRejectsDot(t *testing.T) {
	toks, err := lexer.Scan("a.c")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if _, ok := Extract(toks); ok {
		t.Error("Extract() ok = true, want false for a pattern with '.'")
	}
}

func TestExtractRejectsAnchors(t *testing.T) {
	toks, err := lexer.Scan("^cat$")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if _, ok := Extract(toks); ok {
		t.Error("Extract() ok = true, want false for an anchored pattern")
	}
}

func TestExtractRejectsEmptyBranch(t *testing.T) {
	toks, err := lexer.Scan("cat|")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if _, ok := Extract(toks); ok {
		t.Error("Extract() ok = true, want false for an empty alternation branch")
	}
}

func TestExtractEmptyPattern(t *testing.T) {
	toks, err := lexer.Scan("")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if _, ok := Extract(toks); ok {
		t.Error("Extract() ok = true, want false for the empty pattern")
	}
}
