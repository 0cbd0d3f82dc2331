package nfa

import (
	"testing"

	"github.com/nguyenhuy0905/rare/lexer"
	"github.com/nguyenhuy0905/rare/postfix"
	"github.com/nguyenhuy0905/rare/token"
)

func buildPattern(t *testing.T, pattern string) *NFA {
	t.Helper()
	toks, err := lexer.Scan(pattern)
	if err != nil {
		t.Fatalf("Scan(%q) error = %v", pattern, err)
	}
	post, err := postfix.Convert(toks)
	if err != nil {
		t.Fatalf("Convert(%q) error = %v", pattern, err)
	}
	nfa, err := Build(post)
	if err != nil {
		t.Fatalf("Build(%q) error = %v", pattern, err)
	}
	return nfa
}

func TestBuildIndexStability(t *testing.T) {
	nfa := buildPattern(t, "ab|c*")
	if int(nfa.End) >= len(nfa.States) {
		t.Fatalf("End %d out of range for %d states", nfa.End, len(nfa.States))
	}
	for i, st := range nfa.States {
		for _, e := range st.Edges {
			if int(e) < 0 || int(e) >= len(nfa.States) {
				t.Errorf("state %d has out-of-range edge %d", i, e)
			}
		}
	}
}

func TestBuildEmptyPattern(t *testing.T) {
	nfa := buildPattern(t, "")
	if len(nfa.States) != 1 || nfa.States[0].Token.Kind != token.Empty {
		t.Fatalf("empty pattern should build a single Empty state, got %v", nfa)
	}
}

func TestBuildSingleChar(t *testing.T) {
	nfa := buildPattern(t, "a")
	if nfa.States[0].Token.Kind != token.Char || nfa.States[0].Token.Char != 'a' {
		t.Fatalf("expected single Char state, got %v", nfa.States[0])
	}
}

func TestBuildBeamWithMissingOperand(t *testing.T) {
	// Only one atom reaches the postfix stream's Beam operator, so the
	// missing side falls back to a singleton Empty NFA (ε|x).
	nfa := buildPattern(t, "a|")
	if len(nfa.States) == 0 {
		t.Fatal("expected non-empty NFA")
	}
}
