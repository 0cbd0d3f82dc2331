// Package rare implements a small Thompson-construction regular
// expression engine: a pattern is scanned into an infix token list,
// rewritten to postfix by the shunting-yard algorithm, compiled into an
// NFA by Thompson construction with in-place fragment merging, and
// matched by a set-based (Thompson-style) simulator that tracks every
// active state in lockstep rather than backtracking.
//
// Engine is a thin wrapper over the compiled NFA and its simulator, with
// Compile/MustCompile/CompileWithConfig/DefaultConfig as the only public
// entry points. It does not expose submatch capture or byte-slice APIs,
// since capture groups and bounded/lazy quantifiers are out of scope.
package rare

import (
	"github.com/nguyenhuy0905/rare/internal/literal"
	"github.com/nguyenhuy0905/rare/internal/prefilter"
	"github.com/nguyenhuy0905/rare/lexer"
	"github.com/nguyenhuy0905/rare/nfa"
	"github.com/nguyenhuy0905/rare/postfix"
)

// Engine is a compiled regular expression: a pattern's NFA plus its
// simulator, ready to match against text.
//
// An Engine is safe for concurrent use by multiple goroutines; matching
// allocates its own scratch state per call and never mutates the
// compiled NFA.
type Engine struct {
	pattern   string
	automaton *nfa.NFA
	sim       *nfa.Simulator
	prefilter *prefilter.Prefilter
}

// Compile compiles pattern into an Engine using DefaultConfig.
//
// Returns a *token.SyntaxError if pattern is malformed.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics if it fails. Intended for
// patterns known to be valid at init time.
func MustCompile(pattern string) *Engine {
	e, err := Compile(pattern)
	if err != nil {
		panic("rare: Compile(" + pattern + "): " + err.Error())
	}
	return e
}

// CompileWithConfig compiles pattern into an Engine, honoring the
// prefilter-related fields of config.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	infix, err := lexer.Scan(pattern)
	if err != nil {
		return nil, err
	}

	post, err := postfix.Convert(infix)
	if err != nil {
		return nil, err
	}

	automaton, err := nfa.Build(post)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		pattern:   pattern,
		automaton: automaton,
		sim:       nfa.NewSimulator(automaton),
	}

	if config.EnablePrefilter {
		if lits, ok := literal.Extract(infix); ok {
			// Every branch must reach the automaton: a branch left out
			// of it could match a line the prefilter rejects.
			if kept := filterShort(lits, config.MinPrefilterLiteralLen); len(kept) == len(lits) {
				if pf, ok := prefilter.Build(kept); ok {
					e.prefilter = pf
				}
			}
		}
	}

	return e, nil
}

// filterShort drops literals shorter than minLen, returning an empty
// slice when every literal is dropped.
func filterShort(lits []string, minLen int) []string {
	kept := make([]string, 0, len(lits))
	for _, l := range lits {
		if len(l) >= minLen {
			kept = append(kept, l)
		}
	}
	return kept
}

// IsMatch reports whether text contains any substring matched by the
// pattern.
func (e *Engine) IsMatch(text string) bool {
	return e.sim.IsMatch(text)
}

// FindAllIndex returns the index pairs of every non-overlapping match in
// text, in left-to-right order, as [start, end) rune-index pairs. Returns
// nil if there is no match.
func (e *Engine) FindAllIndex(text string) [][2]int {
	all := e.sim.FindAllIndex(text)
	if len(all) == 0 {
		return nil
	}
	return all
}

// FindIndex returns the start and end rune-index of the first match in
// text. ok is false if there is no match.
func (e *Engine) FindIndex(text string) (start, end int, ok bool) {
	return e.sim.FindIndex(text)
}

// Prefilter returns the Aho-Corasick prefilter built for this pattern,
// or nil if prefiltering was disabled, the pattern did not reduce to a
// literal alternation, or some literal branch was shorter than
// Config.MinPrefilterLiteralLen. A caller scanning many lines (like
// cmd/rare) can use a non-nil Prefilter to skip lines that cannot
// possibly match before running the full simulator.
func (e *Engine) Prefilter() *prefilter.Prefilter {
	return e.prefilter
}

// String returns the source pattern text used to compile the Engine.
func (e *Engine) String() string {
	return e.pattern
}
