// Package prefilter wraps an Aho-Corasick automaton over a pattern's
// literal alternatives, so a caller that scans many lines can reject the
// overwhelming majority of non-matching ones without ever running the
// NFA simulator.
package prefilter

import "github.com/coregx/ahocorasick"

// Prefilter reports whether a line can possibly contain a match, using
// only the pattern's literal alternatives. A negative answer is
// authoritative (no further matching is needed); a positive answer is
// only a candidate signal - the caller must still run the real matcher.
type Prefilter struct {
	automaton *ahocorasick.Automaton
}

// Build constructs a Prefilter over literals. Returns ok=false if
// literals is empty or the automaton fails to build, in which case the
// caller should skip prefiltering entirely and always run the full
// matcher.
func Build(literals []string) (*Prefilter, bool) {
	if len(literals) == 0 {
		return nil, false
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, false
	}

	return &Prefilter{automaton: automaton}, true
}

// MayMatch reports whether any of the prefilter's literals occur in
// line. false means the full pattern cannot match line either.
func (p *Prefilter) MayMatch(line string) bool {
	return p.automaton.IsMatch([]byte(line))
}
