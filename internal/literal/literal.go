// Package literal extracts plain-string alternatives from a scanned
// pattern for prefilter construction, working directly over the
// lexer's infix token stream (there is no syntax tree stage here): it
// only recognizes patterns that are nothing but a top-level alternation
// of plain-character concatenations, since that is the only shape for
// which literal prefiltering is sound without re-deriving the full NFA
// semantics.
package literal

import "github.com/nguyenhuy0905/rare/token"

// Extract reports the literal branches of tokens if the whole pattern is
// a bare literal or a top-level alternation of bare literals - no Dot,
// no quantifiers, no groups, no anchors anywhere. ok is false if the
// pattern uses any construct that could make a branch match something
// other than its exact literal text.
func Extract(tokens []token.Token) (literals []string, ok bool) {
	if len(tokens) == 0 {
		return nil, false
	}

	var branches [][]rune
	var current []rune

	for _, tok := range tokens {
		switch tok.Kind {
		case token.Char:
			current = append(current, tok.Char)
		case token.Concat:
			// Structural only; the lexer already guarantees operands on
			// both sides.
		case token.Beam:
			branches = append(branches, current)
			current = nil
		default:
			// Dot, quantifiers, parens, and anchors all mean some branch
			// can match more than its literal text.
			return nil, false
		}
	}
	branches = append(branches, current)

	literals = make([]string, 0, len(branches))
	for _, b := range branches {
		if len(b) == 0 {
			return nil, false
		}
		literals = append(literals, string(b))
	}
	return literals, true
}
