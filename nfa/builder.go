package nfa

import (
	"github.com/nguyenhuy0905/rare/token"
)

// emptyToken constructs an internal Empty marker token. Position is not
// meaningful for synthetic states, so it is always 0.
func emptyToken() token.Token {
	return token.New(token.Empty, 0)
}

// Build walks a postfix token stream (as produced by postfix.Convert)
// and constructs the single Nfa it represents, using Thompson
// construction with in-place merging: atoms push one-state fragments,
// operators pop 1 or 2 fragments off the operand stack and push the
// spliced result.
//
// Returns a *token.SyntaxError if the postfix stream does not carry
// enough operands for an operator. An empty group leaves no operand
// behind, so patterns such as "a()" or "()*" are rejected here.
func Build(postfix []token.Token) (*NFA, error) {
	b := &builder{}

	for _, tok := range postfix {
		if !tok.Kind.IsOperator() {
			b.push(newSingleton(tok))
			continue
		}
		if err := b.apply(tok); err != nil {
			return nil, err
		}
	}

	var result *NFA
	switch len(b.stack) {
	case 0:
		// Empty pattern: matches at every position.
		result = newSingleton(emptyToken())
	case 1:
		result = b.stack[0]
	default:
		// Multiple loose fragments with no operator joining them would
		// indicate a malformed postfix stream; a correctly converted one
		// always reduces to exactly one fragment.
		result = b.stack[0]
		for _, frag := range b.stack[1:] {
			result = merge(result, frag)
		}
	}

	debugAssert(result.End >= 0 && int(result.End) < len(result.States), "End out of range after Build")
	return result, nil
}

// builder owns the operand stack of partial NFAs accumulated while
// walking the postfix stream.
type builder struct {
	stack []*NFA
}

func (b *builder) push(n *NFA) {
	b.stack = append(b.stack, n)
}

func (b *builder) pop() (*NFA, bool) {
	if len(b.stack) == 0 {
		return nil, false
	}
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return n, true
}

func (b *builder) apply(tok token.Token) error {
	switch tok.Kind {
	case token.Concat:
		return b.applyConcat(tok)
	case token.Beam:
		return b.applyBeam(tok)
	case token.Star:
		return b.applyRepeat(tok, true, true)
	case token.Plus:
		return b.applyRepeat(tok, true, false)
	case token.Question:
		return b.applyRepeat(tok, false, true)
	default:
		return token.NewSyntaxError(tok.Pos, "internal error: unexpected operator %s in postfix stream", tok.Kind)
	}
}

// applyConcat pops Y then X and pushes merge(X, Y).
func (b *builder) applyConcat(tok token.Token) error {
	y, ok := b.pop()
	if !ok {
		return token.NewSyntaxErrorWrap(tok.Pos, token.ErrMissingOperand, "nothing to concatenate")
	}
	x, ok := b.pop()
	if !ok {
		return token.NewSyntaxErrorWrap(tok.Pos, token.ErrMissingOperand, "insufficient operands to concatenate")
	}
	b.push(merge(x, y))
	return nil
}

// applyBeam implements X | Y: pop Y, then X (or a singleton Empty NFA if
// X is absent, so that "|x" behaves as "ε|x"). Build a fresh Empty
// wrapper, merge X into it, rewind the wrapper's end back to its entry
// so the second merge also originates from the entry, merge Y in, then
// append a shared Empty sink and link both old accepts to it.
func (b *builder) applyBeam(tok token.Token) error {
	y, ok := b.pop()
	if !ok {
		return token.NewSyntaxErrorWrap(tok.Pos, token.ErrMissingOperand, "nothing to alternate")
	}
	x, ok := b.pop()
	if !ok {
		x = newSingleton(emptyToken())
	}

	w := newSingleton(emptyToken())
	w = merge(w, x)
	firstEnd := w.End
	w.End = 0
	w = merge(w, y)

	w = merge(w, newSingleton(emptyToken()))
	sink := w.End
	w.addEdge(firstEnd, sink)

	b.push(w)
	return nil
}

// applyRepeat implements *, +, and ? over a single popped operand,
// according to withLoop (accept -> entry, repeatable) and withSkip
// (entry -> sink, optional). Star sets both, Plus sets only withLoop,
// Question sets only withSkip.
func (b *builder) applyRepeat(tok token.Token, withLoop, withSkip bool) error {
	x, ok := b.pop()
	if !ok {
		return token.NewSyntaxErrorWrap(tok.Pos, token.ErrMissingOperand, "quantifier %s has no preceding value to repeat", tok.Kind)
	}

	w := newSingleton(emptyToken())
	w = merge(w, x)
	accept := w.End

	if withLoop {
		w.addEdge(accept, 0)
	}

	w = merge(w, newSingleton(emptyToken()))
	sink := w.End

	if withSkip {
		w.addEdge(0, sink)
	}

	b.push(w)
	return nil
}
