// Package nfa implements Thompson-construction NFA compilation and a
// set-based simulator over the resulting automaton.
//
// An edge is a bare destination index; the transition condition lives
// on the *destination* state's token, not on the edge itself. merge
// appends states and rewrites only the appended region's edge indices by
// a constant offset, which is what makes in-place splicing of
// sub-automata an O(|appended|) operation.
package nfa

import (
	"fmt"

	"github.com/nguyenhuy0905/rare/token"
)

// StateID indexes a State within an NFA's state slice.
type StateID int

// State is one node of the automaton: the token that labels it (and
// therefore governs how edges *into* it are interpreted during
// simulation) and the ordered list of states it points to.
type State struct {
	Token token.Token
	Edges []StateID
}

// NFA is a Thompson-constructed automaton: a contiguous slice of states
// with a designated entry (always index 0) and a unique accept state
// (End). Every edge in every state refers to a valid index within the
// same NFA, and once a state is placed at index i, i never changes —
// construction only appends.
type NFA struct {
	States []State
	End    StateID
}

// newSingleton builds a one-state NFA holding tok, with End pointing at
// that single state. This is the fragment shape every atom (and the
// builder's internal Empty markers) start from.
func newSingleton(tok token.Token) *NFA {
	return &NFA{
		States: []State{{Token: tok}},
		End:    0,
	}
}

// State returns a pointer to the state at id for in-place edge mutation.
func (n *NFA) State(id StateID) *State {
	return &n.States[id]
}

// addEdge appends an edge from the state at id to target.
func (n *NFA) addEdge(id, target StateID) {
	n.States[id].Edges = append(n.States[id].Edges, target)
}

// isEmptyToken reports whether the state at id is an internal epsilon
// marker — the condition merge uses to decide whether two fragment
// boundaries can be fused instead of linked.
func (n *NFA) isEmptyToken(id StateID) bool {
	return n.States[id].Token.Kind == token.Empty
}

// merge appends b's states after a's, rewriting every edge index in the
// appended region by +len(a.States), then links a's current accept to
// b's entry. When both the tail of a and the head of b are Empty
// markers, and no edge inside b leads back to b's head, the two are
// fused instead: b's head is dropped and its outgoing edges (after
// offsetting) are forwarded directly onto a's tail, which keeps the
// automaton from accumulating redundant epsilon hops on every
// concatenation. A head that b loops back to is always linked, never
// fused, since its loop would otherwise re-enter a's tail. a is mutated
// and returned; b must not be reused afterward.
func merge(a, b *NFA) *NFA {
	offset := StateID(len(a.States))

	fuse := a.isEmptyToken(a.End) && b.isEmptyToken(0)
	for _, st := range b.States {
		for _, e := range st.Edges {
			if e == 0 {
				fuse = false
			}
		}
	}

	if fuse {
		// Fuse: a's tail absorbs b's head's outgoing edges, then b's
		// remaining states (from index 1) are appended and offset.
		for _, e := range b.States[0].Edges {
			a.addEdge(a.End, e+offset-1)
		}
		rest := b.States[1:]
		for i := range rest {
			for j, e := range rest[i].Edges {
				rest[i].Edges[j] = e + offset - 1
			}
		}
		a.States = append(a.States, rest...)
		a.End = StateID(len(a.States) - 1)
		return a
	}

	for i := range b.States {
		for j, e := range b.States[i].Edges {
			b.States[i].Edges[j] = e + offset
		}
	}
	a.addEdge(a.End, offset)
	a.States = append(a.States, b.States...)
	a.End = StateID(len(a.States) - 1)
	return a
}

// String renders the NFA for debugging.
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, end: %d}", len(n.States), n.End)
}
