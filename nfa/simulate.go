package nfa

import (
	"github.com/nguyenhuy0905/rare/internal/stateset"
	"github.com/nguyenhuy0905/rare/token"
)

// Simulator runs set-based Thompson-style simulation over a compiled Nfa.
// An Nfa is immutable once built, so a single Simulator may be shared
// across goroutines; each call allocates its own scratch sets (see
// matcher) and carries no state between calls.
//
// Because this engine's edges are labeled by their *destination* token
// rather than by the edge itself (see state.go), admitting a candidate
// state always requires checking that state's own token before treating
// it as reached - unlike an edge-labeled NFA, where a state that is
// already a member of the active set never needs to recheck itself.
// admit/enter below exist to capture exactly that distinction: admit
// resolves an unverified candidate; enter assumes verification already
// happened (because the candidate arrived by consuming the previous
// character) and walks straight to its edges.
type Simulator struct {
	nfa *NFA
}

// NewSimulator wraps n for repeated matching.
func NewSimulator(n *NFA) *Simulator {
	return &Simulator{nfa: n}
}

// matcher holds the scratch sets for one top-level Is/FindAll call,
// reused across every position so that stepping does not allocate once
// per character.
type matcher struct {
	current *stateset.Set
	next    *stateset.Set
	seen    *stateset.Set
}

func (sim *Simulator) newMatcher() *matcher {
	n := len(sim.nfa.States)
	return &matcher{
		current: stateset.New(n),
		next:    stateset.New(n),
		seen:    stateset.New(n),
	}
}

// admit resolves a not-yet-verified candidate id against its own token.
// Empty, Hat (only at the start of text) and Dollar (only at the end)
// fold the candidate into this position's closure and cascade into its
// outgoing edges via enter. Char and Dot register the candidate as a
// pending seed for the following position, contingent on the current
// input character. Any other kind cannot appear as a state token by
// construction.
func (sim *Simulator) admit(id StateID, text []rune, pos int, m *matcher) {
	if !m.seen.Add(int(id)) {
		return
	}
	st := sim.nfa.State(id)
	switch st.Token.Kind {
	case token.Char:
		if pos < len(text) && text[pos] == st.Token.Char {
			m.next.Add(int(id))
		}
	case token.Dot:
		if pos < len(text) {
			m.next.Add(int(id))
		}
	case token.Hat:
		if pos == 0 {
			sim.enter(id, text, pos, m)
		}
	case token.Dollar:
		if pos == len(text) {
			sim.enter(id, text, pos, m)
		}
	default: // token.Empty
		sim.enter(id, text, pos, m)
	}
}

// enter records id as resolved for this position and admits every state
// reachable from it by one edge.
func (sim *Simulator) enter(id StateID, text []rune, pos int, m *matcher) {
	m.current.Add(int(id))
	for _, e := range sim.nfa.State(id).Edges {
		sim.admit(e, text, pos, m)
	}
}

// step resolves one position's frontier into m.current/m.next. seedIDs
// are either raw (the bootstrap/restart case, state 0 only - verified
// here via admit) or already-verified ids carried over from the
// previous position's next set (resolved via enter). m.current and
// m.next are cleared first.
func (sim *Simulator) step(seedIDs []int, raw bool, text []rune, pos int, m *matcher) {
	m.current.Clear()
	m.next.Clear()
	m.seen.Clear()
	for _, id := range seedIDs {
		if raw {
			sim.admit(StateID(id), text, pos, m)
		} else {
			sim.enter(StateID(id), text, pos, m)
		}
	}
}

// IsMatch reports whether some substring of text is accepted. The
// bootstrap state is admitted afresh at every position alongside the
// threads carried over from the previous one, which is what lets a
// single left-to-right sweep stand in for trying every starting offset.
func (sim *Simulator) IsMatch(text string) bool {
	runes := []rune(text)
	m := sim.newMatcher()

	var seeds []int
	for pos := 0; pos <= len(runes); pos++ {
		sim.step(seeds, false, runes, pos, m)
		sim.admit(0, runes, pos, m)
		if m.current.Contains(int(sim.nfa.End)) {
			return true
		}
		seeds = append(seeds[:0], m.next.Values()...)
	}
	return false
}

// FindAllIndex returns the non-overlapping, left-to-right half-open
// ranges accepted by the pattern. Each candidate match attempt restarts
// fresh from its cursor; a zero-width match (q == cursor) advances the
// cursor by one before the next attempt, which is what keeps an
// ever-matching pattern (e.g. the empty pattern, or a bare anchor) from
// livelocking on the same position.
func (sim *Simulator) FindAllIndex(text string) [][2]int {
	runes := []rune(text)
	m := sim.newMatcher()

	var results [][2]int
	for cursor := 0; cursor <= len(runes); {
		pos := cursor
		seeds := []int{0}
		raw := true
		matched := false

		for {
			sim.step(seeds, raw, runes, pos, m)
			if m.current.Contains(int(sim.nfa.End)) {
				q := pos
				results = append(results, [2]int{cursor, q})
				matched = true
				if q == cursor {
					cursor = q + 1
				} else {
					cursor = q
				}
				break
			}
			if pos >= len(runes) || m.next.Len() == 0 {
				break
			}
			seeds, raw = append([]int(nil), m.next.Values()...), false
			pos++
		}

		if !matched {
			cursor++
		}
	}
	return results
}

// FindIndex returns the first accepted range, if any.
func (sim *Simulator) FindIndex(text string) (start, end int, ok bool) {
	all := sim.FindAllIndex(text)
	if len(all) == 0 {
		return 0, 0, false
	}
	return all[0][0], all[0][1], true
}
