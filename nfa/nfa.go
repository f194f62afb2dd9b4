// Package nfa implements the compiled, simulation-ready automaton
// form of spec §4.6-§4.7: NfaBuilder performs Thompson construction
// from a rx.Rx with explicit epsilon edges, and Nfa is the resulting
// closure-table automaton that Accepts/Rejects simulate by bitset
// union alone, never chasing an epsilon edge at match time.
package nfa

import (
	"github.com/go-rex/rex/bitset"
	"github.com/go-rex/rex/charmap"
)

// Nfa is an immutable compiled automaton (spec §5: "All public values
// ... are immutable after construction"). The zero value is not
// meaningful; build one with FromRx, Compile, or NfaBuilder.Build.
type Nfa struct {
	size   int
	start  *bitset.BitSet
	accept *bitset.BitSet
	edges  charmap.LetterMap[row]
}

// NumStates returns the number of states in the automaton.
func (n *Nfa) NumStates() int {
	return n.size
}

// Accepts reports whether s is in the language the automaton
// recognizes, by the bitset simulation of spec §4.7: the active-state
// set starts at the epsilon closure of the start state, and for each
// input character is replaced by the union of each active state's
// (already epsilon-closed) per-range successor set. A character with
// no matching range in edges kills the automaton immediately, since
// no further transitions can ever fire.
func (n *Nfa) Accepts(s string) bool {
	active := n.start.Copy()
	for _, c := range s {
		arr, ok := n.edges.Get(c)
		if !ok {
			return false
		}
		next := bitset.New(n.size)
		any := false
		for state := 0; state < n.size; state++ {
			if !active.Test(state) || arr[state] == nil {
				continue
			}
			next.UnionInPlace(arr[state])
			any = true
		}
		if !any {
			return false
		}
		active = next
	}
	return active.IntersectsNonEmpty(n.accept)
}

// Rejects is the complement of Accepts.
func (n *Nfa) Rejects(s string) bool {
	return !n.Accepts(s)
}
