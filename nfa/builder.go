package nfa

import (
	"github.com/go-rex/rex/bitset"
	"github.com/go-rex/rex/charmap"
	"github.com/go-rex/rex/charset"
)

// StateID identifies a state within a NfaBuilder or a compiled Nfa.
type StateID int

// letterEdge is one outgoing, character-consuming transition.
type letterEdge struct {
	set charset.LetterSet
	to  StateID
}

// stateEdges is the outgoing adjacency of a single builder state: zero
// or more epsilon edges, plus zero or more character-consuming edges.
type stateEdges struct {
	epsilon []StateID
	letters []letterEdge
}

// NfaBuilder is spec §4's "mutable-in-spirit intermediate form": a
// state-indexed adjacency list built up by repeated AddState/
// AddEpsilon/AddLetters calls during Thompson construction, and
// discarded once Build produces the immutable Nfa (spec §4.5: "Used
// transiently during compilation and discarded after build").
//
// Grounded on coregx-coregex/nfa.Builder's AddX-returns-fresh-StateID
// shape, simplified to the two edge kinds spec's Thompson construction
// needs (epsilon, single-letter-range) in place of the teacher's
// richer StateKind set (ByteRange, Sparse, Split, Capture, Look,
// RuneAny, ...), since captures/lookaround/anchors are out of scope.
type NfaBuilder struct {
	states []stateEdges
}

// NewNfaBuilder returns an empty builder.
func NewNfaBuilder() *NfaBuilder {
	return &NfaBuilder{}
}

// AddState allocates a fresh state with no outgoing edges and returns
// its id.
func (b *NfaBuilder) AddState() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, stateEdges{})
	return id
}

// NumStates returns the number of states allocated so far.
func (b *NfaBuilder) NumStates() int {
	return len(b.states)
}

func (b *NfaBuilder) checkState(id StateID) {
	if id < 0 || int(id) >= len(b.states) {
		panic(&BuildError{Msg: "state id out of range", StateID: id})
	}
}

// AddEpsilon adds an epsilon (no-input) edge from → to.
func (b *NfaBuilder) AddEpsilon(from, to StateID) {
	b.checkState(from)
	b.checkState(to)
	b.states[from].epsilon = append(b.states[from].epsilon, to)
}

// AddLetters adds an edge from → to that consumes one character in ls.
func (b *NfaBuilder) AddLetters(from StateID, ls charset.LetterSet, to StateID) {
	b.checkState(from)
	b.checkState(to)
	if ls.IsEmpty() {
		return
	}
	b.states[from].letters = append(b.states[from].letters, letterEdge{set: ls, to: to})
}

// closure computes the epsilon closure of seeds: the least fixpoint of
// "seeds plus the epsilon-successors of every state in seeds" (spec
// §4.5), via worklist iteration rather than naive repeated expansion
// (spec §9: "keep closure computation O(|states| + |epsilon-edges|)").
func (b *NfaBuilder) closure(seeds []StateID) *bitset.BitSet {
	result := bitset.New(len(b.states))
	worklist := make([]StateID, 0, len(seeds))
	for _, s := range seeds {
		if !result.Test(int(s)) {
			result.Set(int(s))
			worklist = append(worklist, s)
		}
	}
	for len(worklist) > 0 {
		s := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, next := range b.states[s].epsilon {
			if !result.Test(int(next)) {
				result.Set(int(next))
				worklist = append(worklist, next)
			}
		}
	}
	return result
}

// row is the per-character-range transition array of the compiled
// Nfa: row[s] is nil if state s has no outgoing edge in that range, or
// the epsilon-closed set of states reached from s otherwise (spec
// §4: "Array[BitSet | null]").
type row []*bitset.BitSet

// combineRows implements spec §4.6 step 4's slot-wise merge into a new
// row: where only one input slot is set, that bitset is reused as is;
// where both are set, the slot gets a fresh copy of a's bitset unioned
// with b's. Neither input row nor any of its bitsets is mutated.
func combineRows(a, b row) row {
	out := make(row, len(a))
	for i := range out {
		switch {
		case a[i] == nil && b[i] == nil:
			out[i] = nil
		case a[i] == nil:
			out[i] = b[i]
		case b[i] == nil:
			out[i] = a[i]
		default:
			merged := a[i].Copy()
			merged.UnionInPlace(b[i])
			out[i] = merged
		}
	}
	return out
}

// buildConfig holds the options a BuildOption may set.
type buildConfig struct {
	maxStates int // 0 means unlimited
}

// BuildOption configures (*NfaBuilder).Build, standing in for the
// teacher's WithAnchored/WithUTF8/... functional options (spec has no
// anchoring or UTF-8 modes to expose, so rex's only option bounds
// state-count blowup instead).
type BuildOption func(*buildConfig)

// WithRepeatExpansionLimit caps the number of states construction may
// have allocated by the time Build runs, guarding against a pattern
// like a{0,1000000} unfolding (spec §4.5's Repeat table) into an
// impractically large automaton. A limit of 0 (the default) means no
// cap.
func WithRepeatExpansionLimit(limit int) BuildOption {
	return func(c *buildConfig) { c.maxStates = limit }
}

// Build finalizes the builder into an immutable Nfa with the given
// start and accept states, implementing spec §4.6. It returns a
// *BuildError if a WithRepeatExpansionLimit option is exceeded.
func (b *NfaBuilder) Build(start, accept StateID, opts ...BuildOption) (*Nfa, error) {
	b.checkState(start)
	b.checkState(accept)

	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxStates > 0 && len(b.states) > cfg.maxStates {
		return nil, &BuildError{Msg: "state count exceeds repeat expansion limit", StateID: StateID(len(b.states) - 1)}
	}

	n := len(b.states)

	startSet := b.closure([]StateID{start})

	acceptSet := bitset.New(n)
	acceptSet.Set(int(accept))

	edges := charmap.Empty[row]()
	for s := 0; s < n; s++ {
		perState := charmap.Empty[[]StateID]()
		for _, e := range b.states[s].letters {
			e.set.ForEach(func(lo, hi rune) {
				perState = charmap.Merge(perState, charmap.Single(lo, hi, []StateID{e.to}), appendStateIDs)
			})
		}
		if perState.IsEmpty() {
			continue
		}
		perState.ForEach(func(lo, hi rune, targets []StateID) {
			closed := b.closure(targets)
			arr := make(row, n)
			arr[s] = closed
			edges = charmap.Merge(edges, charmap.Single(lo, hi, arr), combineRows)
		})
	}

	return &Nfa{
		size:   n,
		start:  startSet,
		accept: acceptSet,
		edges:  edges,
	}, nil
}

func appendStateIDs(a, b []StateID) []StateID {
	return append(append([]StateID{}, a...), b...)
}
