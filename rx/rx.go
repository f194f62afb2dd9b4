// Package rx defines Rx, the closed algebraic term language for
// regular expressions, and its smart constructors. Rx values are
// immutable and freely shared: the same sub-Rx may appear as a child
// of several different parents (e.g. the r in r·r* is reused, not
// copied).
package rx

import "github.com/go-rex/rex/charset"

// Kind discriminates the variant a Rx holds, mirroring the teacher's
// StateKind-style tagged struct rather than an open class hierarchy.
type Kind uint8

const (
	// KindPhi matches nothing: the empty language.
	KindPhi Kind = iota
	// KindEmpty matches only the empty string.
	KindEmpty
	// KindLetters matches a single character drawn from a LetterSet
	// (a bare Letter is represented as Letters with a singleton set).
	KindLetters
	// KindConcat matches r1 followed by r2.
	KindConcat
	// KindChoice matches r1 or r2.
	KindChoice
	// KindStar matches zero or more repetitions of r.
	KindStar
	// KindRepeat matches between Lo and Hi repetitions of r.
	KindRepeat
	// KindVar is reserved for fixed-point extensions; the NFA
	// compiler rejects it with a fatal error (spec §3, §4.5, §7).
	KindVar
)

// Rx is an immutable regex term. The zero value is not meaningful;
// always build one through Phi, Empty, Letter, Letters, Concat,
// Choice, Star, Repeat, or Var.
type Rx struct {
	kind Kind

	letters charset.LetterSet // valid when kind == KindLetters
	sub1    *Rx               // valid when kind in {Concat, Choice, Star, Repeat}
	sub2    *Rx               // valid when kind in {Concat, Choice}
	lo      uint64            // valid when kind == KindRepeat
	hi      uint64            // valid when kind == KindRepeat
	hiInf   bool              // valid when kind == KindRepeat: hi is +Infinity
	varID   int               // valid when kind == KindVar
}

// Kind returns the variant of r.
func (r *Rx) Kind() Kind { return r.kind }

// Letters returns the character set of a KindLetters node.
func (r *Rx) Letters() charset.LetterSet { return r.letters }

// Sub1 returns the first (or only) sub-expression of a compound node.
func (r *Rx) Sub1() *Rx { return r.sub1 }

// Sub2 returns the second sub-expression of a Concat or Choice node.
func (r *Rx) Sub2() *Rx { return r.sub2 }

// RepeatBounds returns the [lo, hi] bounds of a KindRepeat node. hiInf
// reports whether hi is +Infinity (unbounded upper bound, spec §9.3).
func (r *Rx) RepeatBounds() (lo, hi uint64, hiInf bool) { return r.lo, r.hi, r.hiInf }

// VarID returns the identifier of a KindVar node.
func (r *Rx) VarID() int { return r.varID }

var phiValue = &Rx{kind: KindPhi}
var emptyValue = &Rx{kind: KindEmpty}

// Phi is the regex matching no string whatsoever.
func Phi() *Rx { return phiValue }

// Empty is the regex matching only the empty string.
func Empty() *Rx { return emptyValue }

// Letter returns the regex matching exactly the single character c.
func Letter(c rune) *Rx {
	return Letters(charset.Char(c))
}

// Letters returns the regex matching any single character in ls. If ls
// is empty this degenerates to Phi (no character can possibly match).
func Letters(ls charset.LetterSet) *Rx {
	if ls.IsEmpty() {
		return phiValue
	}
	return &Rx{kind: KindLetters, letters: ls}
}

// Var returns a placeholder node reserved for fixed-point extensions.
// It has no operational meaning on its own: nfa.FromRx rejects it with
// a fatal error (spec §3, §4.5, §7).
func Var(id int) *Rx {
	return &Rx{kind: KindVar, varID: id}
}

// Concat returns the regex matching r1 followed by r2, applying the
// algebraic identities of spec §4.3 at construction time so that ASTs
// built through these constructors are always already simplified:
//
//	Phi · r   = r · Phi = Phi
//	Empty · r = r · Empty = r
func Concat(r1, r2 *Rx) *Rx {
	switch {
	case r1.kind == KindPhi || r2.kind == KindPhi:
		return phiValue
	case r1.kind == KindEmpty:
		return r2
	case r2.kind == KindEmpty:
		return r1
	default:
		return &Rx{kind: KindConcat, sub1: r1, sub2: r2}
	}
}

// Choice returns the regex matching r1 or r2, applying:
//
//	Phi + r = r + Phi = r
func Choice(r1, r2 *Rx) *Rx {
	switch {
	case r1.kind == KindPhi:
		return r2
	case r2.kind == KindPhi:
		return r1
	default:
		return &Rx{kind: KindChoice, sub1: r1, sub2: r2}
	}
}

// Star returns the regex matching zero or more repetitions of r,
// applying:
//
//	Star(Star(r)) = Star(r)
//	Star(Empty)   = Empty
//	Star(Phi)     = Empty
func Star(r *Rx) *Rx {
	switch r.kind {
	case KindStar:
		return r
	case KindEmpty, KindPhi:
		return emptyValue
	default:
		return &Rx{kind: KindStar, sub1: r}
	}
}

// Question returns r?, encoded as r + Empty (spec §4.3).
func Question(r *Rx) *Rx {
	return Choice(r, emptyValue)
}

// Plus returns r+ (one or more), encoded as r · r* (spec §4.3).
func Plus(r *Rx) *Rx {
	return Concat(r, Star(r))
}

// InfiniteHi marks a Repeat's upper bound as unbounded. The parser
// never produces this (spec §9.3: no surface syntax for hi = ∞); it is
// a library-only construction path for callers building an Rx
// directly, e.g. to express r{3,}.
const InfiniteHi = ^uint64(0)

// Repeat returns the regex matching between lo and hi repetitions of
// r, 0 <= lo <= hi (hi may be InfiniteHi for an unbounded upper
// bound). It panics if lo > hi (a malformed AST is a programmer
// error, not a matcher-time condition).
func Repeat(r *Rx, lo, hi uint64) *Rx {
	hiInf := hi == InfiniteHi
	if !hiInf && lo > hi {
		panic("rx: Repeat: lo > hi")
	}
	if lo == 0 && hi == 0 {
		return emptyValue
	}
	if lo == 1 && hi == 1 {
		return r
	}
	return &Rx{kind: KindRepeat, sub1: r, lo: lo, hi: hi, hiInf: hiInf}
}

// Equal reports whether r and other are structurally identical, i.e.
// denote syntactically the same term (spec §4.3: "Equality is
// structural").
func Equal(r, other *Rx) bool {
	if r == other {
		return true
	}
	if r.kind != other.kind {
		return false
	}
	switch r.kind {
	case KindPhi, KindEmpty:
		return true
	case KindLetters:
		return r.letters.Equal(other.letters)
	case KindConcat, KindChoice:
		return Equal(r.sub1, other.sub1) && Equal(r.sub2, other.sub2)
	case KindStar:
		return Equal(r.sub1, other.sub1)
	case KindRepeat:
		return r.lo == other.lo && r.hi == other.hi && r.hiInf == other.hiInf && Equal(r.sub1, other.sub1)
	case KindVar:
		return r.varID == other.varID
	default:
		return false
	}
}

// Nullable reports whether the empty string is a member of the
// language r denotes, computed recursively on r's structure (spec
// §8: "iff r is nullable... provable recursively on r's structure").
func Nullable(r *Rx) bool {
	switch r.kind {
	case KindPhi:
		return false
	case KindEmpty:
		return true
	case KindLetters:
		return false
	case KindConcat:
		return Nullable(r.sub1) && Nullable(r.sub2)
	case KindChoice:
		return Nullable(r.sub1) || Nullable(r.sub2)
	case KindStar:
		return true
	case KindRepeat:
		return r.lo == 0 || Nullable(r.sub1)
	case KindVar:
		panic("rx: Nullable: Var has no operational meaning")
	default:
		panic("rx: Nullable: unreachable kind")
	}
}
