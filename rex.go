// Package rex implements an Antimirov-style regular expression matcher:
// a recursive-descent parser over a small regex grammar, a Thompson
// construction into an explicit-epsilon NFA, and a bitset-based
// simulation that bakes epsilon closure into the transition table so
// that matching a string is never at risk of catastrophic
// backtracking, regardless of pattern shape.
//
// Basic usage:
//
//	re := rex.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,6}`)
//	if re.Accepts("erik@osheim.org") {
//	    fmt.Println("matched!")
//	}
//
// rex has no capture groups, no backreferences, no lookaround, no
// anchors, no lazy quantifiers, and performs whole-string matching
// only: Accepts(s) asks whether s, in full, is a member of the
// pattern's language, not whether some substring of s matches.
package rex

import (
	"github.com/go-rex/rex/internal/reparse"
	"github.com/go-rex/rex/nfa"
	"github.com/go-rex/rex/rx"
)

// Regex is a compiled pattern, ready for whole-string matching.
//
// A Regex is immutable after Compile returns and safe for concurrent
// use from multiple goroutines without synchronization (spec §5).
type Regex struct {
	nfa     *nfa.Nfa
	pattern string
}

// Parse parses pattern into its Rx term, or returns a *reparse.ParseError
// describing the first malformed construct encountered.
//
// Example:
//
//	r, err := rex.Parse(`a(b|c)*`)
func Parse(pattern string) (*rx.Rx, error) {
	return reparse.Parse(pattern)
}

// MustParse is like Parse but panics if pattern is invalid. It is
// intended for patterns fixed at compile time.
//
// Example:
//
//	var letterOrDigit = rex.MustParse(`[A-Za-z0-9]`)
func MustParse(pattern string) *rx.Rx {
	r, err := Parse(pattern)
	if err != nil {
		panic("rex: Parse(" + pattern + "): " + err.Error())
	}
	return r
}

// Compile parses pattern and compiles it to a Regex. It returns a
// *reparse.ParseError if pattern is malformed, and a *nfa.CompileError
// if the parsed Rx is nested deeper than nfa.DefaultCompilerConfig
// allows (a long literal or a large repeat count such as a{0,2000}
// reaches that depth). The grammar has no way to produce a rx.KindVar
// node (spec §4.4, §7).
//
// Example:
//
//	re, err := rex.Compile(`[0-9]{3}-[0-9]{4}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	r, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	n, err := nfa.FromRx(r)
	if err != nil {
		return nil, err
	}
	return &Regex{nfa: n, pattern: pattern}, nil
}

// MustCompile is like Compile but panics if pattern is invalid. It is
// useful for patterns known to be valid at compile time.
//
// Example:
//
//	var hex = rex.MustCompile(`[0-9A-Fa-f]+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("rex: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// String returns the source pattern re was compiled from.
func (re *Regex) String() string {
	return re.pattern
}

// Accepts reports whether s, in full, is a member of re's language.
func (re *Regex) Accepts(s string) bool {
	return re.nfa.Accepts(s)
}

// Rejects is the complement of Accepts.
func (re *Regex) Rejects(s string) bool {
	return !re.Accepts(s)
}
