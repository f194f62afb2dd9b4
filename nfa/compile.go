package nfa

import "github.com/go-rex/rex/rx"

// CompilerConfig controls Compile's behavior. Compile replaces a config
// whose MaxRecursionDepth is zero or negative (including the zero
// value) with DefaultCompilerConfig.
type CompilerConfig struct {
	// MaxRecursionDepth limits the Rx-tree recursion depth Compile will
	// walk before aborting with a CompileError, guarding against stack
	// overflow on pathologically deep ASTs (grounded on
	// coregx-coregex/nfa.Compiler's depth counter in compileRegexp).
	MaxRecursionDepth int
}

// DefaultCompilerConfig returns a CompilerConfig with a generous depth
// limit suitable for hand-written or parser-produced patterns.
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{MaxRecursionDepth: 1000}
}

// FromRx compiles r into a Nfa using DefaultCompilerConfig. It returns
// a *CompileError if r contains a rx.KindVar node (spec §4.5, §7:
// "the compiler encounters a Var node, which has no operational
// meaning").
func FromRx(r *rx.Rx, opts ...BuildOption) (*Nfa, error) {
	return Compile(r, DefaultCompilerConfig(), opts...)
}

// Compile compiles r into a Nfa under the given CompilerConfig and
// BuildOptions (e.g. WithRepeatExpansionLimit).
func Compile(r *rx.Rx, cfg CompilerConfig, opts ...BuildOption) (*Nfa, error) {
	if cfg.MaxRecursionDepth <= 0 {
		cfg = DefaultCompilerConfig()
	}
	c := &compiler{builder: NewNfaBuilder(), maxDepth: cfg.MaxRecursionDepth}
	start, accept, err := c.compile(r, 0)
	if err != nil {
		return nil, err
	}
	return c.builder.Build(start, accept, opts...)
}

type compiler struct {
	builder  *NfaBuilder
	maxDepth int
}

// compile implements the Thompson construction table of spec §4.5,
// allocating a fresh (start, accept) state pair per sub-expression and
// linking them according to r's shape.
func (c *compiler) compile(r *rx.Rx, depth int) (start, accept StateID, err error) {
	if depth > c.maxDepth {
		return 0, 0, &CompileError{Msg: "pattern nested too deeply to compile"}
	}

	switch r.Kind() {
	case rx.KindPhi:
		// "two states, no edges between them": accept is unreachable.
		return c.builder.AddState(), c.builder.AddState(), nil

	case rx.KindEmpty:
		s := c.builder.AddState()
		return s, s, nil

	case rx.KindLetters:
		s := c.builder.AddState()
		a := c.builder.AddState()
		c.builder.AddLetters(s, r.Letters(), a)
		return s, a, nil

	case rx.KindConcat:
		s1, a1, err := c.compile(r.Sub1(), depth+1)
		if err != nil {
			return 0, 0, err
		}
		s2, a2, err := c.compile(r.Sub2(), depth+1)
		if err != nil {
			return 0, 0, err
		}
		c.builder.AddEpsilon(a1, s2)
		return s1, a2, nil

	case rx.KindChoice:
		s1, a1, err := c.compile(r.Sub1(), depth+1)
		if err != nil {
			return 0, 0, err
		}
		s2, a2, err := c.compile(r.Sub2(), depth+1)
		if err != nil {
			return 0, 0, err
		}
		s := c.builder.AddState()
		a := c.builder.AddState()
		c.builder.AddEpsilon(s, s1)
		c.builder.AddEpsilon(s, s2)
		c.builder.AddEpsilon(a1, a)
		c.builder.AddEpsilon(a2, a)
		return s, a, nil

	case rx.KindStar:
		s1, a1, err := c.compile(r.Sub1(), depth+1)
		if err != nil {
			return 0, 0, err
		}
		s := c.builder.AddState()
		a := c.builder.AddState()
		c.builder.AddEpsilon(s, a)  // zero iterations
		c.builder.AddEpsilon(s, s1) // enter the loop
		c.builder.AddEpsilon(a1, s) // loop back
		return s, a, nil

	case rx.KindRepeat:
		return c.compileRepeat(r, depth)

	case rx.KindVar:
		return 0, 0, &CompileError{Msg: "Var has no operational meaning"}

	default:
		return 0, 0, &CompileError{Msg: "unreachable Rx kind"}
	}
}

// compileRepeat unfolds Repeat(r, lo, hi) per spec §4.5's table:
//
//	Repeat(r,x,y) with x>0   = Concat(r, Repeat(r,x-1,y-1))
//	Repeat(r,0,y) with y>0   = Choice(Empty, Concat(r, Repeat(r,0,y-1)))
//	Repeat(r,0,0)            = Empty
//
// extended for an unbounded upper bound (rx.InfiniteHi, spec §9.3: AST-
// only, no surface syntax) by unfolding the mandatory lo copies and
// then falling back to Star for the unbounded tail:
//
//	Repeat(r,x,∞) with x>0   = Concat(r, Repeat(r,x-1,∞))
//	Repeat(r,0,∞)            = Star(r)
func (c *compiler) compileRepeat(r *rx.Rx, depth int) (start, accept StateID, err error) {
	sub := r.Sub1()
	lo, hi, hiInf := r.RepeatBounds()

	if hiInf {
		if lo == 0 {
			return c.compile(rx.Star(sub), depth+1)
		}
		return c.compile(rx.Concat(sub, rx.Repeat(sub, lo-1, rx.InfiniteHi)), depth+1)
	}

	switch {
	case lo > 0:
		return c.compile(rx.Concat(sub, rx.Repeat(sub, lo-1, hi-1)), depth+1)
	case hi > 0:
		return c.compile(rx.Choice(rx.Empty(), rx.Concat(sub, rx.Repeat(sub, 0, hi-1))), depth+1)
	default:
		return c.compile(rx.Empty(), depth+1)
	}
}
