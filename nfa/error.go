package nfa

import "fmt"

// CompileError reports a failure turning a rx.Rx into a Nfa: either an
// AST node with no operational meaning (rx.KindVar, spec §4.5, §7) or
// a pattern nested deeper than a CompilerConfig's MaxRecursionDepth.
type CompileError struct {
	Msg string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("nfa: compile error: %s", e.Msg)
}

// BuildError reports misuse of the low-level NfaBuilder API, such as
// referencing a StateID that was never allocated by AddState.
type BuildError struct {
	Msg     string
	StateID StateID
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("nfa: build error at state %d: %s", e.StateID, e.Msg)
}
