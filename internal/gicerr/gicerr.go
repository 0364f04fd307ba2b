// Package gicerr defines the typed error kinds used across the engine,
// per the propagation policy in the specification: clausifier and parse
// errors are reported and the offending input is skipped; unification
// errors are local to a resolver branch and never surfaced to the user;
// division by zero is a fatal, query-aborting error.
package gicerr

import "fmt"

// Kind discriminates the error categories the engine distinguishes for
// propagation purposes.
type Kind int

const (
	// KindParse signals a malformed .gic source file or query string.
	KindParse Kind = iota
	// KindSemantic signals a malformed quantifier or unexpected production.
	KindSemantic
	// KindClause signals a non-literal found in a literal position after
	// clausal-normal-form transformation.
	KindClause
	// KindClash signals a unification head/arity mismatch.
	KindClash
	// KindOccurCheck signals a binding that would create a cyclic term.
	KindOccurCheck
	// KindGeneralUnify signals any other unification failure.
	KindGeneralUnify
	// KindDivisionByZero signals a fatal arithmetic error; it aborts the
	// query rather than merely pruning a resolver branch.
	KindDivisionByZero
	// KindReadline signals a REPL input error.
	KindReadline
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "ParseError"
	case KindSemantic:
		return "SemanticError"
	case KindClause:
		return "ClauseError"
	case KindClash:
		return "ClashError"
	case KindOccurCheck:
		return "OccurCheckError"
	case KindGeneralUnify:
		return "GeneralUnifyError"
	case KindDivisionByZero:
		return "DivisionByZeroError"
	case KindReadline:
		return "ReadlineError"
	default:
		return "UnknownError"
	}
}

// Error is the engine's uniform error type: a Kind plus a human-readable
// message and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// New builds an Error of the given kind.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind wrapping cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Fatal reports whether errors of this kind abort the whole query rather
// than merely pruning the current resolver branch.
func (k Kind) Fatal() bool { return k == KindDivisionByZero }
