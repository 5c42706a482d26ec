package jsonlogic

import (
	"errors"
	"fmt"
)

// Kind classifies evaluation failures.
type Kind string

const (
	// InvalidData marks a value that could not be coerced for an operator.
	InvalidData Kind = "invalid_data"
	// InvalidArgumentCount marks an operator called with the wrong arity.
	InvalidArgumentCount Kind = "invalid_argument_count"
	// InvalidVariableName marks a var path that is neither null, number, nor string.
	InvalidVariableName Kind = "invalid_variable_name"
	// UnknownOperator marks an operator name with no registered handler.
	// Only surfaced under strict parsing; the permissive default treats
	// unknown single-key objects as literals.
	UnknownOperator Kind = "unknown_operator"
	// InvalidOperation marks operator-internal precondition violations,
	// such as division by zero.
	InvalidOperation Kind = "invalid_operation"
	// WrongArgumentType marks a structural mismatch in an argument.
	WrongArgumentType Kind = "wrong_argument_type"
	// ParseError marks input to the serialized entry points that is not
	// valid JSON.
	ParseError Kind = "parse_error"
)

// Error is the single error type produced by parsing and evaluation.
// Op names the operator that raised it, when there is one.
type Error struct {
	Kind Kind
	Op   string
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("jsonlogic: %s: %s: %s", e.Kind, e.Op, e.msg)
	}
	return fmt.Sprintf("jsonlogic: %s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error {
	return e.err
}

// KindOf extracts the Kind from an evaluation error. It returns the empty
// string when err did not originate here.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func newError(kind Kind, op, format string, a ...any) *Error {
	return &Error{Kind: kind, Op: op, msg: fmt.Sprintf(format, a...)}
}

func wrapError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, msg: err.Error(), err: err}
}
