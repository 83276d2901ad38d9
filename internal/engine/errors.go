package engine

import (
	"errors"
	"fmt"
)

// Kind classifies engine failures. Computation is pure, so an error on a
// given input recurs on identical input and is never retried.
type Kind string

const (
	KindValidation     Kind = "VALIDATION"
	KindInvalidDomain  Kind = "INVALID_DOMAIN"
	KindDivisionByZero Kind = "DIVISION_BY_ZERO"
	KindLengthMismatch Kind = "LENGTH_MISMATCH"
	KindEmptySeries    Kind = "EMPTY_SERIES"
)

// Error carries the model and stage that produced the failure. The runner
// stamps Model and Stage on the way out, so kernel helpers leave them empty.
type Error struct {
	Kind  Kind
	Model string
	Stage string
	Msg   string
}

func (e *Error) Error() string {
	if e.Model != "" && e.Stage != "" {
		return fmt.Sprintf("%s: %s/%s: %s", e.Kind, e.Model, e.Stage, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func validationErrorf(format string, args ...interface{}) *Error {
	return newError(KindValidation, format, args...)
}

func invalidDomainErrorf(format string, args ...interface{}) *Error {
	return newError(KindInvalidDomain, format, args...)
}

func divisionByZeroErrorf(format string, args ...interface{}) *Error {
	return newError(KindDivisionByZero, format, args...)
}

func lengthMismatchErrorf(format string, args ...interface{}) *Error {
	return newError(KindLengthMismatch, format, args...)
}

func emptySeriesErrorf(format string, args ...interface{}) *Error {
	return newError(KindEmptySeries, format, args...)
}

// AsEngineError unwraps err into *Error when it is one.
func AsEngineError(err error) (*Error, bool) {
	var engErr *Error
	if errors.As(err, &engErr) {
		return engErr, true
	}
	return nil, false
}

// IsKind reports whether err is an engine error of the given kind.
func IsKind(err error, kind Kind) bool {
	engErr, ok := AsEngineError(err)
	return ok && engErr.Kind == kind
}
