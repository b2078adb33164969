package birthday

import (
	"errors"
	"fmt"
)

// Kind is a stable code for a record parse failure.
type Kind string

const (
	KindEmptyRecord       Kind = "empty_record"
	KindInvalidDateFormat Kind = "invalid_date_format"
	KindInvalidDate       Kind = "invalid_date"
)

// Sentinels for errors.Is. Every error returned by Parse matches exactly one.
var (
	ErrEmptyRecord       = errors.New("no data")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidDate       = errors.New("invalid date")
)

// ParseError describes why a line could not be turned into a Person.
type ParseError struct {
	Kind  Kind
	Input string
	Err   error // underlying cause, may be nil
}

func (e *ParseError) Error() string {
	msg := e.sentinel().Error()
	if e.Input != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Input)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for e.Kind.
func (e *ParseError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *ParseError) sentinel() error {
	switch e.Kind {
	case KindEmptyRecord:
		return ErrEmptyRecord
	case KindInvalidDateFormat:
		return ErrInvalidDateFormat
	default:
		return ErrInvalidDate
	}
}

// HasKind reports whether err is a ParseError of the given kind.
func HasKind(err error, kind Kind) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}
