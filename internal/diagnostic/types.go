package diagnostic

import (
	"errors"
	"fmt"
	"strconv"
)

// Code identifies the kind of an interpolation failure.
type Code int

const (
	CodeUnknown Code = iota
	CodeMalformedPlaceholder
	CodeIndexOutOfRange
	CodeUnsupportedType
	CodeConversionFailure
)

var (
	ErrMalformedPlaceholder = errors.New("malformed placeholder")
	ErrIndexOutOfRange      = errors.New("placeholder index out of range")
	ErrUnsupportedType      = errors.New("unsupported argument type")
	ErrConversionFailure    = errors.New("conversion failure")
)

// String returns a human-readable code name.
func (c Code) String() string {
	switch c {
	case CodeMalformedPlaceholder:
		return "MalformedPlaceholder"
	case CodeIndexOutOfRange:
		return "IndexOutOfRange"
	case CodeUnsupportedType:
		return "UnsupportedType"
	case CodeConversionFailure:
		return "ConversionFailure"
	default:
		return "Unknown"
	}
}

// Sentinel returns the package error matched by errors.Is for this code.
func (c Code) Sentinel() error {
	switch c {
	case CodeMalformedPlaceholder:
		return ErrMalformedPlaceholder
	case CodeIndexOutOfRange:
		return ErrIndexOutOfRange
	case CodeUnsupportedType:
		return ErrUnsupportedType
	case CodeConversionFailure:
		return ErrConversionFailure
	default:
		return nil
	}
}

// Error is a single interpolation failure.
type Error struct {
	// Code is the failure kind.
	Code Code
	// Pos is the template offset in code units, -1 when not tied to a position.
	Pos int
	// Index is the argument index involved, -1 when none.
	Index int
	// Message is the human-readable description.
	Message string
	// Wrapped is the underlying cause, if any.
	Wrapped error
}

// New creates an error not tied to a template position or argument.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Pos:     -1,
		Index:   -1,
		Message: fmt.Sprintf(format, args...),
	}
}

// At attaches a template position.
func (e *Error) At(pos int) *Error {
	e.Pos = pos
	return e
}

// Arg attaches an argument index.
func (e *Error) Arg(index int) *Error {
	e.Index = index
	return e
}

// Wrap attaches the underlying cause.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// Error returns a formatted diagnostic string.
func (e *Error) Error() string {
	msg := e.Code.Sentinel()
	if msg == nil {
		msg = errors.New(e.Code.String())
	}

	out := msg.Error()
	if e.Pos >= 0 {
		out += " at " + strconv.Itoa(e.Pos)
	}

	if e.Index >= 0 {
		out += " (argument " + strconv.Itoa(e.Index) + ")"
	}

	if e.Message != "" {
		out += ": " + e.Message
	}

	if e.Wrapped != nil {
		out += ": " + e.Wrapped.Error()
	}

	return out
}

// Is matches the sentinel of the error code.
func (e *Error) Is(target error) bool {
	sentinel := e.Code.Sentinel()
	return sentinel != nil && target == sentinel
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) Code {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Code
	}

	return CodeUnknown
}
