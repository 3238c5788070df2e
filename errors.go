package interp

import (
	"interp/internal/diagnostic"
)

var (
	ErrMalformedPlaceholder = diagnostic.ErrMalformedPlaceholder
	ErrIndexOutOfRange      = diagnostic.ErrIndexOutOfRange
	ErrUnsupportedType      = diagnostic.ErrUnsupportedType
	ErrConversionFailure    = diagnostic.ErrConversionFailure
)

// Error is the structured failure returned by every interpolation call.
type Error = diagnostic.Error

type Code = diagnostic.Code

const (
	CodeUnknown              = diagnostic.CodeUnknown
	CodeMalformedPlaceholder = diagnostic.CodeMalformedPlaceholder
	CodeIndexOutOfRange      = diagnostic.CodeIndexOutOfRange
	CodeUnsupportedType      = diagnostic.CodeUnsupportedType
	CodeConversionFailure    = diagnostic.CodeConversionFailure
)

// CodeOf returns the failure code carried by err, CodeUnknown for foreign errors.
func CodeOf(err error) Code {
	return diagnostic.CodeOf(err)
}
