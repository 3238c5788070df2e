// Package interp renders templates with positional brace placeholders into text of any
// code-unit width.
//
// A template holds literal text and placeholders of the form {index} or
// {index:width[.precision]}:
//
//	out, err := interp.Format("{1} owes {0:05}", 42, "bob") // "bob owes 00042"
//
// Arguments are classified once when the call starts: text (strings, unit slices and
// pointers to text), other pointers (rendered as hexadecimal addresses), numbers, bools,
// Char values and user-defined types exposing String, ToString, Error or MarshalText. The
// same placeholder may appear any number of times and in any order. {{ renders a single
// opener; an opener followed by a space, a tab or the end of the template is literal.
//
// Templates whose first directive is a '%' are handed to fmt instead, with the argument
// count checked against the directives. Interpolate and InterpolateWith work on []byte
// (UTF-8), []uint16 (UTF-16) and []rune or []uint32 (UTF-32) templates and return output
// of the same width. Any failure returns a nil result and an error matching one of
// ErrMalformedPlaceholder, ErrIndexOutOfRange, ErrUnsupportedType or ErrConversionFailure.
package interp
