// Package diagnostic defines the error kinds reported by an interpolation call.
//
// Every failure is fatal for the call that produced it:
//   - MalformedPlaceholder: unparsable index or spec, missing closing brace
//   - IndexOutOfRange: placeholder index not below the argument count
//   - UnsupportedType: referenced argument matches no rendering routine
//   - ConversionFailure: printf fallback or text convention failed
package diagnostic
