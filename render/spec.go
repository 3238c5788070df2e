package render

import (
	"slices"

	"interp/internal/diagnostic"
	"interp/scan"
	"interp/units"
)

// maxSpecValue bounds width and precision; larger values are rejected as malformed.
const maxSpecValue = 1 << 16

// Spec is a parsed width[.precision] suffix.
type Spec struct {
	// Width is the minimum total length of a numeric rendering, 0 when unset.
	Width int
	// Precision is the number of fractional digits of a float rendering.
	Precision    int
	HasPrecision bool
}

// ParseSpec parses the raw units after a placeholder separator. The width may be omitted
// when a precision follows, as in {0:.2}.
func ParseSpec[C units.Unit](raw []C) (Spec, error) {
	if len(raw) == 0 {
		return Spec{}, diagnostic.New(diagnostic.CodeMalformedPlaceholder, "empty spec")
	}

	widthPart, precisionPart := raw, []C(nil)
	dot := slices.Index(raw, C('.'))
	if dot >= 0 {
		widthPart, precisionPart = raw[:dot], raw[dot+1:]
	}

	var spec Spec

	if len(widthPart) > 0 {
		width, ok := scan.ParseUnsigned(widthPart, maxSpecValue)
		if !ok {
			return Spec{}, diagnostic.New(diagnostic.CodeMalformedPlaceholder, "invalid width %q", scan.Quote(raw))
		}
		spec.Width = width
	}

	if dot >= 0 {
		precision, ok := scan.ParseUnsigned(precisionPart, maxSpecValue)
		if !ok {
			return Spec{}, diagnostic.New(diagnostic.CodeMalformedPlaceholder, "invalid precision %q", scan.Quote(raw))
		}
		spec.Precision, spec.HasPrecision = precision, true
	}

	return spec, nil
}
