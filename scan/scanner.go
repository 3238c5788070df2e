// Package scan finds brace placeholders in a template.
//
// A placeholder is {index} or {index:spec}. An opener followed by another opener, a space,
// a tab, a NUL unit or the end of the template is literal text; {{ renders as a single
// opener. The template is never modified: placeholders are reported by position.
package scan

import (
	"slices"

	"interp/internal/diagnostic"
	"interp/primitive"
	"interp/units"
	"interp/utils"
)

const (
	Opener    = '{'
	Closer    = '}'
	Separator = ':'
	Percent   = '%'
)

// maxIndex bounds parsed indexes well below int overflow on every platform.
const maxIndex = 1<<31 - 1

// Resolver exposes the erased argument table to the scanner.
type Resolver interface {
	Len() int
	Kind(i int) primitive.KindEnum
}

// Placeholder describes one {index[:spec]} occurrence.
type Placeholder struct {
	Index int
	Kind  primitive.KindEnum
	// Open and Close are the template offsets of the opener and closer.
	Open, Close int
	// SpecStart is the offset of the first spec unit, or -1 without a separator.
	SpecStart int
}

// SpecOf returns the raw spec units of p within tpl, nil when absent.
func SpecOf[C units.Unit](tpl []C, p Placeholder) []C {
	if p.SpecStart < 0 {
		return nil
	}
	return tpl[p.SpecStart:p.Close]
}

// IsEscape reports whether the opener at i is literal text.
func IsEscape[C units.Unit](tpl []C, i int) bool {
	if i+1 >= len(tpl) {
		return true
	}

	switch tpl[i+1] {
	case Opener, ' ', '\t', 0:
		return true
	default:
		return false
	}
}

// Scan returns the placeholders of tpl in template order, resolving each index against
// args.
func Scan[C units.Unit](tpl []C, args Resolver) ([]Placeholder, error) {
	var out []Placeholder

	for i := 0; i < len(tpl); i++ {
		if tpl[i] != Opener {
			continue
		}

		if IsEscape(tpl, i) {
			i++
			continue
		}

		ph, err := parse(tpl, i, args)
		if err != nil {
			return nil, err
		}

		out = append(out, ph)
		i = ph.Close
	}

	return out, nil
}

func parse[C units.Unit](tpl []C, open int, args Resolver) (Placeholder, error) {
	rel := slices.Index(tpl[open+1:], C(Closer))
	if rel < 0 {
		return Placeholder{}, diagnostic.New(diagnostic.CodeMalformedPlaceholder, "missing closing brace").At(open)
	}

	ph := Placeholder{Open: open, Close: open + 1 + rel, SpecStart: -1}
	body := tpl[open+1 : ph.Close]

	indexPart := body
	if sep := slices.Index(body, C(Separator)); sep >= 0 {
		indexPart = body[:sep]
		ph.SpecStart = open + 1 + sep + 1
	}

	index, ok := ParseUnsigned(indexPart, maxIndex)
	if !ok {
		return Placeholder{}, diagnostic.New(diagnostic.CodeMalformedPlaceholder, "invalid index %q", Quote(indexPart)).At(open)
	}

	if index >= args.Len() {
		return Placeholder{}, diagnostic.New(diagnostic.CodeIndexOutOfRange, "%d arguments", args.Len()).At(open).Arg(index)
	}

	ph.Index = index
	ph.Kind = args.Kind(index)

	return ph, nil
}

// ParseUnsigned parses a non-empty run of decimal digits not exceeding limit.
func ParseUnsigned[C units.Unit](digits []C, limit int) (int, bool) {
	if len(digits) == 0 {
		return 0, false
	}

	n := 0
	for _, d := range digits {
		if !utils.IsInRange('0', d, '9') {
			return 0, false
		}

		n = n*10 + int(d-'0')
		if n > limit {
			return 0, false
		}
	}

	return n, true
}

// AppendLiteral appends literal template text to dst, collapsing each escaped {{ into a
// single opener. lit must start at a position the scanner treats as plain text.
func AppendLiteral[C units.Unit](dst, lit []C) []C {
	for i := 0; i < len(lit); i++ {
		dst = append(dst, lit[i])

		if lit[i] == Opener && i+1 < len(lit) {
			// the unit after an escaped opener is never an opener start
			if lit[i+1] != Opener {
				dst = append(dst, lit[i+1])
			}
			i++
		}
	}

	return dst
}

// Quote renders template units for error messages.
func Quote[C units.Unit](u []C) string {
	s, err := units.ToString(u)
	if err != nil {
		return "<undecodable>"
	}
	return s
}

// PercentFirst reports whether a '%' occurs in tpl before any placeholder opener.
func PercentFirst[C units.Unit](tpl []C) bool {
	for i := 0; i < len(tpl); i++ {
		switch tpl[i] {
		case Percent:
			return true
		case Opener:
			if !IsEscape(tpl, i) {
				return false
			}
			i++
		}
	}

	return false
}
