// Package digits renders integers, floats and addresses as code units with sign-aware
// zero padding.
//
// Width is always the minimum total length of the rendering, sign included. Zeros go
// between the sign and the first digit, so -42 at width 5 is "-0042". A width not larger
// than the natural length leaves the rendering untouched.
package digits

import (
	"interp/units"
)

// maxDigits is the decimal length of the largest uint64, plus one slot for a sign.
const maxDigits = 20 + 1

// uintToUnits writes v backward ending at end and returns the first written index.
func uintToUnits[C units.Unit](buf []C, end int, v uint64) int {
	for {
		end--
		buf[end] = C('0' + v%10)
		v /= 10
		if v == 0 {
			return end
		}
	}
}

// AppendUint appends the decimal rendering of v zero padded to width.
func AppendUint[C units.Unit](dst []C, v uint64, width int) []C {
	var buf [maxDigits]C
	start := uintToUnits(buf[:], len(buf), v)

	return pad(dst, buf[start:], false, width)
}

// AppendInt appends the decimal rendering of v zero padded to width.
func AppendInt[C units.Unit](dst []C, v int64, width int) []C {
	var buf [maxDigits]C

	magnitude := uint64(v)
	negative := v < 0
	if negative {
		// two's complement negation stays exact for math.MinInt64
		magnitude = 0 - magnitude
	}

	start := uintToUnits(buf[:], len(buf), magnitude)
	if negative {
		start--
		buf[start] = '-'
	}

	return pad(dst, buf[start:], negative, width)
}

// pad appends text to dst inserting zeros after the optional sign until the total length
// reaches width.
func pad[C units.Unit](dst, text []C, signed bool, width int) []C {
	missing := width - len(text)
	if missing <= 0 {
		return append(dst, text...)
	}

	if signed {
		dst = append(dst, text[0])
		text = text[1:]
	}

	for range missing {
		dst = append(dst, '0')
	}

	return append(dst, text...)
}
