package digits

import (
	"math"
	"strconv"

	"interp/units"
)

// DefaultPrecision is the number of fractional digits used when a placeholder sets none.
const DefaultPrecision = 6

// maxFloatLen bounds the 'f' rendering of a float64 without precision growth: 309 integer
// digits, sign and point, plus room for the fractional digits held in the same buffer.
const maxFloatLen = 312 + 64

// AppendFloat appends v in decimal 'f' notation with precision fractional digits
// (rounded to nearest), zero padded to width. A negative precision selects the shortest
// representation that round-trips at the given bit size. NaN and infinities are never
// padded.
func AppendFloat[C units.Unit](dst []C, v float64, bits, width, precision int) []C {
	var scratch [maxFloatLen]byte
	text := strconv.AppendFloat(scratch[:0], v, 'f', precision, bits)

	// stays in buf unless precision outgrows it
	var buf [maxFloatLen]C
	out := toUnits(buf[:0], text)

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return append(dst, out...)
	}

	return pad(dst, out, text[0] == '-', width)
}

func toUnits[C units.Unit](dst []C, text []byte) []C {
	for _, b := range text {
		dst = append(dst, C(b))
	}
	return dst
}
