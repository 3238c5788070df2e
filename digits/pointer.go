package digits

import (
	"unsafe"

	"interp/units"
)

// PointerDigits is the default minimum digit count of an address: two hex digits per byte
// of the native pointer width.
const PointerDigits = int(2 * unsafe.Sizeof(uintptr(0)))

const hexDigits = "0123456789ABCDEF"

// AppendPointer appends p as upper-case hexadecimal without prefix, zero padded to width,
// or to PointerDigits when width is not positive.
func AppendPointer[C units.Unit](dst []C, p uintptr, width int) []C {
	if width <= 0 {
		width = PointerDigits
	}

	var buf [PointerDigits]C
	start := len(buf)
	for {
		start--
		buf[start] = C(hexDigits[p&0xF])
		p >>= 4
		if p == 0 {
			break
		}
	}

	return pad(dst, buf[start:], false, width)
}
