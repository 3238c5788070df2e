// Package units describes code-unit widths and converts text between UTF-8 strings and
// 16-bit or 32-bit code-unit slices.
package units

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Unit is a code unit: a byte of UTF-8, a UTF-16 unit or a UTF-32 unit.
type Unit interface {
	~uint8 | ~uint16 | ~int32 | ~uint32
}

var ErrUnsupportedWidth = errors.New("unsupported code unit width")

// Width returns the size of C in bytes: 1, 2 or 4.
func Width[C Unit]() int {
	var zero C
	return int(unsafe.Sizeof(zero))
}

// wire encodings are fixed to little endian without BOM; only the unit values matter.
func codec(width int) (encoding.Encoding, error) {
	switch width {
	case 2:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case 4:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedWidth, width)
	}
}

// FromString converts UTF-8 text into units of width C.
func FromString[C Unit](s string) ([]C, error) {
	width := Width[C]()
	if width == 1 {
		out := make([]C, len(s))
		for i := 0; i < len(s); i++ {
			out[i] = C(s[i])
		}
		return out, nil
	}

	enc, err := codec(width)
	if err != nil {
		return nil, err
	}

	raw, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding %d-bit units: %w", width*8, err)
	}

	out := make([]C, 0, len(raw)/width)
	for i := 0; i+width <= len(raw); i += width {
		if width == 2 {
			out = append(out, C(binary.LittleEndian.Uint16(raw[i:])))
		} else {
			out = append(out, C(binary.LittleEndian.Uint32(raw[i:])))
		}
	}

	return out, nil
}

// ToString converts units of width C back into UTF-8 text.
func ToString[C Unit](u []C) (string, error) {
	width := Width[C]()
	if width == 1 {
		b := make([]byte, len(u))
		for i, c := range u {
			b[i] = byte(c)
		}
		return string(b), nil
	}

	dec, err := codec(width)
	if err != nil {
		return "", err
	}

	raw := make([]byte, 0, len(u)*width)
	for _, c := range u {
		if width == 2 {
			raw = binary.LittleEndian.AppendUint16(raw, uint16(c))
		} else {
			raw = binary.LittleEndian.AppendUint32(raw, uint32(c))
		}
	}

	text, err := dec.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decoding %d-bit units: %w", width*8, err)
	}

	return string(text), nil
}

// AppendString appends UTF-8 text converted to units of width C.
func AppendString[C Unit](dst []C, s string) ([]C, error) {
	if Width[C]() == 1 {
		for i := 0; i < len(s); i++ {
			dst = append(dst, C(s[i]))
		}
		return dst, nil
	}

	u, err := FromString[C](s)
	if err != nil {
		return dst, err
	}

	return append(dst, u...), nil
}

// AppendRune appends the encoding of r in units of width C.
func AppendRune[C Unit](dst []C, r rune) ([]C, error) {
	return AppendString(dst, string(r))
}

// AppendASCII appends s unit by unit. s must be ASCII, which encodes identically in
// every width.
func AppendASCII[C Unit](dst []C, s string) []C {
	for i := 0; i < len(s); i++ {
		dst = append(dst, C(s[i]))
	}
	return dst
}
