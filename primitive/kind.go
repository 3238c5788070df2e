package primitive

import (
	"math"
	"reflect"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the runtime tag of a captured argument. It is decided once at capture time
// and selects exactly one rendering routine.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (unsupported) value for KindEnum

	KindPointer     // opaque address
	KindUnits       // slice of code units of the template width
	KindString      // Go string
	KindTextPointer // pointer to string, unit slice, unit or Char
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUintptr
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindChar
	KindFloat32
	KindFloat64
	KindBool
	KindText // user-defined type converted through its text convention

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Char wraps a rune that must render as a character rather than as a number.
// Go spells rune as int32, so a bare rune argument renders as an integer.
type Char rune

func (k KindEnum) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k KindEnum) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64, KindUintptr:
		return true
	}
}

// IsText reports kinds rendered by verbatim insertion.
func (k KindEnum) IsText() bool {
	switch k {
	default:
		return false
	case KindUnits, KindString, KindTextPointer, KindText:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint, KindUintptr:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	}
}

var charType = reflect.TypeOf(Char(0))

// FromReflectType classifies rtype for a template whose code unit type is unit. Kinds are
// checked in capture priority: string-like, text pointer, pointer, arithmetic. Anything
// else yields zero; the caller decides whether a text convention applies.
func FromReflectType(rtype, unit reflect.Type) KindEnum {
	if rtype == nil {
		// untyped nil behaves like a nil pointer
		return KindPointer
	}

	switch rtype.Kind() {
	case reflect.String:
		return KindString
	case reflect.Slice:
		if rtype.Elem() == unit {
			return KindUnits
		}
		return 0
	case reflect.Pointer:
		if isTextPointee(rtype.Elem(), unit) {
			return KindTextPointer
		}
		return KindPointer
	case reflect.UnsafePointer:
		return KindPointer
	}

	if rtype == charType {
		return KindChar
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Uintptr:
		return KindUintptr
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Bool:
		return KindBool
	}
}

func isTextPointee(elem, unit reflect.Type) bool {
	switch {
	case elem.Kind() == reflect.String, elem == unit, elem == charType:
		return true
	case elem.Kind() == reflect.Slice && elem.Elem() == unit:
		return true
	default:
		return false
	}
}
