// Package capture erases interpolation arguments into a table of tagged values.
//
// Each argument is classified once, in priority order, into a primitive.KindEnum:
// string-like, pointer to text, other pointer, arithmetic, user-defined. The by-reference
// table (Capture) keeps a reflect.Value of the argument for the renderer; the by-value
// list (Values) feeds the printf fallback.
package capture

import (
	"fmt"
	"reflect"
	"unsafe"

	"interp/pool"
	"interp/primitive"
	"interp/units"
)

// Arg is one erased argument.
type Arg[C units.Unit] struct {
	Kind  primitive.KindEnum
	Value reflect.Value
	// Text is the converted text of a user-defined argument, owned by the call or shared
	// through the interning pool; it must not be modified.
	Text []C
	// Err records a failed text conversion; it surfaces only if a placeholder uses the
	// argument.
	Err error
}

// Table is the erased argument pack of one call.
type Table[C units.Unit] []Arg[C]

func (t Table[C]) Len() int {
	return len(t)
}

func (t Table[C]) Kind(i int) primitive.KindEnum {
	return t[i].Kind
}

// Options tune capture.
type Options struct {
	// Pool interns user-defined text when set; nil keeps text owned by the call.
	Pool *pool.Pool
	// OnGrow is called when interning makes the pool cross a growth step.
	OnGrow func(size int)
}

// Capture builds the by-reference table for args in a template of unit type C.
func Capture[C units.Unit](args []any, opts Options) Table[C] {
	unit := reflect.TypeOf(C(0))
	table := make(Table[C], len(args))

	for i, arg := range args {
		table[i] = captureOne[C](arg, unit, opts)
	}

	return table
}

func captureOne[C units.Unit](arg any, unit reflect.Type, opts Options) Arg[C] {
	v, kind := classify(arg, unit)
	if kind != 0 {
		return Arg[C]{Kind: kind, Value: v}
	}

	conv, err := ParseConvention(v.Type())
	if err != nil {
		// left unsupported; the renderer reports it if a placeholder refers to it
		return Arg[C]{Value: v, Err: fmt.Errorf("%s: %w", v.Type(), err)}
	}

	text, err := conv.Convert(v)
	if err != nil {
		return Arg[C]{Kind: primitive.KindText, Value: v, Err: fmt.Errorf("%s.%s: %w", v.Type(), conv.Name, err)}
	}

	var u []C
	if opts.Pool != nil {
		var grown bool
		u, grown, err = pool.InternUnits[C](opts.Pool, text)
		if grown && opts.OnGrow != nil {
			opts.OnGrow(opts.Pool.Len())
		}
	} else {
		u, err = units.FromString[C](text)
	}

	if err != nil {
		return Arg[C]{Kind: primitive.KindText, Value: v, Err: err}
	}

	return Arg[C]{Kind: primitive.KindText, Value: v, Text: u}
}

// classify tags arg; a nil text pointer has no text and falls back to an address.
func classify(arg any, unit reflect.Type) (reflect.Value, primitive.KindEnum) {
	v := reflect.ValueOf(arg)
	kind := primitive.FromReflectType(reflect.TypeOf(arg), unit)
	if kind == primitive.KindTextPointer && v.IsNil() {
		kind = primitive.KindPointer
	}

	return v, kind
}

// Values builds the by-value list handed to the printf fallback: arithmetic values as
// themselves, text of any width as Go strings, Char as rune, user-defined types as their
// converted text. Anything else is passed through untouched.
func Values[C units.Unit](args []any) ([]any, error) {
	unit := reflect.TypeOf(C(0))
	out := make([]any, len(args))

	for i, arg := range args {
		v, kind := classify(arg, unit)

		switch kind {
		default:
			out[i] = arg
		case primitive.KindString:
			out[i] = v.String()
		case primitive.KindUnits, primitive.KindTextPointer:
			text, err := TextOf[C](v)
			if err != nil {
				return nil, err
			}
			out[i] = text
		case primitive.KindChar:
			out[i] = rune(v.Int())
		case primitive.KindPointer:
			if arg == nil {
				out[i] = unsafe.Pointer(nil)
			} else {
				out[i] = arg
			}
		case 0:
			conv, err := ParseConvention(v.Type())
			if err != nil {
				out[i] = arg
				continue
			}

			text, err := conv.Convert(v)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", v.Type(), conv.Name, err)
			}
			out[i] = text
		}
	}

	return out, nil
}

// TextOf returns the UTF-8 text referenced by a string-like or text-pointer value.
func TextOf[C units.Unit](v reflect.Value) (string, error) {
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	switch {
	case v.Kind() == reflect.String:
		return v.String(), nil
	case v.Type() == reflect.TypeOf(primitive.Char(0)):
		return string(rune(v.Int())), nil
	case v.Kind() == reflect.Slice:
		return units.ToString(v.Convert(reflect.TypeOf([]C(nil))).Interface().([]C))
	default:
		return units.ToString([]C{v.Convert(reflect.TypeOf(C(0))).Interface().(C)})
	}
}
