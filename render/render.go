// Package render turns captured arguments into code units.
//
// Rendering is an exhaustive switch over the closed set of captured kinds: each kind maps
// to one routine through Dispatch. Numeric routines honour the spec width; text, char and
// bool routines ignore it.
package render

import (
	"errors"
	"reflect"

	"interp/capture"
	"interp/digits"
	"interp/internal/diagnostic"
	"interp/primitive"
	"interp/scan"
	"interp/units"
)

// Append renders arg into dst using spec.
func Append[C units.Unit](dst []C, arg capture.Arg[C], spec Spec) ([]C, error) {
	if arg.Err != nil && arg.Kind != 0 {
		return nil, diagnostic.New(diagnostic.CodeConversionFailure, "").Wrap(arg.Err)
	}

	v := arg.Value
	routine := Dispatch(arg.Kind)

	width := 0
	if routine.UsesWidth() {
		width = spec.Width
	}

	switch routine {
	case RoutinePointer:
		var p uintptr
		if v.IsValid() {
			p = v.Pointer()
		}
		return digits.AppendPointer(dst, p, width), nil

	case RoutineText:
		return appendText(dst, arg)

	case RoutineUnsigned:
		return digits.AppendUint(dst, v.Uint(), width), nil

	case RoutineSigned:
		return digits.AppendInt(dst, v.Int(), width), nil

	case RoutineChar:
		return appendRune(dst, rune(v.Int()))

	case RoutineFloat:
		precision := digits.DefaultPrecision
		if spec.HasPrecision {
			precision = spec.Precision
		}
		return digits.AppendFloat(dst, v.Float(), arg.Kind.Bits(), width, precision), nil

	case RoutineBool:
		if v.Bool() {
			return units.AppendASCII(dst, "true"), nil
		}
		return units.AppendASCII(dst, "false"), nil

	default:
		err := diagnostic.New(diagnostic.CodeUnsupportedType, "")
		if arg.Err != nil {
			return nil, err.Wrap(arg.Err)
		}
		if v.IsValid() {
			err.Message = v.Type().String()
		}
		return nil, err
	}
}

func appendText[C units.Unit](dst []C, arg capture.Arg[C]) ([]C, error) {
	v := arg.Value

	switch arg.Kind {
	case primitive.KindText:
		return append(dst, arg.Text...), nil
	case primitive.KindString:
		return appendString(dst, v.String())
	case primitive.KindUnits:
		return append(dst, unitsOf[C](v)...), nil
	}

	elem := v.Elem()
	switch {
	case elem.Kind() == reflect.String:
		return appendString(dst, elem.String())
	case elem.Kind() == reflect.Slice:
		return append(dst, unitsOf[C](elem)...), nil
	case elem.Type() == reflect.TypeOf(primitive.Char(0)):
		return appendRune(dst, rune(elem.Int()))
	default:
		return append(dst, elem.Convert(reflect.TypeOf(C(0))).Interface().(C)), nil
	}
}

func unitsOf[C units.Unit](v reflect.Value) []C {
	return v.Convert(reflect.TypeOf([]C(nil))).Interface().([]C)
}

func appendString[C units.Unit](dst []C, s string) ([]C, error) {
	out, err := units.AppendString(dst, s)
	if err != nil {
		return nil, diagnostic.New(diagnostic.CodeConversionFailure, "").Wrap(err)
	}
	return out, nil
}

func appendRune[C units.Unit](dst []C, r rune) ([]C, error) {
	out, err := units.AppendRune(dst, r)
	if err != nil {
		return nil, diagnostic.New(diagnostic.CodeConversionFailure, "").Wrap(err)
	}
	return out, nil
}

// Placeholder renders ph of tpl from table into dst and returns the template offset just
// past its closer.
func Placeholder[C units.Unit](dst, tpl []C, ph scan.Placeholder, table capture.Table[C]) ([]C, int, error) {
	var spec Spec
	if raw := scan.SpecOf(tpl, ph); raw != nil {
		var err error
		if spec, err = ParseSpec(raw); err != nil {
			return nil, 0, locate(err, ph)
		}
	}

	out, err := Append(dst, table[ph.Index], spec)
	if err != nil {
		return nil, 0, locate(err, ph)
	}

	return out, ph.Close + 1, nil
}

func locate(err error, ph scan.Placeholder) error {
	var derr *diagnostic.Error
	if errors.As(err, &derr) {
		return derr.At(ph.Open).Arg(ph.Index)
	}
	return err
}
