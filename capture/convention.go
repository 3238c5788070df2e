package capture

import (
	"errors"
	"reflect"
)

var (
	ErrNoConvention        = errors.New("type exposes no text conversion")
	ErrConventionSignature = errors.New("text conversion method has an unsupported signature")
)

// conventionNames are tried in order; the first method with a supported shape decides.
var conventionNames = []string{"String", "ToString", "Error", "MarshalText"}

// Convention describes how a user-defined type turns itself into text.
type Convention struct {
	Name       string
	OnPointer  bool // method has a pointer receiver and needs an addressable copy
	ReturnsRaw bool // method returns []byte instead of string
	HasErr     bool
}

// ParseConvention inspects t and returns the text conversion it exposes.
//
// Supports methods named String, ToString, Error or MarshalText with the shapes:
//   - func() string
//   - func() []byte
//   - func() (string, error)
//   - func() ([]byte, error)
func ParseConvention(t reflect.Type) (Convention, error) {
	if t == nil {
		return Convention{}, ErrNoConvention
	}

	// a method of the wrong shape does not hide a later name
	err := ErrNoConvention
	for _, name := range conventionNames {
		method, onPointer, ok := lookupMethod(t, name)
		if !ok {
			continue
		}

		conv, ok := parseSignature(method.Type)
		if !ok {
			err = ErrConventionSignature
			continue
		}

		conv.Name, conv.OnPointer = name, onPointer

		return conv, nil
	}

	return Convention{}, err
}

// parseSignature checks a method type taken from reflect.Type, which carries the receiver
// as its first input.
func parseSignature(fnType reflect.Type) (Convention, bool) {
	if fnType.NumIn() != 1 || fnType.NumOut() == 0 || fnType.NumOut() > 2 {
		return Convention{}, false
	}

	var conv Convention

	switch out := fnType.Out(0); {
	default:
		return Convention{}, false
	case out.Kind() == reflect.String:
	case out.Kind() == reflect.Slice && out.Elem().Kind() == reflect.Uint8:
		conv.ReturnsRaw = true
	}

	if fnType.NumOut() == 2 {
		if fnType.Out(1) != errorType {
			return Convention{}, false
		}
		conv.HasErr = true
	}

	return conv, true
}

func lookupMethod(t reflect.Type, name string) (reflect.Method, bool, bool) {
	if m, ok := t.MethodByName(name); ok {
		return m, false, true
	}

	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface {
		if m, ok := reflect.PointerTo(t).MethodByName(name); ok {
			return m, true, true
		}
	}

	return reflect.Method{}, false, false
}

// Convert invokes the convention on v.
func (c Convention) Convert(v reflect.Value) (string, error) {
	if c.OnPointer {
		addressable := reflect.New(v.Type())
		addressable.Elem().Set(v)
		v = addressable
	}

	out := v.MethodByName(c.Name).Call(nil)
	if c.HasErr && !out[1].IsNil() {
		return "", out[1].Interface().(error)
	}

	if c.ReturnsRaw {
		return string(out[0].Bytes()), nil
	}

	return out[0].String(), nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()
