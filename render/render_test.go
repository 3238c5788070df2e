package render_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interp/capture"
	"interp/digits"
	"interp/internal/diagnostic"
	"interp/primitive"
	"interp/render"
	"interp/scan"
)

type celsius float64

func (c celsius) String() string { return strconv.FormatFloat(float64(c), 'f', 1, 64) + "°C" }

type reading struct{ c celsius }

func (r reading) String() string { return "reading " + r.c.String() }

type opaque struct{}

func (opaque) MarshalText() ([]byte, error) { return nil, errors.New("sealed") }

func TestDispatch(t *testing.T) {
	t.Parallel()

	assert.Equal(t, render.RoutineUnknown, render.Dispatch(0))
	assert.Equal(t, render.RoutinePointer, render.Dispatch(primitive.KindPointer))
	assert.Equal(t, render.RoutineText, render.Dispatch(primitive.KindTextPointer))
	assert.Equal(t, render.RoutineUnsigned, render.Dispatch(primitive.KindUintptr))
	assert.Equal(t, render.RoutineSigned, render.Dispatch(primitive.KindInt8))
	assert.Equal(t, render.RoutineChar, render.Dispatch(primitive.KindChar))
	assert.Equal(t, render.RoutineFloat, render.Dispatch(primitive.KindFloat32))
	assert.Equal(t, render.RoutineBool, render.Dispatch(primitive.KindBool))

	for kind := primitive.KindEnum(1); int(kind) < primitive.KindTotal; kind++ {
		assert.NotEqual(t, render.RoutineUnknown, render.Dispatch(kind), kind.String())
	}

	assert.True(t, render.RoutineFloat.UsesWidth())
	assert.False(t, render.RoutineText.UsesWidth())
}

func TestParseSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want render.Spec
		err  string
	}{
		{raw: "5", want: render.Spec{Width: 5}},
		{raw: "05", want: render.Spec{Width: 5}},
		{raw: "8.2", want: render.Spec{Width: 8, Precision: 2, HasPrecision: true}},
		{raw: ".0", want: render.Spec{HasPrecision: true}},
		{raw: "", err: "malformed placeholder: empty spec"},
		{raw: "x", err: `malformed placeholder: invalid width "x"`},
		{raw: "5.", err: `malformed placeholder: invalid precision "5."`},
		{raw: "5.2.1", err: `malformed placeholder: invalid precision "5.2.1"`},
		{raw: "99999999", err: `malformed placeholder: invalid width "99999999"`},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			got, err := render.ParseSpec([]byte(tt.raw))
			if tt.err != "" {
				assert.EqualError(t, err, tt.err)
				assert.ErrorIs(t, err, diagnostic.ErrMalformedPlaceholder)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppend(t *testing.T) {
	t.Parallel()

	text := "pointee"
	var nilInt *int

	tests := []struct {
		name string
		arg  any
		spec render.Spec
		want string
	}{
		{"int padded", 42, render.Spec{Width: 5}, "00042"},
		{"negative padded", -42, render.Spec{Width: 5}, "-0042"},
		{"narrow width", 12345, render.Spec{Width: 2}, "12345"},
		{"uint8", uint8(255), render.Spec{}, "255"},
		{"uintptr", uintptr(16), render.Spec{}, "16"},
		{"float default precision", 3.14159, render.Spec{}, "3.141590"},
		{"float precision", 2.675, render.Spec{Precision: 1, HasPrecision: true}, "2.7"},
		{"float width and precision", -1.5, render.Spec{Width: 7, Precision: 2, HasPrecision: true}, "-001.50"},
		{"float32", float32(0.5), render.Spec{}, "0.500000"},
		{"bool ignores width", true, render.Spec{Width: 9}, "true"},
		{"false", false, render.Spec{}, "false"},
		{"char", primitive.Char('Z'), render.Spec{}, "Z"},
		{"string ignores width", "abc", render.Spec{Width: 9}, "abc"},
		{"text pointer", &text, render.Spec{}, "pointee"},
		{"units", []byte("view"), render.Spec{}, "view"},
		{"nil pointer", nilInt, render.Spec{}, strings.Repeat("0", digits.PointerDigits)},
		{"untyped nil", nil, render.Spec{Width: 4}, "0000"},
		{"named float stays arithmetic", celsius(21.5), render.Spec{}, "21.500000"},
		{"user defined", reading{21.5}, render.Spec{Width: 30}, "reading 21.5°C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table := capture.Capture[byte]([]any{tt.arg}, capture.Options{})
			got, err := render.Append([]byte(">"), table[0], tt.spec)
			require.NoError(t, err)
			assert.Equal(t, ">"+tt.want, string(got))
		})
	}
}

func TestAppendWide(t *testing.T) {
	t.Parallel()

	s := "ü"
	c := primitive.Char('€')
	u := uint16('x')

	table := capture.Capture[uint16]([]any{&s, &c, &u, []uint16{'o', 'k'}, primitive.Char('😀')}, capture.Options{})

	var got []uint16
	for _, arg := range table {
		var err error
		got, err = render.Append(got, arg, render.Spec{})
		require.NoError(t, err)
	}

	assert.Equal(t, []uint16{0xFC, 0x20AC, 'x', 'o', 'k', 0xD83D, 0xDE00}, got)
}

func TestAppendErrors(t *testing.T) {
	t.Parallel()

	table := capture.Capture[rune]([]any{complex(1, 2), opaque{}, map[string]int{}}, capture.Options{})

	got, err := render.Append(nil, table[0], render.Spec{})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, diagnostic.ErrUnsupportedType)
	assert.ErrorIs(t, err, capture.ErrNoConvention)

	got, err = render.Append(nil, table[1], render.Spec{})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, diagnostic.ErrConversionFailure)
	assert.EqualError(t, err, "conversion failure: render_test.opaque.MarshalText: sealed")

	_, err = render.Append(nil, table[2], render.Spec{})
	assert.Equal(t, diagnostic.CodeUnsupportedType, diagnostic.CodeOf(err))
}

func TestPlaceholder(t *testing.T) {
	t.Parallel()

	tpl := []byte("x{1:04}y{0:}z{0:.2x}")
	table := capture.Capture[byte]([]any{1.0, 7}, capture.Options{})

	phs, err := scan.Scan(tpl, table)
	require.NoError(t, err)
	require.Len(t, phs, 3)

	out, next, err := render.Placeholder([]byte("x"), tpl, phs[0], table)
	require.NoError(t, err)
	assert.Equal(t, "x0007", string(out))
	assert.Equal(t, 7, next)
	assert.Equal(t, byte('y'), tpl[next])

	out, _, err = render.Placeholder(nil, tpl, phs[1], table)
	assert.Nil(t, out)
	assert.EqualError(t, err, "malformed placeholder at 8 (argument 0): empty spec")

	_, _, err = render.Placeholder(nil, tpl, phs[2], table)
	assert.EqualError(t, err, `malformed placeholder at 13 (argument 0): invalid precision ".2x"`)
}
