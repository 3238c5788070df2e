package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"interp/primitive"
	"interp/utils"
)

// parsers convert the text after a type prefix. An argument without a known prefix is a
// plain string.
var parsers = map[string]func(string) (any, error){
	"str": func(s string) (any, error) { return s, nil },
	"int": func(s string) (any, error) {
		v, err := strconv.ParseInt(s, 10, strconv.IntSize)
		return int(v), err
	},
	"int8":  signed(8, func(v int64) any { return int8(v) }),
	"int16": signed(16, func(v int64) any { return int16(v) }),
	"int32": signed(32, func(v int64) any { return int32(v) }),
	"int64": signed(64, func(v int64) any { return v }),
	"uint": func(s string) (any, error) {
		v, err := strconv.ParseUint(s, 10, strconv.IntSize)
		return uint(v), err
	},
	"uint8":   unsigned(8, func(v uint64) any { return uint8(v) }),
	"uint16":  unsigned(16, func(v uint64) any { return uint16(v) }),
	"uint32":  unsigned(32, func(v uint64) any { return uint32(v) }),
	"uint64":  unsigned(64, func(v uint64) any { return v }),
	"float32": func(s string) (any, error) {
		v, err := strconv.ParseFloat(s, 32)
		return float32(v), err
	},
	"float64": parseFloat64,
	"float":   parseFloat64,
	"bool": func(s string) (any, error) {
		return strconv.ParseBool(s)
	},
	"char": func(s string) (any, error) {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError || size != len(s) {
			return nil, fmt.Errorf("want exactly one character, got %q", s)
		}
		return primitive.Char(r), nil
	},
}

func signed(bits int, wrap func(int64) any) func(string) (any, error) {
	return func(s string) (any, error) {
		v, err := strconv.ParseInt(s, 10, bits)
		return wrap(v), err
	}
}

func unsigned(bits int, wrap func(uint64) any) func(string) (any, error) {
	return func(s string) (any, error) {
		v, err := strconv.ParseUint(s, 10, bits)
		return wrap(v), err
	}
}

func parseFloat64(s string) (any, error) {
	return strconv.ParseFloat(s, 64)
}

func parseArgs(raw []string) ([]any, error) {
	out := make([]any, len(raw))

	for i, arg := range raw {
		parts := strings.SplitN(arg, ":", 2)
		prefix, value := utils.Unpack2(parts)

		parse, ok := parsers[prefix]
		if len(parts) < 2 || !ok {
			out[i] = arg
			continue
		}

		v, err := parse(value)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, arg, err)
		}
		out[i] = v
	}

	return out, nil
}
