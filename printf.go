package interp

import (
	"fmt"
	"strings"

	"interp/capture"
	"interp/internal/diagnostic"
	"interp/units"
)

// badVerb is how fmt reports a verb it could not apply.
const badVerb = "%!"

// printf renders tpl with fmt after converting it to UTF-8. Arguments are passed by value:
// text of any width as Go strings, Char as rune, user-defined types as their text.
func printf[C units.Unit](tpl []C, args []any) ([]C, error) {
	values, err := capture.Values[C](args)
	if err != nil {
		return nil, diagnostic.New(diagnostic.CodeConversionFailure, "").Wrap(err)
	}

	format, err := units.ToString(tpl)
	if err != nil {
		return nil, diagnostic.New(diagnostic.CodeConversionFailure, "template").Wrap(err)
	}

	directives, explicit := countDirectives(format)
	if !explicit && directives != len(values) {
		return nil, diagnostic.New(diagnostic.CodeConversionFailure,
			"%d directives for %d arguments", directives, len(values))
	}

	text := fmt.Sprintf(format, values...)

	expected := strings.Count(format, "%"+badVerb)
	for _, v := range values {
		expected += strings.Count(fmt.Sprint(v), badVerb)
	}
	if strings.Count(text, badVerb) > expected {
		return nil, diagnostic.New(diagnostic.CodeConversionFailure, "bad directive in %q", text)
	}

	out, err := units.FromString[C](text)
	if err != nil {
		return nil, diagnostic.New(diagnostic.CodeConversionFailure, "result").Wrap(err)
	}

	return out, nil
}

// countDirectives returns how many arguments format consumes, counting '*' widths and
// precisions. explicit is true when an argument index like %[2]d appears, in which case
// the count is not meaningful.
func countDirectives(format string) (n int, explicit bool) {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}

		i++
		if i < len(format) && format[i] == '%' {
			continue
		}

		for i < len(format) && strings.IndexByte("+-# 0", format[i]) >= 0 {
			i++
		}

		i, n, explicit = skipOperand(format, i, n, explicit)
		if i < len(format) && format[i] == '.' {
			i, n, explicit = skipOperand(format, i+1, n, explicit)
		}

		if i < len(format) && format[i] == '[' {
			explicit = true
		}

		// the verb itself, or a dangling '%' that fmt reports as missing
		n++
	}

	return n, explicit
}

// skipOperand skips an argument index, then a '*' or a run of digits.
func skipOperand(format string, i, n int, explicit bool) (int, int, bool) {
	if i < len(format) && format[i] == '[' {
		explicit = true
		if end := strings.IndexByte(format[i:], ']'); end >= 0 {
			i += end + 1
		}
	}

	if i < len(format) && format[i] == '*' {
		return i + 1, n + 1, explicit
	}

	for i < len(format) && '0' <= format[i] && format[i] <= '9' {
		i++
	}

	return i, n, explicit
}
