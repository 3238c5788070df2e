package interp

import (
	"slices"

	"github.com/sirupsen/logrus"

	"interp/capture"
	"interp/internal/common"
	"interp/logging"
	"interp/options"
	"interp/pool"
	"interp/render"
	"interp/scan"
	"interp/units"
)

// Engine holds the rendering options shared by many calls. An Engine is immutable after
// New and safe for concurrent use.
type Engine struct {
	flags options.Flag
	pool  *pool.Pool
	log   logrus.FieldLogger
}

var defaultEngine = New()

// New returns an engine with options.FlagDefault, the shared logger and no interning,
// adjusted by opts.
func New(opts ...Option) *Engine {
	e := &Engine{flags: options.FlagDefault}
	for _, opt := range opts {
		opt(e)
	}

	if e.log == nil {
		e.log = logging.Base()
	}

	switch {
	case e.pool != nil:
		e.flags = e.flags.With(options.FlagIntern)
	case e.flags.Has(options.FlagIntern):
		e.pool = pool.Default()
	}

	return e
}

// Default returns the engine used by Interpolate and Format.
func Default() *Engine {
	return defaultEngine
}

func (e *Engine) Flags() options.Flag {
	return e.flags
}

// Interpolate renders tpl with args using the default engine.
func Interpolate[C units.Unit](tpl []C, args ...any) ([]C, error) {
	return InterpolateWith(defaultEngine, tpl, args...)
}

// InterpolateWith renders tpl with args using e; a nil e is the default engine. The
// result has the unit width of tpl and is nil on error.
func InterpolateWith[C units.Unit](e *Engine, tpl []C, args ...any) ([]C, error) {
	if e == nil {
		e = defaultEngine
	}

	log := e.log.WithFields(logrus.Fields{"units": units.Width[C]() * 8, "args": len(args)})

	var (
		out  []C
		err  error
		mode = "brace"
	)

	if printfMode(e.flags, tpl, len(args)) {
		mode = "printf"
		out, err = printf(tpl, args)
	} else {
		out, err = brace(e, tpl, args)
	}

	log = log.WithField("mode", mode)
	if err != nil {
		log.WithError(err).Debug("interpolation failed")
		return nil, err
	}

	log.Debug("interpolated")

	return out, nil
}

// printfMode selects fmt rendering for tpl. By default the first of '%' and an unescaped
// opener decides; options.FlagPercentAnywhere lets any '%' decide. A call without
// arguments always renders braces, so literal text passes through unchanged.
func printfMode[C units.Unit](flags options.Flag, tpl []C, nargs int) bool {
	switch {
	case !flags.Has(options.FlagPrintf), nargs == 0:
		return false
	case flags.Has(options.FlagPercentAnywhere):
		return slices.Contains(tpl, C(scan.Percent))
	default:
		return scan.PercentFirst(tpl)
	}
}

func brace[C units.Unit](e *Engine, tpl []C, args []any) ([]C, error) {
	table := capture.Capture[C](args, e.captureOptions())

	placeholders, err := scan.Scan(tpl, table)
	if err != nil {
		return nil, err
	}

	if common.IsEmpty(placeholders) {
		return scan.AppendLiteral(make([]C, 0, len(tpl)), tpl), nil
	}

	out := make([]C, 0, len(tpl)+8*len(placeholders))
	cursor := 0

	for _, ph := range placeholders {
		out = scan.AppendLiteral(out, tpl[cursor:ph.Open])

		if out, cursor, err = render.Placeholder(out, tpl, ph, table); err != nil {
			return nil, err
		}
	}

	return scan.AppendLiteral(out, tpl[cursor:]), nil
}

func (e *Engine) captureOptions() capture.Options {
	if !e.flags.Has(options.FlagIntern) {
		return capture.Options{}
	}

	return capture.Options{
		Pool: e.pool,
		OnGrow: func(size int) {
			e.log.WithField("entries", size).Warn("interning pool keeps growing")
		},
	}
}

// Format renders a UTF-8 template.
func (e *Engine) Format(tpl string, args ...any) (string, error) {
	out, err := InterpolateWith(e, []byte(tpl), args...)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// Format renders a UTF-8 template with the default engine.
func Format(tpl string, args ...any) (string, error) {
	return defaultEngine.Format(tpl, args...)
}

// MustFormat is like Format but panics on error.
func MustFormat(tpl string, args ...any) string {
	out, err := Format(tpl, args...)
	if err != nil {
		panic(err)
	}

	return out
}
