// Package pool interns converted argument text so repeated values share one copy.
//
// Text is stored both as a Go string and as code-unit slices, one per unit type asked
// for. The pool never evicts: every distinct entry stays alive for the lifetime of the
// pool, and for the whole process when Default is used. Callers that format unbounded sets
// of distinct values should keep the engine's interning option off.
package pool

import (
	"reflect"

	"github.com/algorand/go-deadlock"

	"interp/units"
)

// WarnEvery is the growth step at which interning reports that the pool crossed a new
// multiple of entries.
const WarnEvery = 4096

// entry identifies a stored text; unit is nil for the Go string form.
type entry struct {
	text string
	unit reflect.Type
}

type Pool struct {
	mu    deadlock.Mutex
	items map[entry]any
}

var defaultPool = New()

// Default returns the process-wide pool.
func Default() *Pool {
	return defaultPool
}

func New() *Pool {
	return &Pool{items: make(map[entry]any)}
}

// Intern returns the stored copy equal to s, storing s first if it is new. grown is true
// when this call made the pool reach a new multiple of WarnEvery entries.
func (p *Pool) Intern(s string) (stored string, grown bool) {
	v, grown, _ := p.load(entry{text: s}, func() (any, error) { return s, nil })
	return v.(string), grown
}

// InternUnits returns the stored units of s in the unit type C, converting s on first
// use. Callers share the returned slice and must not modify it.
func InternUnits[C units.Unit](p *Pool, s string) (stored []C, grown bool, err error) {
	v, grown, err := p.load(entry{text: s, unit: reflect.TypeFor[C]()}, func() (any, error) {
		return units.FromString[C](s)
	})
	if err != nil {
		return nil, false, err
	}

	return v.([]C), grown, nil
}

func (p *Pool) load(key entry, create func() (any, error)) (any, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.items == nil {
		p.items = make(map[entry]any)
	}

	if existing, ok := p.items[key]; ok {
		return existing, false, nil
	}

	v, err := create()
	if err != nil {
		return nil, false, err
	}
	p.items[key] = v

	return v, len(p.items)%WarnEvery == 0, nil
}

func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.items)
}

// Reset drops every entry.
func (p *Pool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.items = make(map[entry]any)
}
