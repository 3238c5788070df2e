package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"interp/options"
)

func TestFlag(t *testing.T) {
	t.Parallel()

	f := options.FlagDefault
	assert.True(t, f.Has(options.FlagPrintf))
	assert.False(t, f.Has(options.FlagIntern))

	f = f.With(options.FlagIntern | options.FlagPercentAnywhere)
	assert.Equal(t, options.Flag(options.FlagAll), f)

	f = f.Without(options.FlagPrintf)
	assert.False(t, f.Has(options.FlagPrintf))
	assert.True(t, f.Has(options.FlagPercentAnywhere|options.FlagIntern))
	assert.True(t, f.Has(options.FlagNone))
}
