package units_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interp/units"
)

func TestWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, units.Width[byte]())
	assert.Equal(t, 2, units.Width[uint16]())
	assert.Equal(t, 4, units.Width[rune]())
	assert.Equal(t, 4, units.Width[uint32]())
}

func TestFromString(t *testing.T) {
	t.Parallel()

	t.Run("utf-8 keeps bytes", func(t *testing.T) {
		t.Parallel()

		got, err := units.FromString[byte]("hé")
		require.NoError(t, err)
		assert.Equal(t, []byte{'h', 0xC3, 0xA9}, got)
	})

	t.Run("utf-16 surrogate pair", func(t *testing.T) {
		t.Parallel()

		got, err := units.FromString[uint16]("a😀")
		require.NoError(t, err)
		if diff := cmp.Diff([]uint16{'a', 0xD83D, 0xDE00}, got); diff != "" {
			t.Errorf("FromString mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("utf-32 one unit per rune", func(t *testing.T) {
		t.Parallel()

		got, err := units.FromString[rune]("a😀")
		require.NoError(t, err)
		assert.Equal(t, []rune{'a', 0x1F600}, got)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "plain", "{0} brace", "Grüße, 世界 😀"} {
		u16, err := units.FromString[uint16](s)
		require.NoError(t, err)
		back, err := units.ToString(u16)
		require.NoError(t, err)
		assert.Equal(t, s, back)

		u32, err := units.FromString[uint32](s)
		require.NoError(t, err)
		back, err = units.ToString(u32)
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}
}

func TestAppendHelpers(t *testing.T) {
	t.Parallel()

	dst := units.AppendASCII([]uint16{'>'}, "true")
	assert.Equal(t, []uint16{'>', 't', 'r', 'u', 'e'}, dst)

	dst, err := units.AppendRune(dst, 'é')
	require.NoError(t, err)
	assert.Equal(t, uint16(0xE9), dst[len(dst)-1])

	b, err := units.AppendString([]byte("x="), "ü")
	require.NoError(t, err)
	assert.Equal(t, "x=ü", string(b))
}
