package interp_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interp"
	"interp/options"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		data  string
		flags options.Flag
		level string
	}{
		{"empty", "", options.FlagDefault, ""},
		{"percent anywhere", "percent_anywhere: true\n", options.FlagPrintf | options.FlagPercentAnywhere, ""},
		{"brace only", "printf: false\nintern: true\nlog_level: debug\n", options.FlagIntern, "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := interp.ParseConfig([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.flags, cfg.Flags())
			assert.Equal(t, tt.level, cfg.Log.Level)
		})
	}

	_, err := interp.ParseConfig([]byte("colour: blue\n"))
	assert.ErrorContains(t, err, "field colour not found")
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "interp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("printf: false\nlog_format: json\n"), 0o600))

	cfg, err := interp.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, options.Flag(options.FlagNone), cfg.Flags())
	assert.Equal(t, "json", cfg.Log.Format)

	_, err = interp.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config")
}

func TestConfigOptions(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	cfg := interp.DefaultConfig()
	cfg.PercentAnywhere = true
	cfg.Log.Level = "debug"
	cfg.Log.Output = &buf

	opts, err := cfg.Options()
	require.NoError(t, err)

	e := interp.New(opts...)
	got, err := e.Format("{0} %d", 5)
	require.NoError(t, err)
	assert.Equal(t, "{0} 5", got)
	assert.Contains(t, buf.String(), "mode=printf")

	cfg.Log.Level = "loud"
	_, err = cfg.Options()
	assert.Error(t, err)
}
