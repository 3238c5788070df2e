package interp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"interp/logging"
	"interp/options"
)

// Config is the YAML form of the engine options.
//
//	printf: true
//	percent_anywhere: false
//	intern: false
//	log_level: warn
//	log_format: text
type Config struct {
	Printf          bool `yaml:"printf"`
	PercentAnywhere bool `yaml:"percent_anywhere"`
	Intern          bool `yaml:"intern"`

	Log logging.Config `yaml:",inline"`
}

// DefaultConfig matches the engine returned by New without options.
func DefaultConfig() Config {
	return Config{Printf: true}
}

// LoadConfig reads a YAML config file. Keys left out keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// ParseConfig decodes YAML config data, rejecting unknown keys.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Flags returns the engine flags selected by c.
func (c Config) Flags() options.Flag {
	flags := options.Flag(options.FlagNone)
	if c.Printf {
		flags = flags.With(options.FlagPrintf)
	}
	if c.PercentAnywhere {
		flags = flags.With(options.FlagPercentAnywhere)
	}
	if c.Intern {
		flags = flags.With(options.FlagIntern)
	}

	return flags
}

// Options returns the engine options described by c. The shared logger is kept unless a
// log level or format is set.
func (c Config) Options() ([]Option, error) {
	opts := []Option{WithFlags(c.Flags())}

	if c.Log.Level != "" || c.Log.Format != "" || c.Log.Output != nil {
		log, err := logging.New(c.Log)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLogger(log))
	}

	return opts, nil
}
