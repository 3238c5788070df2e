package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"interp"
	"interp/capture"
	"interp/internal/common"
	"interp/options"
	"interp/units"
)

type rootFlags struct {
	config          string
	units           int
	percentAnywhere bool
	noPrintf        bool
	dump            bool
	verbose         bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "interp [flags] TEMPLATE [ARG...]",
		Short: "Render a template with positional brace placeholders",
		Long: `Render TEMPLATE with the given arguments and print the result.

Arguments are strings unless prefixed with a type:
  int: int8: int16: int32: int64: uint: uint8: uint16: uint32: uint64:
  float32: float64: float: bool: char: str:`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			template, _ := common.First(args)
			err := run(cmd, flags, template, args[1:])
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "interp:", err)
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.config, "config", "", "YAML config file")
	f.IntVar(&flags.units, "units", 8, "code unit width used for rendering: 8, 16 or 32")
	f.BoolVar(&flags.percentAnywhere, "percent-anywhere", false, "any '%' selects printf rendering")
	f.BoolVar(&flags.noPrintf, "no-printf", false, "never use printf rendering")
	f.BoolVar(&flags.dump, "dump", false, "dump the captured arguments to stderr")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging to stderr")

	return cmd
}

func run(cmd *cobra.Command, flags rootFlags, template string, raw []string) error {
	engine, err := newEngine(cmd, flags)
	if err != nil {
		return err
	}

	args, err := parseArgs(raw)
	if err != nil {
		return err
	}

	if flags.dump {
		dump(cmd, args)
	}

	var out string
	switch flags.units {
	case 8:
		out, err = render[byte](engine, template, args)
	case 16:
		out, err = render[uint16](engine, template, args)
	case 32:
		out, err = render[rune](engine, template, args)
	default:
		return fmt.Errorf("--units %d: %w", flags.units, units.ErrUnsupportedWidth)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func newEngine(cmd *cobra.Command, flags rootFlags) (*interp.Engine, error) {
	cfg := interp.DefaultConfig()
	if flags.config != "" {
		var err error
		if cfg, err = interp.LoadConfig(flags.config); err != nil {
			return nil, err
		}
	}

	if flags.percentAnywhere {
		cfg.PercentAnywhere = true
	}
	if flags.noPrintf {
		cfg.Printf = false
	}
	if flags.verbose {
		cfg.Log.Level = logrus.DebugLevel.String()
	}
	if cfg.Log.Level != "" || cfg.Log.Format != "" {
		cfg.Log.Output = cmd.ErrOrStderr()
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	e := interp.New(opts...)

	if flags.percentAnywhere && !e.Flags().Has(options.FlagPrintf) {
		return nil, fmt.Errorf("--percent-anywhere has no effect with printf rendering disabled")
	}

	return e, nil
}

func render[C units.Unit](e *interp.Engine, template string, args []any) (string, error) {
	tpl, err := units.FromString[C](template)
	if err != nil {
		return "", err
	}

	out, err := interp.InterpolateWith(e, tpl, args...)
	if err != nil {
		return "", err
	}

	return units.ToString(out)
}

type dumpEntry struct {
	Index int
	Kind  string
	Value any
}

func dump(cmd *cobra.Command, args []any) {
	table := capture.Capture[byte](args, capture.Options{})

	entries := make([]dumpEntry, len(table))
	for i, arg := range table {
		entries[i] = dumpEntry{Index: i, Kind: arg.Kind.String(), Value: args[i]}
	}

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	cfg.Fdump(cmd.ErrOrStderr(), entries)
}
