package options

type Flag int

const (
	FlagPrintf          Flag = 1 << iota // a template starting its directives with '%' is rendered by fmt
	FlagPercentAnywhere                  // any '%' selects printf rendering, even after a placeholder
	FlagIntern                           // user-defined text is interned in a shared pool

	FlagAll     = (1 << iota) - 1 // all flags combined
	FlagNone    = 0               // brace rendering only, owned text
	FlagDefault = FlagPrintf
)

// Has reports whether every bit of other is set.
func (f Flag) Has(other Flag) bool {
	return f&other == other
}

// With returns f with other set.
func (f Flag) With(other Flag) Flag {
	return f | other
}

// Without returns f with other cleared.
func (f Flag) Without(other Flag) Flag {
	return f &^ other
}
