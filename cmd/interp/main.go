// Package main provides the CLI entrypoint for interp.
//
// interp renders a template with typed positional arguments:
//
//	interp "{0} is {1:05}" str:answer int:42
//	interp --units 16 "{0}" char:é
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
