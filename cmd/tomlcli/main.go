// Command tomlcli is a small front-end over the gotoml library: decode
// TOML to canonical JSON, encode canonical JSON back to TOML, or
// reformat TOML source.
package main

import (
	"fmt"
	"os"

	"github.com/djoezeke/gotoml/cmd/tomlcli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
