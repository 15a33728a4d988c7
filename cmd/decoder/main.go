// Command decoder is a toml-test-style decoder: it reads TOML on stdin
// and writes the canonical tagged-JSON representation to stdout. It is
// a thin shim over the gotoml library's own Parse/Dump pair, kept
// separate from cmd/tomlcli because toml-test invokes decoder/encoder
// binaries directly by name.
package main

import (
	"fmt"
	"io"
	"os"

	toml "github.com/djoezeke/gotoml"
)

func main() {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading stdin: %v\n", err)
		os.Exit(1)
	}

	root, err := toml.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	out, err := toml.Dump(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error marshaling JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(out))
}
