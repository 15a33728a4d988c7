// Command encoder is a toml-test-style encoder: it reads the canonical
// tagged-JSON representation on stdin and writes TOML source to
// stdout. It is a thin shim over the gotoml library's own
// FromTaggedJSON/Format pair; unlike the teacher's original version it
// fully supports nested tables, arrays, and arrays of tables.
package main

import (
	"encoding/json"
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

	var tagged map[string]any
	if err := json.Unmarshal(data, &tagged); err != nil {
		fmt.Fprintf(os.Stderr, "error parsing JSON: %v\n", err)
		os.Exit(1)
	}

	root, err := toml.FromTaggedJSON(tagged)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fmt.Print(toml.Format(root))
}
