// Package toml implements a TOML v1.0.0 parser and serializer: a
// character-level tokenizer, a recursive-descent structural parser, a
// typed value/key model with TOML's key-redefinition rules, and a
// canonical JSON-shaped dump format used for conformance testing.
//
// The core is single-threaded and purely synchronous; see
// SPEC_FULL.md §5 for the resource/ownership model.
package toml

import (
	"io"
	"os"
)

// Parse produces the AST from a raw byte buffer, or an error — the
// `parse` operation of spec.md §6. This is the core entry point; Load,
// LoadFile and LoadString are the I/O façade spec.md §1 explicitly scopes
// outside the core, reading an external source into memory and handing
// the bytes to Parse, whose tokenizer appends the end-of-input sentinel
// itself. The core never logs on its
// own (SPEC_FULL.md §4.8) — that's the façade's job, below.
func Parse(src []byte) (*Key, error) {
	return parseDocument(src)
}

// logOnFailure runs parse and logs through logging.go before returning,
// keeping Parse itself silent per the façade/core logging split.
func logOnFailure(parse func() (*Key, error)) (*Key, error) {
	root, err := parse()
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			logParseError(pe)
		}
		return nil, err
	}
	return root, nil
}

// Load reads all of r and parses it.
func Load(r io.Reader) (*Key, error) {
	return logOnFailure(func() (*Key, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, ioErr("reading input: %v", err)
		}
		return Parse(data)
	})
}

// LoadFile reads path and parses it, grounded on the original's
// toml_load_file_name.
func LoadFile(path string) (*Key, error) {
	return logOnFailure(func() (*Key, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, ioErr("opening %s: %v", path, err)
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, ioErr("reading %s: %v", path, err)
		}
		return Parse(data)
	})
}

// LoadString parses an in-memory TOML document, grounded on the
// original's toml_loads.
func LoadString(s string) (*Key, error) {
	return logOnFailure(func() (*Key, error) {
		return Parse([]byte(s))
	})
}
