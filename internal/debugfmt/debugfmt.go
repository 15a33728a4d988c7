// Package debugfmt pretty-prints a parsed AST for CLI -v output and for
// failing-test diffs. It wraps github.com/alecthomas/repr, grounded on
// vippsas-sqlcode's use of the same library for structural debug
// printing of its SQL-document trees. This is a debug aid only; it never
// participates in parsing, dumping, or the redefinition rules.
package debugfmt

import "github.com/alecthomas/repr"

// Dump renders v (typically a *toml.Key) as an indented Go-literal-style
// tree, suitable for -v CLI output or a failing-test message.
func Dump(v any) string {
	return repr.String(v, repr.Indent("  "))
}
