package toml

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders a key tree back to TOML source text. Comment/whitespace
// round-tripping is explicitly a non-goal (spec.md §1); this produces
// normalized TOML, not a byte-for-byte echo of whatever was parsed. It
// backs both `tomlcli fmt` and `tomlcli encode` (SPEC_FULL.md §4.10).
func Format(root *Key) string {
	var b strings.Builder
	formatTable(&b, root, nil)
	return b.String()
}

func formatTable(b *strings.Builder, k *Key, path []string) {
	var nested []*Key
	for _, id := range k.order {
		child := k.subkeys[id]
		switch child.Kind {
		case KindTable, KindTableLeaf, KindArrayTable:
			nested = append(nested, child)
		default:
			formatKeyValue(b, child)
		}
	}
	for _, child := range nested {
		childPath := append(append([]string{}, path...), child.ID)
		header := strings.Join(mapQuote(childPath), ".")
		switch child.Kind {
		case KindArrayTable:
			if child.Value != nil {
				for _, row := range child.Value.Array {
					fmt.Fprintf(b, "[[%s]]\n", header)
					formatTable(b, row.Table, childPath)
				}
			}
		default:
			fmt.Fprintf(b, "[%s]\n", header)
			formatTable(b, child, childPath)
		}
	}
}

func formatKeyValue(b *strings.Builder, k *Key) {
	fmt.Fprintf(b, "%s = ", quoteKey(k.ID))
	if k.Value != nil {
		b.WriteString(formatValue(k.Value))
	} else {
		b.WriteString(formatInlineTableContents(k))
	}
	b.WriteByte('\n')
}

// formatInlineTableContents renders a Key's subkeys as "{ a = 1, b = 2 }",
// used both for genuine InlineTable values and for KeyLeaf nodes that
// absorbed an inline table's entries (value is nil, subkeys populated).
func formatInlineTableContents(k *Key) string {
	parts := make([]string, 0, len(k.order))
	for _, id := range k.order {
		child := k.subkeys[id]
		var rhs string
		if child.Value != nil {
			rhs = formatValue(child.Value)
		} else {
			rhs = formatInlineTableContents(child)
		}
		parts = append(parts, fmt.Sprintf("%s = %s", quoteKey(child.ID), rhs))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func formatValue(v *Value) string {
	switch v.Kind {
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return formatFloatSource(v)
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	case KindString:
		return `"` + escapeBasicString(v.Str) + `"`
	case KindArray:
		parts := make([]string, 0, len(v.Array))
		for _, e := range v.Array {
			parts = append(parts, formatValue(e))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindInlineTable:
		return formatInlineTableContents(v.Table)
	case KindOffsetDateTime:
		return formatDateTime(v.DateTime, true)
	case KindLocalDateTime:
		return formatDateTime(v.DateTime, false)
	case KindLocalDate:
		return formatDate(v.DateTime)
	case KindLocalTime:
		return formatTimeOfDay(v.DateTime)
	default:
		return "null"
	}
}

func formatFloatSource(v *Value) string {
	f := v.Float
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	if v.FloatSci {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	prec := v.FloatPrec
	if prec == 0 {
		prec = 1
	}
	return strconv.FormatFloat(f, 'f', prec, 64)
}

func mapQuote(path []string) []string {
	out := make([]string, len(path))
	for i, p := range path {
		out[i] = quoteKey(p)
	}
	return out
}
