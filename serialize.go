package toml

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Dump emits the canonical JSON-shaped serialization of a key node
// (spec.md §4.6), used as the conformance ground truth. Grounded on
// teacher's cmd/decoder/main.go (documentToTaggedJSON/valueToTagged/
// tagged/numberToTagged/datetimeToTagged), promoted from a CLI-only
// helper into the library proper.
func Dump(root *Key) ([]byte, error) {
	obj := subkeysToJSON(root)
	return json.MarshalIndent(obj, "", "  ")
}

func keyToJSON(k *Key) any {
	switch k.Kind {
	case KindArrayTable:
		var rows []any
		if k.Value != nil {
			rows = make([]any, 0, len(k.Value.Array))
			for _, row := range k.Value.Array {
				rows = append(rows, subkeysToJSON(row.Table))
			}
		}
		return rows
	case KindKeyLeaf:
		if k.Value != nil {
			return valueToJSON(k.Value)
		}
		return subkeysToJSON(k)
	default: // Table, TableLeaf, Key (container/root/inline-table)
		return subkeysToJSON(k)
	}
}

func subkeysToJSON(k *Key) map[string]any {
	out := make(map[string]any, len(k.order))
	for _, id := range k.order {
		out[id] = keyToJSON(k.subkeys[id])
	}
	return out
}

func tagged(typ, val string) map[string]string {
	return map[string]string{"type": typ, "value": val}
}

// valueToJSON converts a Value into its canonical tagged-JSON shape.
func valueToJSON(v *Value) any {
	switch v.Kind {
	case KindInteger:
		return tagged("integer", strconv.FormatInt(v.Int, 10))
	case KindFloat:
		return tagged("float", formatFloat(v))
	case KindBoolean:
		return tagged("bool", strconv.FormatBool(v.Bool))
	case KindString:
		return tagged("string", v.Str)
	case KindArray:
		arr := make([]any, 0, len(v.Array))
		for _, e := range v.Array {
			arr = append(arr, valueToJSON(e))
		}
		return arr
	case KindInlineTable:
		return subkeysToJSON(v.Table)
	case KindOffsetDateTime:
		return tagged("datetime", formatDateTime(v.DateTime, true))
	case KindLocalDateTime:
		return tagged("datetime-local", formatDateTime(v.DateTime, false))
	case KindLocalDate:
		return tagged("date-local", formatDate(v.DateTime))
	case KindLocalTime:
		return tagged("time-local", formatTimeOfDay(v.DateTime))
	default:
		return nil
	}
}

// formatFloat preserves inf/-inf/nan spellings, emits "0.0" literally,
// and uses %g-style scientific notation when the source used it.
func formatFloat(v *Value) string {
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
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	prec := v.FloatPrec
	if prec == 0 {
		prec = 1
	}
	return strconv.FormatFloat(f, 'f', prec, 64)
}

func formatDate(dt *DateTime) string {
	return fmt.Sprintf("%04d-%02d-%02d", dt.Year, dt.Month, dt.Day)
}

func formatTimeOfDay(dt *DateTime) string {
	s := fmt.Sprintf("%02d:%02d:%02d", dt.Hour, dt.Minute, dt.Second)
	if dt.HasFraction {
		s += "." + fractionString(dt)
	}
	return s
}

// fractionString zero-pads fractional seconds to at least three visible
// digits, per spec.md §4.4.
func fractionString(dt *DateTime) string {
	digits := dt.FractionDigits
	if digits < 3 {
		digits = 3
	}
	if digits > 9 {
		digits = 9
	}
	s := fmt.Sprintf("%09d", dt.Nanosecond)
	return s[:digits]
}

func formatDateTime(dt *DateTime, withOffset bool) string {
	sep := dt.Format
	if sep == "" {
		sep = "T"
	}
	s := formatDate(dt) + sep + formatTimeOfDay(dt)
	if !withOffset {
		return s
	}
	if dt.OffsetMinutes == 0 {
		return s + "Z"
	}
	sign := "+"
	m := dt.OffsetMinutes
	if m < 0 {
		sign = "-"
		m = -m
	}
	return s + fmt.Sprintf("%s%02d:%02d", sign, m/60, m%60)
}
