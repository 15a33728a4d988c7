package toml

import (
	"fmt"
	"strings"
)

// ValueKind tags the variant stored in a Value, per spec.md §3's Value
// variant list.
type ValueKind int

const (
	KindInteger ValueKind = iota
	KindFloat
	KindBoolean
	KindString
	KindArray
	KindInlineTable
	KindOffsetDateTime
	KindLocalDateTime
	KindLocalDate
	KindLocalTime
)

func (k ValueKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindInlineTable:
		return "inline-table"
	case KindOffsetDateTime:
		return "offset-datetime"
	case KindLocalDateTime:
		return "local-datetime"
	case KindLocalDate:
		return "local-date"
	case KindLocalTime:
		return "local-time"
	default:
		return "unknown"
	}
}

// DateTime is the broken-down date/time record shared by the four
// datetime Value kinds. Both Open Questions from spec.md §9 are resolved
// here: integers live in Value.Int (int64, no precision loss above 2^53 —
// see Value below) and the UTC offset is stored explicitly as a signed
// minute count rather than folded into UTC.
type DateTime struct {
	Year, Month, Day          int
	Hour, Minute, Second      int
	Nanosecond                int  // fractional-second magnitude, 0 if absent
	HasFraction               bool
	FractionDigits            int  // number of digits as written, for round-trip
	OffsetMinutes             int  // signed minutes from UTC; meaningful only if HasOffset
	HasOffset                 bool
	Format                    string // original separator spelling ("T", "t", " ") for re-emission
}

// Value is the tagged record described in spec.md §3. Only the fields
// relevant to Kind are populated; zero values elsewhere.
type Value struct {
	Kind ValueKind

	Int int64 // Integer: dedicated 64-bit field, see DESIGN.md Open Question 1

	Float      float64
	FloatPrec  int  // digits after the decimal point, 0 if none
	FloatSci   bool // scientific notation, for round-trip emission

	Bool bool

	Str string // String: UTF-8 payload

	Array []*Value // Array: ordered, heterogeneous elements permitted

	Table *Key // InlineTable: owns a key node holding the entries

	DateTime *DateTime
}

func newIntValue(v int64) *Value  { return &Value{Kind: KindInteger, Int: v} }
func newBoolValue(v bool) *Value  { return &Value{Kind: KindBoolean, Bool: v} }
func newStringValue(s string) *Value {
	return &Value{Kind: KindString, Str: s}
}

func newFloatValue(v float64, prec int, sci bool) *Value {
	return &Value{Kind: KindFloat, Float: v, FloatPrec: prec, FloatSci: sci}
}

func newArrayValue(elems []*Value) *Value {
	return &Value{Kind: KindArray, Array: elems}
}

// newInlineTableValue places entries, the key node holding the inline
// table's subkeys, inside the value as its Table. The node is used as is,
// not copied.
func newInlineTableValue(entries *Key) *Value {
	return &Value{Kind: KindInlineTable, Table: entries}
}

func newDateTimeValue(kind ValueKind, dt *DateTime) *Value {
	return &Value{Kind: kind, DateTime: dt}
}

// NewString, NewInteger, NewFloat and NewBool are the public scalar
// constructors for the mutation API (spec.md §4.12/§4.13), grounded on
// teacher's mutate.go constructors of the same names.
func NewString(s string) *Value { return newStringValue(s) }
func NewInteger(v int64) *Value { return newIntValue(v) }
func NewBool(v bool) *Value     { return newBoolValue(v) }

// NewFloat builds a Float value, choosing sane defaults for precision
// and scientific-notation flags from the Go value alone.
func NewFloat(v float64) *Value {
	prec := 1
	s := fmt.Sprintf("%v", v)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		prec = len(s) - i - 1
	}
	return newFloatValue(v, prec, strings.ContainsAny(s, "eE"))
}

// NewArray builds an Array value from already-constructed elements.
func NewArray(elems ...*Value) *Value { return newArrayValue(elems) }
