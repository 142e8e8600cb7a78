// Package value implements the typed codec for a single flag or positional value.
// Every dialect shares it: decoding turns a raw argument token into a Value of a
// declared Kind, and encoding turns a Value back into its canonical token.
package value

import (
	"strconv"
)

// Kind identifies the value type a flag or positional carries.
type Kind int

// Kind values.
const (
	// Presence flags carry no value: their existence is the value.
	Presence Kind = iota
	Bool
	Int8
	Int16
	Int32
	Int64
	UInt8
	String
)

// String returns the lower-case kind name, e.g. "int32".
func (k Kind) String() string {
	switch k {
	case Presence:
		return "presence"
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case UInt8:
		return "uint8"
	case String:
		return "string"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// IsInteger reports whether the kind is one of the integer widths.
func (k Kind) IsInteger() bool {
	switch k {
	case Int8, Int16, Int32, Int64, UInt8:
		return true
	default:
		return false
	}
}

// Limits returns the representable range of an integer kind.
// Non-integer kinds report an empty range.
func (k Kind) Limits() (lo, hi int64) {
	switch k {
	case Int8:
		return -1 << 7, 1<<7 - 1
	case Int16:
		return -1 << 15, 1<<15 - 1
	case Int32:
		return -1 << 31, 1<<31 - 1
	case Int64:
		return -1 << 63, 1<<63 - 1
	case UInt8:
		return 0, 1<<8 - 1
	default:
		return 0, -1
	}
}

// Range is an inclusive bound applied on top of a kind's own limits.
type Range struct {
	Min int64
	Max int64
}

// Between returns the inclusive range [lo, hi].
func Between(lo, hi int64) *Range {
	return &Range{Min: lo, Max: hi}
}

// AtLeast returns a range with only a lower bound.
func AtLeast(lo int64) *Range {
	return &Range{Min: lo, Max: 1<<63 - 1}
}

// Contains reports whether n lies within the range. A nil range contains everything.
func (r *Range) Contains(n int64) bool {
	if r == nil {
		return true
	}

	return n >= r.Min && n <= r.Max
}

// Value is a decoded, typed value. The zero Value has kind Presence.
// Values are comparable with ==.
type Value struct {
	kind Kind
	b    bool
	n    int64
	s    string
}

// OfBool returns a Bool value.
func OfBool(b bool) Value { return Value{kind: Bool, b: b} }

// OfInt16 returns an Int16 value.
func OfInt16(n int16) Value { return Value{kind: Int16, n: int64(n)} }

// OfInt32 returns an Int32 value.
func OfInt32(n int32) Value { return Value{kind: Int32, n: int64(n)} }

// OfInt64 returns an Int64 value.
func OfInt64(n int64) Value { return Value{kind: Int64, n: n} }

// OfInt8 returns an Int8 value.
func OfInt8(n int8) Value { return Value{kind: Int8, n: int64(n)} }

// OfString returns a String value.
func OfString(s string) Value { return Value{kind: String, s: s} }

// OfUInt8 returns a UInt8 value.
func OfUInt8(n uint8) Value { return Value{kind: UInt8, n: int64(n)} }

// OfInt returns an integer value of kind k, failing when n does not fit k.
func OfInt(k Kind, n int64) (Value, error) {
	if !k.IsInteger() {
		return Value{}, kindError(k, Int64)
	}

	lo, hi := k.Limits()
	if n < lo || n > hi {
		return Value{}, rangeError(n, lo, hi)
	}

	return Value{kind: k, n: n}, nil
}

// Bool returns the boolean payload; false for other kinds.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload; 0 for other kinds.
func (v Value) Int() int64 { return v.n }

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// String returns the canonical encoded token, the same as Encode.
func (v Value) String() string { return Encode(v) }

// Text returns the string payload; "" for other kinds.
func (v Value) Text() string { return v.s }
