package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Exported variables.
var (
	ErrKind       = errors.New("value kind mismatch")
	ErrMissing    = errors.New("value missing")
	ErrOutOfRange = errors.New("value out of range")
	ErrSyntax     = errors.New("invalid value syntax")
)

// Spec describes how raw tokens decode for one flag or positional.
type Spec struct {
	Kind  Kind
	Range *Range
	// FoldBool accepts true/false in any letter case.
	FoldBool bool
}

// Check reports whether v could have been produced by Decode under this spec.
func (s Spec) Check(v Value) error {
	if v.kind != s.Kind {
		return kindError(v.kind, s.Kind)
	}

	if !s.Kind.IsInteger() {
		return nil
	}

	lo, hi := s.Kind.Limits()
	if v.n < lo || v.n > hi {
		return rangeError(v.n, lo, hi)
	}

	if !s.Range.Contains(v.n) {
		return rangeError(v.n, s.Range.Min, s.Range.Max)
	}

	return nil
}

// Decode converts a raw token into a Value of the spec's kind.
// A blank token fails with ErrMissing so callers that allow an omitted value
// can tell it apart from a malformed one.
func (s Spec) Decode(raw string) (Value, error) {
	switch s.Kind {
	case Presence:
		return Value{}, fmt.Errorf("%w: presence takes no value, got %q", ErrKind, raw)
	case Bool:
		return s.decodeBool(raw)
	case String:
		return decodeString(raw)
	case Int8, Int16, Int32, Int64, UInt8:
		return s.decodeInt(raw)
	default:
		return Value{}, fmt.Errorf("%w: unknown kind %s", ErrKind, s.Kind)
	}
}

func (s Spec) decodeBool(raw string) (Value, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Value{}, ErrMissing
	}

	for _, candidate := range []bool{true, false} {
		literal := strconv.FormatBool(candidate)
		if text == literal || (s.FoldBool && strings.EqualFold(text, literal)) {
			return OfBool(candidate), nil
		}
	}

	return Value{}, fmt.Errorf("%w: %q is not a boolean", ErrSyntax, raw)
}

func (s Spec) decodeInt(raw string) (Value, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Value{}, ErrMissing
	}

	negative := false

	switch text[0] {
	case '-':
		negative = true
		text = text[1:]
	case '+':
		text = text[1:]
	}

	multiplier := uint64(1)

	if n := len(text); n > 0 {
		if m, ok := unitSuffixes[text[n-1]]; ok {
			multiplier = m
			text = text[:n-1]
		}
	}

	base := 10
	if len(text) > 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		base = 16
		text = text[2:]
	}

	magnitude, err := strconv.ParseUint(text, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Value{}, fmt.Errorf("%w: %q", ErrOutOfRange, raw)
		}

		return Value{}, fmt.Errorf("%w: %q is not an integer", ErrSyntax, raw)
	}

	if magnitude > signBit/multiplier {
		return Value{}, fmt.Errorf("%w: %q", ErrOutOfRange, raw)
	}

	product := magnitude * multiplier

	var n int64

	switch {
	case negative:
		// -(1<<63) wraps onto itself, which is exactly MinInt64.
		n = -int64(product)
	case product >= signBit:
		return Value{}, fmt.Errorf("%w: %q", ErrOutOfRange, raw)
	default:
		n = int64(product)
	}

	v := Value{kind: s.Kind, n: n}
	if err := s.Check(v); err != nil {
		return Value{}, fmt.Errorf("%w (from %q)", err, raw)
	}

	return v, nil
}

// Encode returns the canonical token for v: decimal integers, lower-case
// booleans, and strings quoted when they would not survive tokenizing bare.
// Presence values encode to "".
func Encode(v Value) string {
	switch v.kind {
	case Presence:
		return ""
	case Bool:
		return strconv.FormatBool(v.b)
	case String:
		if NeedsQuotes(v.s) {
			return `"` + v.s + `"`
		}

		return v.s
	case Int8, Int16, Int32, Int64, UInt8:
		return strconv.FormatInt(v.n, 10)
	default:
		return ""
	}
}

// IsBlank reports whether s is empty or only whitespace once one layer of
// surrounding quotes is removed.
func IsBlank(s string) bool {
	return strings.TrimSpace(unquote(s)) == ""
}

// NeedsQuotes reports whether a string value must be wrapped in double quotes
// to decode back to itself.
func NeedsQuotes(s string) bool {
	return s == "" || strings.ContainsFunc(s, unicode.IsSpace) || isQuoted(s)
}

// unexported constants.
const (
	signBit = uint64(1) << 63
)

// unexported variables.
var (
	//nolint:gochecknoglobals // read-only unit table
	unitSuffixes = map[byte]uint64{
		'c': 1,
		'w': 2,
		'd': 4,
		'q': 8,
		'k': 1 << 10,
		'M': 1 << 20,
		'G': 1 << 30,
	}
)

func decodeString(raw string) (Value, error) {
	text := unquote(raw)
	if strings.TrimSpace(text) == "" {
		return Value{}, ErrMissing
	}

	return OfString(text), nil
}

func isQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

func kindError(got, want Kind) error {
	return fmt.Errorf("%w: got %s, want %s", ErrKind, got, want)
}

func rangeError(n, lo, hi int64) error {
	return fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, n, lo, hi)
}

func unquote(s string) string {
	if isQuoted(s) {
		return s[1 : len(s)-1]
	}

	return s
}
