package schema

import (
	"fmt"
	"math"
	"strconv"
)

// Value is an element value wide enough for the full range of every
// supported underlying type: any uint64, or any negative int64.
type Value struct {
	neg bool
	abs uint64
}

// ValueOf normalizes a decoded YAML scalar into a Value. Integers of any
// width are accepted directly; strings are parsed with base auto-detection so
// hex and octal spellings work (e.g. "0xff").
func ValueOf(raw any) (Value, error) {
	switch v := raw.(type) {
	case int:
		return fromInt64(int64(v)), nil
	case int8:
		return fromInt64(int64(v)), nil
	case int16:
		return fromInt64(int64(v)), nil
	case int32:
		return fromInt64(int64(v)), nil
	case int64:
		return fromInt64(v), nil
	case uint:
		return Value{abs: uint64(v)}, nil
	case uint8:
		return Value{abs: uint64(v)}, nil
	case uint16:
		return Value{abs: uint64(v)}, nil
	case uint32:
		return Value{abs: uint64(v)}, nil
	case uint64:
		return Value{abs: v}, nil
	case string:
		return parseValue(v)
	case float64:
		// YAML decoders hand integral scalars over as floats in some edge
		// cases; accept them only when they are exact.
		if v == math.Trunc(v) && v >= math.MinInt64 && v <= math.MaxUint64 {
			if v < 0 {
				return fromInt64(int64(v)), nil
			}
			return Value{abs: uint64(v)}, nil
		}
		return Value{}, fmt.Errorf("value %v is not an integer", v)
	default:
		return Value{}, fmt.Errorf("value %v (%T) is not an integer", raw, raw)
	}
}

func fromInt64(v int64) Value {
	if v < 0 {
		// Negate via uint64 arithmetic so MinInt64 stays representable.
		return Value{neg: true, abs: -uint64(v)}
	}
	return Value{abs: uint64(v)}
}

func parseValue(s string) (Value, error) {
	if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		return Value{abs: u}, nil
	}
	i, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return Value{}, fmt.Errorf("value %q is not an integer: %w", s, err)
	}
	return fromInt64(i), nil
}

// Negative reports whether the value is below zero.
func (v Value) Negative() bool {
	return v.neg && v.abs != 0
}

// String renders the value as a decimal Go literal.
func (v Value) String() string {
	if v.Negative() {
		return "-" + strconv.FormatUint(v.abs, 10)
	}
	return strconv.FormatUint(v.abs, 10)
}

// Equal reports whether two values denote the same integer.
func (v Value) Equal(o Value) bool {
	return v.Negative() == o.Negative() && v.abs == o.abs
}

// FitsIn reports whether the value is representable by the given type.
func (v Value) FitsIn(t TypeInfo) bool {
	if v.Negative() {
		if !t.Signed {
			return false
		}
		// Lowest representable magnitude is 2^(bits-1).
		return v.abs <= uint64(1)<<(t.Bits-1)
	}
	max := uint64(math.MaxUint64)
	if t.Signed {
		max = uint64(1)<<(t.Bits-1) - 1
	} else if t.Bits < 64 {
		max = uint64(1)<<t.Bits - 1
	}
	return v.abs <= max
}
