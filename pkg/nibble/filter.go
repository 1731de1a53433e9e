package nibble

import (
	"errors"
	"fmt"
)

// ErrUnsupportedValue is returned by Parse for input of an unknown type.
var ErrUnsupportedValue = errors.New("unsupported value")

// Parse flattens values into a nibble sequence, in order.
//
// Integers are byte values and yield two nibbles each; values outside
// 0x00-0xFF are dropped. Strings contribute every hex digit they contain,
// in either case, and anything else in them is skipped. []byte is read as
// raw bytes. Slices of the above are flattened.
func Parse(values ...interface{}) ([]Nibble, error) {
	out := make([]Nibble, 0, len(values)*2)
	for i, v := range values {
		var err error
		if out, err = appendValue(out, v); err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
	}
	return out, nil
}

func appendValue(out []Nibble, v interface{}) ([]Nibble, error) {
	switch x := v.(type) {
	case Nibble:
		return append(out, x&0x0F), nil
	case []Nibble:
		for _, n := range x {
			out = append(out, n&0x0F)
		}
		return out, nil
	case string:
		return appendString(out, x), nil
	case []string:
		for _, s := range x {
			out = appendString(out, s)
		}
		return out, nil
	case []byte:
		return append(out, FromBytes(x)...), nil
	case byte:
		return appendNumeric(out, int64(x)), nil
	case int:
		return appendNumeric(out, int64(x)), nil
	case int8:
		return appendNumeric(out, int64(x)), nil
	case int16:
		return appendNumeric(out, int64(x)), nil
	case int32:
		return appendNumeric(out, int64(x)), nil
	case int64:
		return appendNumeric(out, x), nil
	case uint:
		return appendNumeric(out, int64(x)), nil
	case uint16:
		return appendNumeric(out, int64(x)), nil
	case uint32:
		return appendNumeric(out, int64(x)), nil
	case []int:
		for _, n := range x {
			out = appendNumeric(out, int64(n))
		}
		return out, nil
	case []interface{}:
		for _, e := range x {
			var err error
			if out, err = appendValue(out, e); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

func appendNumeric(out []Nibble, n int64) []Nibble {
	if n < 0 || n > 0xFF {
		return out
	}
	hi, lo := FromByte(byte(n))
	return append(out, hi, lo)
}

func appendString(out []Nibble, s string) []Nibble {
	for _, r := range s {
		if n, ok := hexValue(r); ok {
			out = append(out, n)
		}
	}
	return out
}
