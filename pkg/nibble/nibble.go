package nibble

import (
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// Nibble is one hex digit, the low 4 bits of the byte.
type Nibble byte

func (n Nibble) String() string {
	return string(hexDigits[n&0x0F])
}

// FromByte splits b into its high and low nibble.
func FromByte(b byte) (hi Nibble, lo Nibble) {
	return Nibble(b >> 4), Nibble(b & 0x0F)
}

// FromBytes returns the nibbles of bs, high nibble first.
func FromBytes(bs []byte) []Nibble {
	out := make([]Nibble, 0, len(bs)*2)
	for _, b := range bs {
		hi, lo := FromByte(b)
		out = append(out, hi, lo)
	}
	return out
}

// ToBytes packs nibble pairs into bytes. A trailing odd nibble is ignored.
func ToBytes(ns []Nibble) []byte {
	out := make([]byte, len(ns)/2)
	for i := range out {
		out[i] = byte(ns[2*i]&0x0F)<<4 | byte(ns[2*i+1]&0x0F)
	}
	return out
}

// MustHex parses a string of hex digits, ignoring spaces. It panics on
// anything else and is meant for fixtures.
func MustHex(s string) []Nibble {
	out := make([]Nibble, 0, len(s))
	for _, r := range s {
		if r == ' ' {
			continue
		}
		v, ok := hexValue(r)
		if !ok {
			panic("nibble: invalid hex digit " + string(r))
		}
		out = append(out, v)
	}
	return out
}

// Join renders ns as a hex string.
func Join(ns []Nibble) string {
	var sb strings.Builder
	sb.Grow(len(ns))
	for _, n := range ns {
		sb.WriteByte(hexDigits[n&0x0F])
	}
	return sb.String()
}

func hexValue(r rune) (Nibble, bool) {
	switch {
	case '0' <= r && r <= '9':
		return Nibble(r - '0'), true
	case 'a' <= r && r <= 'f':
		return Nibble(r-'a') + 10, true
	case 'A' <= r && r <= 'F':
		return Nibble(r-'A') + 10, true
	}
	return 0, false
}
