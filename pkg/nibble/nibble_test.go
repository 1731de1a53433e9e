package nibble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Mixed(t *testing.T) {
	values := []interface{}{0x90, "90", "9"}
	ns, err := Parse(values...)
	require.NoError(t, err)

	assert.Equal(t, "90909", Join(ns))
	assert.Equal(t, []interface{}{0x90, "90", "9"}, values)
}

func TestParse_Nested(t *testing.T) {
	ns, err := Parse([]interface{}{0x90, "90", "9"})
	require.NoError(t, err)
	assert.Equal(t, "90909", Join(ns))
}

func TestParse_Numeric(t *testing.T) {
	ns, err := Parse(0x90)
	require.NoError(t, err)
	assert.Equal(t, []Nibble{0x9, 0x0}, ns)

	ns, err = Parse(0x05)
	require.NoError(t, err)
	assert.Equal(t, "05", Join(ns))
}

func TestParse_NumericOutOfRange(t *testing.T) {
	ns, err := Parse(560, 50, -1)
	require.NoError(t, err)
	assert.Equal(t, "32", Join(ns))
}

func TestParse_String(t *testing.T) {
	ns, err := Parse("904050")
	require.NoError(t, err)
	assert.Equal(t, MustHex("904050"), ns)
}

func TestParse_StringStripsNonHex(t *testing.T) {
	ns, err := Parse("(0xAdjskla#(#")
	require.NoError(t, err)
	assert.Equal(t, "0ADA", Join(ns))
}

func TestParse_Bytes(t *testing.T) {
	ns, err := Parse([]byte{0xF0, 0x7E, 0xF7})
	require.NoError(t, err)
	assert.Equal(t, "F07EF7", Join(ns))
}

func TestParse_Unsupported(t *testing.T) {
	_, err := Parse(1.5)
	require.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestToBytes(t *testing.T) {
	assert.Equal(t, []byte{0x90, 0x40, 0x50}, ToBytes(MustHex("904050")))
	assert.Equal(t, []byte{0x90}, ToBytes(MustHex("904")))
	assert.Empty(t, ToBytes(nil))
}

func TestNibble_String(t *testing.T) {
	assert.Equal(t, "A", Nibble(0xA).String())
	assert.Equal(t, "F7 40", Join(MustHex("F7"))+" "+Join(FromBytes([]byte{0x40})))
}
