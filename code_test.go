package huff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodeNormalizes(t *testing.T) {
	code, err := NewCode(map[byte]Codeword{
		'X': {Len: 3, Bits: []byte{0xFF, 0xFF}},
	})
	require.NoError(t, err)

	cw := code.Lookup('X')
	assert.Equal(t, 3, cw.Len)
	require.Len(t, cw.Bits, MaxCodeBits/8)
	assert.Equal(t, byte(0x07), cw.Bits[0])
	for i := 1; i < len(cw.Bits); i++ {
		assert.Equal(t, byte(0), cw.Bits[i])
	}
}

func TestNewCodeRejectsTooLong(t *testing.T) {
	_, err := NewCode(map[byte]Codeword{
		'X': {Len: MaxCodeBits + 1, Bits: make([]byte, MaxCodeBits/8+1)},
	})
	var tooLong CodewordTooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, byte('X'), tooLong.Sym)
	assert.Equal(t, MaxCodeBits+1, tooLong.Len)
	assert.Equal(t, MaxCodeBits, tooLong.Max)
}

func TestNewCodeRejectsNegativeLength(t *testing.T) {
	_, err := NewCode(map[byte]Codeword{'X': {Len: -1}})
	require.Error(t, err)
}

func TestNewCodeWithLimit(t *testing.T) {
	_, err := NewCodeWithLimit(map[byte]Codeword{'X': {Len: 9, Bits: []byte{0xFF, 0x01}}}, 8)
	var tooLong CodewordTooLongError
	require.ErrorAs(t, err, &tooLong)

	code, err := NewCodeWithLimit(map[byte]Codeword{'X': {Len: 8, Bits: []byte{0xFF}}}, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, code.MaxBits())
	assert.Len(t, code.Lookup('X').Bits, 1)

	_, err = NewCodeWithLimit(nil, 0)
	require.Error(t, err)
}

func TestLookupIsTotal(t *testing.T) {
	code, err := NewCode(map[byte]Codeword{'A': {Len: 1, Bits: []byte{0x01}}})
	require.NoError(t, err)
	for sym := 0; sym < 256; sym++ {
		if sym == 'A' {
			continue
		}
		assert.Equal(t, 0, code.Lookup(byte(sym)).Len)
	}
}

func TestCodewordString(t *testing.T) {
	assert.Equal(t, `"00110"`, Codeword{Len: 5, Bits: []byte{0x0c}}.String())
	assert.Equal(t, `"1"`, Codeword{Len: 1, Bits: []byte{0x01}}.String())
	assert.Equal(t, `""`, Codeword{}.String())
}
