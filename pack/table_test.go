package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fumin/huff"
)

func TestParseCodeFile(t *testing.T) {
	codewords, err := parseCodeFile("testdata/code.txt")
	require.NoError(t, err)
	require.Len(t, codewords, 6)
	assert.Equal(t, huff.Codeword{Len: 1, Bits: []byte{0x01}}, codewords['A'])
	assert.Equal(t, huff.Codeword{Len: 2, Bits: []byte{0x02}}, codewords['B'])
	assert.Equal(t, huff.Codeword{Len: 3, Bits: []byte{0x00}}, codewords['C'])
	assert.Equal(t, huff.Codeword{Len: 4, Bits: []byte{0x04}}, codewords['D'])
	assert.Equal(t, huff.Codeword{Len: 5, Bits: []byte{0x0c}}, codewords['E'])
	assert.Equal(t, huff.Codeword{Len: 5, Bits: []byte{0x1c}}, codewords['F'])
}

func TestParseCode(t *testing.T) {
	codewords, err := parseCode(strings.NewReader(`
# comment
0x0a 101
Z 001100110
`))
	require.NoError(t, err)
	require.Len(t, codewords, 2)
	assert.Equal(t, huff.Codeword{Len: 3, Bits: []byte{0x05}}, codewords['\n'])
	assert.Equal(t, huff.Codeword{Len: 9, Bits: []byte{0x4c, 0x00}}, codewords['Z'])
}

func TestParseCodeErrors(t *testing.T) {
	for _, text := range []string{
		"A",           // missing bits
		"A 1 2",       // too many fields
		"AB 1",        // multi character symbol
		"0xZZ 1",      // bad hex value
		"A 102",       // bad bit character
		"A 1\nA 0",    // duplicate assignment
		"0x100 1",     // out of byte range
	} {
		_, err := parseCode(strings.NewReader(text))
		assert.Error(t, err, "table %q", text)
	}
}
