package huff

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

const (
	// MaxCodeBits is the default upper bound on codeword length.
	// It covers the pathological case of a 256 symbol alphabet whose code tree degenerates into a linked list, which assigns codewords of up to 256 bits.
	MaxCodeBits = 256

	// wordBits is the width of an output word in bits.
	wordBits = 8
)

// A Codeword is the variable length bit pattern a prefix code assigns to one symbol.
// Bits are ordered least significant bit first, both within a byte and across the byte sequence:
// bit k of the codeword lives in Bits[k/8] at position k%8.
// Bit positions at or beyond Len are ignored by NewCode.
type Codeword struct {
	Len  int // length in bits
	Bits []byte
}

// String returns the codeword as a bit string, first bit leftmost.
func (cw Codeword) String() string {
	buf := make([]byte, cw.Len)
	for k := 0; k < cw.Len; k++ {
		buf[k] = '0'
		if k/wordBits < len(cw.Bits) && cw.Bits[k/wordBits]>>(k%wordBits)&1 == 1 {
			buf[k] = '1'
		}
	}
	return strconv.Quote(string(buf))
}

// An UnassignedSymbolError is returned when encoding a symbol that has no codeword in the Code.
// A zero length codeword contributes no bits, so accepting one would silently collapse distinct symbols.
type UnassignedSymbolError struct {
	Sym byte
}

func (e UnassignedSymbolError) Error() string {
	return fmt.Sprintf("symbol %#02x has no assigned codeword", e.Sym)
}

// A CodewordTooLongError is returned by NewCode for a codeword longer than the configured bound.
type CodewordTooLongError struct {
	Sym byte
	Len int
	Max int
}

func (e CodewordTooLongError) Error() string {
	return fmt.Sprintf("codeword of symbol %#02x is %d bits, exceeding the maximum of %d", e.Sym, e.Len, e.Max)
}

// A Code maps every possible input byte to a Codeword.
// A Code is immutable once constructed, and may be shared by any number of concurrent encoding sessions.
type Code struct {
	maxBits int
	words   int // bytes per normalized codeword
	cw      [256]Codeword
}

// NewCode builds a Code from the given symbol assignments, bounding codeword length by MaxCodeBits.
// Symbols absent from codewords are left unassigned, and encoding them fails with an UnassignedSymbolError.
func NewCode(codewords map[byte]Codeword) (*Code, error) {
	return NewCodeWithLimit(codewords, MaxCodeBits)
}

// NewCodeWithLimit is NewCode with an explicit bound on codeword length.
// MaxCodeBits is the worst case for a 256 symbol alphabet; alphabets known to be smaller may pass their own alphabet size instead.
func NewCodeWithLimit(codewords map[byte]Codeword, maxBits int) (*Code, error) {
	if maxBits <= 0 {
		return nil, errors.Errorf("maximum codeword length %d is not positive", maxBits)
	}
	c := &Code{maxBits: maxBits, words: (maxBits + wordBits - 1) / wordBits}
	for sym, cw := range codewords {
		if cw.Len < 0 {
			return nil, errors.Errorf("codeword of symbol %#02x has negative length %d", sym, cw.Len)
		}
		if cw.Len > maxBits {
			return nil, CodewordTooLongError{Sym: sym, Len: cw.Len, Max: maxBits}
		}
		c.cw[sym] = c.normalize(cw)
	}
	return c, nil
}

// normalize copies cw into a bit slice of the table's full width, with every bit position at or beyond cw.Len forced to zero.
// The encoder merges whole bytes of a codeword into its buffer, so a stray bit left by the producer would leak into the output.
func (c *Code) normalize(cw Codeword) Codeword {
	bits := make([]byte, c.words)
	copy(bits, cw.Bits)
	n := cw.Len / wordBits
	if r := cw.Len % wordBits; r > 0 {
		bits[n] &= byte(1)<<r - 1
		n++
	}
	for i := n; i < len(bits); i++ {
		bits[i] = 0
	}
	return Codeword{Len: cw.Len, Bits: bits}
}

// Lookup returns the codeword assigned to sym.
// Lookup is total over the 256 symbol domain: unassigned symbols resolve to the zero length sentinel.
// The returned codeword shares the table's storage and must not be modified.
func (c *Code) Lookup(sym byte) Codeword {
	return c.cw[sym]
}

// MaxBits returns the bound on codeword length the Code was constructed with.
func (c *Code) MaxBits() int {
	return c.maxBits
}
