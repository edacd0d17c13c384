// Package huff packs a stream of byte symbols into a dense bit stream using a per-symbol variable length prefix code, such as one produced by the Huffman algorithm.
// The code table is supplied fully formed by the caller; packing concatenates the codewords of the input symbols least significant bit first and emits the result as whole bytes, zero padding the last byte.
// The output carries no header and no embedded table, so a decoder needs the same table, and the symbol count or a terminator convention, out of band.
//
// Below is an example of using this package to pack a file with the bundled command:
//
//	go run pack/main.go -t pack/testdata/code.txt input.txt > input.huff
package huff

import (
	"io"

	"github.com/pkg/errors"
)

// An Encoder packs symbols into output words through a prefix code.
// The state carried between symbols is a partial output word and the count of its valid low bits.
// This state persists across all Encode and Write calls of a session, so input may be delivered in chunks of arbitrary size without affecting the output.
// Flush must be called at the end of the input to emit the last partial word.
//
// An Encoder performs no I/O of its own beyond handing completed words to its sink, and must not be used concurrently.
type Encoder struct {
	code *Code
	w    io.Writer

	buf    byte // bits merged but not yet emitted, occupying positions [0, offset)
	offset int  // count of valid bits in buf, always in [0, 8)

	scratch []byte
}

// NewEncoder returns an Encoder that packs symbols with code and writes the produced words to w.
func NewEncoder(w io.Writer, code *Code) *Encoder {
	return &Encoder{code: code, w: w, scratch: make([]byte, 0, code.words)}
}

// Encode merges the codeword of sym into the packing state, and hands the words completed by the merge, if any, to the sink.
// Encoding a symbol with no assigned codeword returns an UnassignedSymbolError and leaves the session state untouched.
func (e *Encoder) Encode(sym byte) error {
	out, err := e.merge(e.scratch[:0], sym)
	if err != nil {
		return err
	}
	e.scratch = out[:0]
	if len(out) == 0 {
		return nil
	}
	if _, err := e.w.Write(out); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

// merge folds the codeword of sym into the packing state and appends the completed words to out.
func (e *Encoder) merge(out []byte, sym byte) ([]byte, error) {
	cw := e.code.cw[sym]
	if cw.Len == 0 {
		return out, UnassignedSymbolError{Sym: sym}
	}

	buf, offset := e.buf, e.offset

	// Number of words this merge completes.
	// It counts the buffered bits and the incoming codeword bits together, so it can exceed the number of full words of the codeword alone.
	numWords := (offset + cw.Len) / wordBits

	for w := 0; w < numWords; w++ {
		out = append(out, buf|cw.Bits[w]<<offset)
		if offset == 0 {
			// The carry would be a right shift by the full word width, which does not give the zero we need here.
			buf = 0
		} else {
			buf = cw.Bits[w] >> (wordBits - offset)
		}
	}

	// Fold the codeword's remaining tail bits into the partially filled buffer.
	// numWords equals len(cw.Bits) only when every remaining bit position of the tail byte lies at or beyond cw.Len, and normalization keeps such bits zero.
	if numWords < len(cw.Bits) {
		buf |= cw.Bits[numWords] << offset
	}

	e.buf = buf
	e.offset = (offset + cw.Len) % wordBits
	return out, nil
}

// Write packs every symbol of p through the session, making the Encoder an io.Writer over the symbol stream.
// The words produced by the whole chunk are handed to the sink in one call.
// When a symbol of p has no assigned codeword, Write hands over the words produced by the symbols before it, and returns their count together with the UnassignedSymbolError; the session state reflects exactly the symbols counted.
func (e *Encoder) Write(p []byte) (int, error) {
	out := e.scratch[:0]
	n := 0
	var symErr error
	for _, sym := range p {
		var err error
		out, err = e.merge(out, sym)
		if err != nil {
			symErr = err
			break
		}
		n++
	}
	e.scratch = out[:0]
	if len(out) > 0 {
		if _, err := e.w.Write(out); err != nil {
			return n, errors.Wrap(err, "")
		}
	}
	return n, symErr
}

// Flush emits the final partial word, zero padded up to a whole word, and resets the session state.
// When no bits are pending, Flush emits nothing, so flushing an already flushed session is a no-op.
func (e *Encoder) Flush() error {
	if e.offset == 0 {
		return nil
	}
	word := [1]byte{e.buf}
	e.buf, e.offset = 0, 0
	if _, err := e.w.Write(word[:]); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}
