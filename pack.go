package huff

import (
	"io"

	"github.com/pkg/errors"
)

// packBufSize is the chunk size in which Pack reads its input.
const packBufSize = 4096

// Pack reads symbols from src until EOF and writes their packed words to dst.
// The whole input is packed as one session, so the chunking of the reads leaves no trace in the output, and the final partial word is flushed zero padded.
func Pack(dst io.Writer, src io.Reader, code *Code) error {
	enc := NewEncoder(dst, code)
	buf := make([]byte, packBufSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := enc.Write(buf[:n]); werr != nil {
				return errors.Wrap(werr, "")
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "")
		}
	}
	if err := enc.Flush(); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}
