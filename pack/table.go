package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/fumin/huff"
)

// parseCodeFile reads a codeword table from the named text file.
// Each line assigns one symbol, in the form "<symbol> <bits>".
// The symbol is a single literal character or a 0xNN byte value, and the bits are written first bit leftmost.
// Blank lines and lines starting with # are skipped.
func parseCodeFile(name string) (map[byte]huff.Codeword, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	defer f.Close()
	codewords, err := parseCode(f)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return codewords, nil
}

func parseCode(r io.Reader) (map[byte]huff.Codeword, error) {
	codewords := make(map[byte]huff.Codeword)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: expected \"<symbol> <bits>\", got %q", line, text)
		}
		sym, err := parseSymbol(fields[0])
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("line %d", line))
		}
		if _, ok := codewords[sym]; ok {
			return nil, errors.Errorf("line %d: symbol %q assigned twice", line, fields[0])
		}
		cw, err := parseBits(fields[1])
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("line %d", line))
		}
		codewords[sym] = cw
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "")
	}
	return codewords, nil
}

func parseSymbol(s string) (byte, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 8)
		if err != nil {
			return 0, errors.Wrap(err, "")
		}
		return byte(v), nil
	}
	if len(s) != 1 {
		return 0, errors.Errorf("symbol %q is not a single character or a 0xNN value", s)
	}
	return s[0], nil
}

func parseBits(s string) (huff.Codeword, error) {
	cw := huff.Codeword{Len: len(s), Bits: make([]byte, (len(s)+7)/8)}
	for k := 0; k < len(s); k++ {
		switch s[k] {
		case '1':
			cw.Bits[k/8] |= byte(1) << (k % 8)
		case '0':
		default:
			return huff.Codeword{}, errors.Errorf("bit string %q contains %q", s, s[k:k+1])
		}
	}
	return cw, nil
}
