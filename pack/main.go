// Command huffpack packs a stream of bytes with a prefix codeword table and writes the packed words to standard output.
// The table is supplied as a side channel text file; the output itself carries no table, so unpacking needs the same file.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/fumin/huff"
)

var args struct {
	Table string `short:"t" required:"" help:"Path to the codeword table file."`
	Input string `arg:"" optional:"" help:"Input file. Reads standard input when omitted."`
	Debug bool   `help:"Enable debug logging."`
}

func main() {
	kong.Parse(&args,
		kong.Name("huffpack"),
		kong.Description("Pack a stream of bytes with a prefix codeword table."))
	if args.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if err := run(); err != nil {
		logrus.Fatalf("%+v", err)
	}
}

func run() error {
	codewords, err := parseCodeFile(args.Table)
	if err != nil {
		return errors.Wrap(err, "")
	}
	code, err := huff.NewCode(codewords)
	if err != nil {
		return errors.Wrap(err, "")
	}
	logrus.Debugf("%d symbols assigned in %s", len(codewords), args.Table)

	var in io.Reader = os.Stdin
	if args.Input != "" {
		f, err := os.Open(args.Input)
		if err != nil {
			return errors.Wrap(err, "")
		}
		defer f.Close()
		in = f
	}
	if err := huff.Pack(os.Stdout, in, code); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}
