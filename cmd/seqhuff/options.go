package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chronos-tachyon/prefixcode"
	"github.com/chronos-tachyon/prefixcode/internal/fasta"
	"github.com/ogier/pflag"
)

type options struct {
	output  string
	raw     bool
	json    bool
	verbose bool
	help    bool
	codecs  string
	record  int
	input   string
}

// parseOptions parses the flags common to all commands.  Exactly one FILE
// argument is required.
func parseOptions(name string, args []string) (*options, error) {
	opts := &options{}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetInterspersed(true)
	fs.SetOutput(io.Discard)
	fs.StringVarP(&opts.output, "output", "o", "", "")
	fs.BoolVarP(&opts.raw, "raw", "r", false, "")
	fs.BoolVarP(&opts.json, "json", "j", false, "")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "")
	fs.BoolVarP(&opts.help, "help", "h", false, "")
	fs.StringVarP(&opts.codecs, "codec", "c", "", "")
	fs.IntVarP(&opts.record, "record", "n", 1, "")

	if err := fs.Parse(args); err != nil {
		log.Print(err)
		usage(os.Stderr)
		return nil, errUsage
	}
	if opts.help {
		usage(os.Stdout)
		return nil, errHelp
	}
	if fs.NArg() != 1 {
		log.Printf("%s: expected exactly one FILE, got %d", name, fs.NArg())
		usage(os.Stderr)
		return nil, errUsage
	}
	if opts.record < 1 {
		log.Printf("%s: --record must be at least 1, got %d", name, opts.record)
		usage(os.Stderr)
		return nil, errUsage
	}
	opts.input = fs.Arg(0)
	return opts, nil
}

func (opts *options) logf(format string, v ...interface{}) {
	if opts.verbose {
		log.Printf(format, v...)
	}
}

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(path)
}

// loadSequence reads the sequence to compress: the selected FASTA record of
// the input (the first by default), or its raw bytes.
func loadSequence(opts *options, stdin io.Reader) ([]byte, error) {
	f, err := openInput(opts.input, stdin)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if opts.raw {
		return io.ReadAll(f)
	}

	var rec fasta.Record
	if opts.record == 1 {
		rec, err = fasta.First(f)
	} else {
		var records []fasta.Record
		records, err = fasta.Read(f)
		if err == nil && len(records) < opts.record {
			err = fmt.Errorf("record %d requested, but only %d present", opts.record, len(records))
		}
		if err == nil {
			rec = records[opts.record-1]
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.input, err)
	}
	opts.logf("read record %q: %d symbols", rec.Header, len(rec.Sequence))
	return rec.Sequence, nil
}

// displaySymbol renders printable ASCII symbols as themselves and anything
// else as a number.
func displaySymbol(sym prefixcode.Symbol) string {
	if sym > ' ' && sym < 0x7f {
		return string(rune(sym))
	}
	return fmt.Sprintf("%d", sym)
}

func displayTable(table prefixcode.CodeTable) map[string]string {
	out := make(map[string]string, table.Len())
	for sym, text := range table.Map() {
		out[displaySymbol(sym)] = text
	}
	return out
}
