package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chronos-tachyon/prefixcode"
	"github.com/kr/pretty"
)

const payloadExt = ".pfx"

func runCompress(args []string, stdin io.Reader, stdout io.Writer) error {
	opts, err := parseOptions("compress", args)
	if err != nil {
		return err
	}

	data, err := loadSequence(opts, stdin)
	if err != nil {
		return err
	}

	p, err := prefixcode.Compress(prefixcode.SymbolsFromBytes(data))
	if err != nil {
		return err
	}
	opts.logf("code table %# v", pretty.Formatter(displayTable(p.Table)))

	output := opts.output
	if output == "" {
		if opts.input == "-" {
			return fmt.Errorf("compress: --output is required when reading standard input")
		}
		output = opts.input + payloadExt
	}

	n, err := writeFile(output, p.WriteTo)
	if err != nil {
		return err
	}
	opts.logf("wrote %d bytes to %s", n, output)

	fmt.Fprintf(stdout, "Original Size: %d bytes\n", len(data))
	fmt.Fprintf(stdout, "Compressed Size: %d bytes\n", n)
	if len(data) != 0 {
		fmt.Fprintf(stdout, "Compression Ratio: %.2f\n", float64(n)/float64(len(data)))
	}
	return nil
}

func runDecompress(args []string, stdin io.Reader, stdout io.Writer) error {
	opts, err := parseOptions("decompress", args)
	if err != nil {
		return err
	}

	f, err := openInput(opts.input, stdin)
	if err != nil {
		return err
	}
	p, err := prefixcode.ReadPayload(bufio.NewReader(f))
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", opts.input, err)
	}
	opts.logf("payload holds %d symbols in %d bits", p.SymbolCount, p.CompressedBits())

	seq, err := prefixcode.Decompress(p)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.input, err)
	}
	data, err := prefixcode.BytesFromSymbols(seq)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.input, err)
	}

	output := opts.output
	if output == "" {
		if opts.input == "-" || !strings.HasSuffix(opts.input, payloadExt) {
			_, err = stdout.Write(data)
			return err
		}
		output = strings.TrimSuffix(opts.input, payloadExt)
	}

	n, err := writeFile(output, func(w io.Writer) (int64, error) {
		n, err := w.Write(data)
		return int64(n), err
	})
	if err != nil {
		return err
	}
	opts.logf("wrote %d bytes to %s", n, output)
	return nil
}

// writeFile creates path and fills it using fn.  The file is removed if fn
// fails.
func writeFile(path string, fn func(w io.Writer) (int64, error)) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	n, err := fn(f)
	if err == nil {
		err = f.Close()
	} else {
		f.Close()
	}
	if err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}
