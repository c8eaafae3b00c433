package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const usageStr = `Usage: seqhuff <command> [OPTION]... FILE

seqhuff compresses nucleotide sequences with a static Huffman prefix code.

  seqhuff compress FILE    -- compress the first FASTA record of FILE
  seqhuff decompress FILE  -- restore the sequence stored in FILE
  seqhuff stats FILE       -- compare the prefix code with gzip, zstd, xz, lzma
  seqhuff codes FILE       -- print the code table for FILE
  seqhuff help             -- print this message

Common options:

  -o, --output FILE  write to FILE (compress, decompress)
  -r, --raw          treat the input as raw bytes instead of FASTA
  -n, --record N     use the N'th FASTA record instead of the first
  -c, --codec LIST   comma separated baseline codecs (stats); default all
  -j, --json         print machine readable output (stats, codes)
  -v, --verbose      verbose mode
  -h, --help         give this help

With FILE -, read standard input.
`

// errUsage is returned by commands whose arguments do not make sense.  The
// usage message has already been printed when it is returned.
var errUsage = errors.New("invalid usage")

// errHelp is returned by commands after printing the help text.
var errHelp = errors.New("help requested")

type command func(args []string, stdin io.Reader, stdout io.Writer) error

var commands = map[string]command{
	"compress":   runCompress,
	"decompress": runDecompress,
	"stats":      runStats,
	"codes":      runCodes,
}

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

func main() {
	// setup logger
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)

	if len(os.Args) < 2 {
		log.Fatalf("to show help, use %s help", cmdName)
	}

	switch name := os.Args[1]; name {
	case "help", "-h", "--help":
		usage(os.Stdout)
		os.Exit(0)
	default:
		cmd, found := commands[name]
		if !found {
			log.Fatalf("command %q not supported", name)
		}
		err := cmd(os.Args[2:], os.Stdin, os.Stdout)
		if errors.Is(err, errHelp) {
			os.Exit(0)
		}
		if errors.Is(err, errUsage) {
			os.Exit(1)
		}
		if err != nil {
			log.Fatal(err)
		}
	}
}
