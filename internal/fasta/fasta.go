// Package fasta reads FASTA formatted sequence files.
//
// Only what the compressor needs is supported: a '>' line starts a record and
// every following line, up to the next '>' line, is part of its sequence.
// Lines starting with ';' are comments.  Sequences are upper-cased and
// stripped of whitespace.
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrNoRecords is returned by First when the input holds no record.
var ErrNoRecords = errors.New("no FASTA records found")

// maxLineSize bounds a single input line.  Some assemblers write each
// sequence on one line, so the default bufio.Scanner limit is too small.
const maxLineSize = 1 << 28

// Record is a single FASTA record.
type Record struct {
	Header   string
	Sequence []byte
}

// Read parses every record in r.
func Read(r io.Reader) ([]Record, error) {
	var records []Record
	err := scan(r, func(rec Record) bool {
		records = append(records, rec)
		return true
	})
	return records, err
}

// First parses r up to the end of its first record, and returns it.
func First(r io.Reader) (Record, error) {
	var first Record
	var found bool
	err := scan(r, func(rec Record) bool {
		first, found = rec, true
		return false
	})
	if err != nil {
		return Record{}, err
	}
	if !found {
		return Record{}, ErrNoRecords
	}
	return first, nil
}

func scan(r io.Reader, fn func(Record) bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var current Record
	var inRecord bool
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		switch {
		case len(line) == 0 || line[0] == ';':
			continue
		case line[0] == '>':
			if inRecord && !fn(current) {
				return nil
			}
			current = Record{Header: string(bytes.TrimSpace(line[1:]))}
			inRecord = true
		case !inRecord:
			return fmt.Errorf("line %d: sequence data before the first '>' header", lineNum)
		default:
			current.Sequence = appendUpper(current.Sequence, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("line %d: %w", lineNum+1, err)
	}
	if inRecord {
		fn(current)
	}
	return nil
}

func appendUpper(dst, line []byte) []byte {
	for _, c := range line {
		switch {
		case c == ' ' || c == '\t':
			continue
		case 'a' <= c && c <= 'z':
			c -= 'a' - 'A'
		}
		dst = append(dst, c)
	}
	return dst
}
