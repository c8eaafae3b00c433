package prefixcode

import (
	"bytes"
	"testing"
)

func TestBytesFromSymbols(t *testing.T) {
	input := []byte("ACGT\x00\xff")
	actual, err := BytesFromSymbols(SymbolsFromBytes(input))
	if err != nil {
		t.Fatalf("BytesFromSymbols failed: %v", err)
	}
	if !bytes.Equal(input, actual) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", input, actual)
	}
}

func TestBytesFromSymbols_Wide(t *testing.T) {
	for _, seq := range [][]Symbol{{65, 300, 65}, {-1}} {
		out, err := BytesFromSymbols(seq)
		if err == nil {
			t.Errorf("BytesFromSymbols(%v): expected error, got %#v", seq, out)
		}
	}
}
