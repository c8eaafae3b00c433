package prefixcode

import (
	"fmt"
	"math"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// SymbolsFromBytes converts a byte string, such as a nucleotide sequence, into
// a sequence of Symbols, one per byte.
func SymbolsFromBytes(p []byte) []Symbol {
	out := make([]Symbol, len(p))
	for i, b := range p {
		out[i] = Symbol(b)
	}
	return out
}

// SymbolsFromString is the string counterpart of SymbolsFromBytes.
func SymbolsFromString(s string) []Symbol {
	return SymbolsFromBytes([]byte(s))
}

// BytesFromSymbols is the inverse of SymbolsFromBytes.  It fails if any
// Symbol does not fit in a byte, which can happen for sequences decoded from
// a Payload built over a wider alphabet.
func BytesFromSymbols(seq []Symbol) ([]byte, error) {
	out := make([]byte, len(seq))
	for i, sym := range seq {
		if sym < 0 || sym > math.MaxUint8 {
			return nil, fmt.Errorf("symbol %d at index %d does not fit in a byte", sym, i)
		}
		out[i] = byte(sym)
	}
	return out, nil
}
