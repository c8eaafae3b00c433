package prefixcode

import (
	"bytes"
	"fmt"
	"io"
)

// SymbolWidth is the number of bits each Symbol is assumed to occupy before
// compression, for the purpose of reporting compression ratios.
const SymbolWidth = 8

// Payload is the result of encoding a sequence: the packed bits, the
// CodeTable needed to invert them, and the length of the original sequence.
type Payload struct {
	Table       CodeTable
	Data        Bits
	SymbolCount uint64
}

// Compress runs the whole pipeline over seq: it counts the symbols, builds a
// prefix-code tree and its CodeTable, and encodes seq with it.  The empty
// sequence yields an empty Payload.
func Compress(seq []Symbol) (Payload, error) {
	ft := NewFrequencyTable(seq)
	table := NewCodeTable(BuildTree(ft))

	var e Encoder
	e.Init(table)
	return e.Encode(seq)
}

// Decompress decodes p back into the original sequence.  It returns a
// *DecodingError if the bits do not decode to exactly p.SymbolCount symbols.
func Decompress(p Payload) ([]Symbol, error) {
	var d Decoder
	d.Init(p.Table)
	seq, err := d.Decode(p.Data)
	if err != nil {
		return nil, err
	}
	if uint64(len(seq)) != p.SymbolCount {
		reason := fmt.Sprintf("decoded %d symbols, expected %d", len(seq), p.SymbolCount)
		return nil, &DecodingError{Offset: p.Data.Len(), Reason: reason}
	}
	return seq, nil
}

// OriginalBits returns the size of the uncompressed sequence in bits, at
// SymbolWidth bits per symbol.
func (p Payload) OriginalBits() uint64 {
	return p.SymbolCount * SymbolWidth
}

// CompressedBits returns the number of valid bits in p.Data.
func (p Payload) CompressedBits() uint64 {
	return p.Data.Len()
}

// Ratio returns CompressedBits / OriginalBits, or 0 for an empty sequence.
func (p Payload) Ratio() float64 {
	orig := p.OriginalBits()
	if orig == 0 {
		return 0
	}
	return float64(p.CompressedBits()) / float64(orig)
}

// Dump writes a programmer-readable summary of the Payload to the given
// writer.
func (p Payload) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Payload{\n")
	fmt.Fprintf(&buf, "\tSymbolCount = %d\n", p.SymbolCount)
	fmt.Fprintf(&buf, "\tOriginalBits() = %d\n", p.OriginalBits())
	fmt.Fprintf(&buf, "\tCompressedBits() = %d\n", p.CompressedBits())
	fmt.Fprintf(&buf, "\tRatio() = %.4f\n", p.Ratio())
	for _, sym := range p.Table.symbols {
		fmt.Fprintf(&buf, "\tTable.Lookup(%d) = %s\n", sym, p.Table.codes[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
