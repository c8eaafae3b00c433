package prefixcode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Encoder turns a sequence of Symbols into a packed bit sequence using a
// fixed CodeTable.  The zero value encodes only the empty sequence.
type Encoder struct {
	table CodeTable
}

// Init initializes this Encoder with the CodeTable to encode with.  The table
// must cover every Symbol that will be passed to Encode; it is normally
// derived from the very sequence being encoded.
func (e *Encoder) Init(table CodeTable) {
	*e = Encoder{table: table}
}

// Table returns the CodeTable this Encoder encodes with.
func (e Encoder) Table() CodeTable {
	return e.table
}

// Encode concatenates the Code of every Symbol of seq, in order.  The result
// also records the length of seq, so that the uncompressed size can be
// reported.
//
// If seq holds a Symbol with no Code, Encode returns an *EncodingError and no
// output.
//
func (e Encoder) Encode(seq []Symbol) (Payload, error) {
	var total uint64
	for index, sym := range seq {
		hc, found := e.table.codes[sym]
		if !found {
			return Payload{}, &EncodingError{Symbol: sym, Index: index}
		}
		total += uint64(hc.Size)
	}

	var buf bytes.Buffer
	buf.Grow(int(bytesForBits(total)))
	w := bitio.NewWriter(&buf)
	for _, sym := range seq {
		hc := e.table.codes[sym]
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return Payload{}, fmt.Errorf("failed to pack bits: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return Payload{}, fmt.Errorf("failed to pack bits: %w", err)
	}

	return Payload{
		Table:       e.table,
		Data:        Bits{buf: buf.Bytes(), n: total},
		SymbolCount: uint64(len(seq)),
	}, nil
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.table.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.table.maxSize)
	for _, sym := range e.table.symbols {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", sym, e.table.codes[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
