package prefixcode

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/icza/bitio"
)

// Decoder turns a packed bit sequence back into Symbols using a fixed
// CodeTable.
type Decoder struct {
	table CodeTable
}

// Init initializes this Decoder with the CodeTable the input was encoded
// with.
func (d *Decoder) Init(table CodeTable) {
	*d = Decoder{table: table}
}

// Table returns the CodeTable this Decoder decodes with.
func (d Decoder) Table() CodeTable {
	return d.table
}

// Decode scans data from the first bit to the last, emitting a Symbol every
// time the bits read since the previous Symbol form a complete Code.
//
// Decode returns a *DecodingError if data ends in the middle of a Code, or if
// it contains a run of bits that no Code in the table begins with.  Trailing
// bits are never silently discarded.  Empty input decodes to an empty
// sequence.
//
func (d Decoder) Decode(data Bits) ([]Symbol, error) {
	out := make([]Symbol, 0, d.estimateLen(data.n))
	r := bitio.NewReader(bytes.NewReader(data.buf))

	var hc Code
	var start uint64
	for offset := uint64(0); offset < data.n; offset++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("failed to unpack bit %d: %w", offset, err)
		}

		hc = hc.Append(uint(boolToInt(bit)))
		if sym, found := d.table.symbolFor(hc); found {
			out = append(out, sym)
			hc = Code{}
			start = offset + 1
			continue
		}

		if hc.Size >= d.table.maxSize {
			return nil, &DecodingError{Offset: start, Pending: hc, Reason: reasonNoMatch}
		}
	}

	if hc.Size != 0 {
		return nil, &DecodingError{Offset: start, Pending: hc, Reason: reasonTruncated}
	}
	return out, nil
}

func (d Decoder) estimateLen(numBits uint64) uint64 {
	if d.table.minSize == 0 {
		return 0
	}
	const maxEstimate = 1 << 20
	n := numBits / uint64(d.table.minSize)
	if n > maxEstimate {
		n = maxEstimate
	}
	return n
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.table.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.table.maxSize)
	keys := make(byCode, 0, len(d.table.inverse))
	for hc := range d.table.inverse {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, d.table.inverse[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	as, ab := a.Size, a.Bits
	bs, bb := b.Size, b.Bits
	if as != bs {
		return as < bs
	}
	return ab < bb
}

var _ sort.Interface = byCode(nil)

// }}}
