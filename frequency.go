package prefixcode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// FrequencyTable maps each Symbol of a sequence to its number of
// occurrences.  It is immutable once constructed.  The zero value is the
// empty table.
type FrequencyTable struct {
	counts  map[Symbol]uint64
	symbols []Symbol
	total   uint64
}

// NewFrequencyTable counts the occurrences of every Symbol in seq.  An empty
// seq produces an empty table.
func NewFrequencyTable(seq []Symbol) FrequencyTable {
	counts := make(map[Symbol]uint64)
	for index, sym := range seq {
		assert.Assertf(sym >= 0, "invalid symbol %d at index %d", sym, index)
		counts[sym]++
	}
	return makeFrequencyTable(counts, uint64(len(seq)))
}

// FrequencyTableFromCounts builds a FrequencyTable from explicit counts.
// Symbols with a count of 0 are omitted.
//
// Counts whose prefix-code tree would need codes longer than MaxCodeSize bits
// are rejected.  This takes Fibonacci-like weights over more than MaxCodeSize
// symbols; counts taken from an in-memory sequence never get there.
//
func FrequencyTableFromCounts(counts map[Symbol]uint64) (FrequencyTable, error) {
	copied := make(map[Symbol]uint64, len(counts))
	var total uint64
	for sym, count := range counts {
		if sym < 0 {
			return FrequencyTable{}, fmt.Errorf("invalid symbol %d", sym)
		}
		if count == 0 {
			continue
		}
		copied[sym] = count
		total = saturatingAdd(total, count)
	}
	ft := makeFrequencyTable(copied, total)

	// A tree over k leaves is at most k-1 levels deep.
	if ft.Len() > MaxCodeSize+1 {
		if depth := BuildTree(ft).depth(); depth > MaxCodeSize {
			return FrequencyTable{}, fmt.Errorf("counts need a %d-bit code, max %d", depth, MaxCodeSize)
		}
	}
	return ft, nil
}

func makeFrequencyTable(counts map[Symbol]uint64, total uint64) FrequencyTable {
	symbols := make([]Symbol, 0, len(counts))
	for sym := range counts {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return FrequencyTable{counts: counts, symbols: symbols, total: total}
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable) Len() int {
	return len(ft.symbols)
}

// Total returns the sum of all counts, saturating at math.MaxUint64.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// Count returns the number of occurrences of sym.
func (ft FrequencyTable) Count(sym Symbol) uint64 {
	return ft.counts[sym]
}

// Symbols returns the distinct symbols in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, len(ft.symbols))
	copy(out, ft.symbols)
	return out
}

// Dump writes a programmer-readable debugging dump of the FrequencyTable to
// the given writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", len(ft.symbols))
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, sym := range ft.symbols {
		fmt.Fprintf(&buf, "\tCount(%d) = %d\n", sym, ft.counts[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint64
	}
	return sum
}
