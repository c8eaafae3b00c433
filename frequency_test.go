package prefixcode

import (
	"strconv"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func TestNewFrequencyTable(t *testing.T) {
	ft := NewFrequencyTable(SymbolsFromString("AAAAABBBCCD"))

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\tLen() = 4\n",
		"\tTotal() = 11\n",
		"\tCount(65) = 5\n",
		"\tCount(66) = 3\n",
		"\tCount(67) = 2\n",
		"\tCount(68) = 1\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ft.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if count := ft.Count('Z'); count != 0 {
		t.Errorf("expected Count('Z') = 0, got %d", count)
	}
}

func TestNewFrequencyTable_OrderIndependent(t *testing.T) {
	a := NewFrequencyTable(SymbolsFromString("DCCBBBAAAAA"))
	b := NewFrequencyTable(SymbolsFromString("ABCDABCAABA"))
	var bufA, bufB strings.Builder
	_, _ = a.Dump(&bufA)
	_, _ = b.Dump(&bufB)
	if bufA.String() != bufB.String() {
		t.Errorf("tables differ:\n\ta: %s\n\tb: %s", bufA.String(), bufB.String())
	}
}

func TestNewFrequencyTable_Empty(t *testing.T) {
	ft := NewFrequencyTable(nil)
	if ft.Len() != 0 {
		t.Errorf("expected empty table, got Len() = %d", ft.Len())
	}
	if ft.Total() != 0 {
		t.Errorf("expected Total() = 0, got %d", ft.Total())
	}
	if syms := ft.Symbols(); len(syms) != 0 {
		t.Errorf("expected no symbols, got %v", syms)
	}
}

func TestFrequencyTableFromCounts(t *testing.T) {
	ft, err := FrequencyTableFromCounts(map[Symbol]uint64{'A': 5, 'B': 0, 'C': 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectSymbols := []Symbol{'A', 'C'}
	if diff := pretty.Diff(expectSymbols, ft.Symbols()); len(diff) != 0 {
		t.Errorf("wrong symbols: %v", diff)
	}
	if ft.Total() != 7 {
		t.Errorf("expected Total() = 7, got %d", ft.Total())
	}

	if _, err := FrequencyTableFromCounts(map[Symbol]uint64{-3: 1}); err == nil {
		t.Error("expected error for negative symbol")
	}
}

func fibonacciCounts(n int) map[Symbol]uint64 {
	counts := make(map[Symbol]uint64, n)
	a, b := uint64(1), uint64(1)
	for sym := Symbol(0); sym < Symbol(n); sym++ {
		counts[sym] = a
		a, b = b, a+b
	}
	return counts
}

func TestFrequencyTableFromCounts_TooDeep(t *testing.T) {
	type testRow struct {
		n      int
		expect bool
	}

	// n Fibonacci weights give a tree n-1 levels deep.
	testData := [...]testRow{
		{n: 40, expect: true},
		{n: 65, expect: true},
		{n: 66, expect: false},
		{n: 70, expect: false},
	}
	for _, row := range testData {
		t.Run("fibonacci-"+strconv.Itoa(row.n), func(t *testing.T) {
			ft, err := FrequencyTableFromCounts(fibonacciCounts(row.n))
			if ok := err == nil; ok != row.expect {
				t.Fatalf("expected success %v, got error %v", row.expect, err)
			}
			if err != nil {
				return
			}
			table := NewCodeTable(BuildTree(ft))
			if want := byte(row.n - 1); table.MaxSize() != want {
				t.Errorf("expected MaxSize() = %d, got %d", want, table.MaxSize())
			}
		})
	}
}
