package prefixcode

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to its Code, and each Code back to its Symbol.
// No Code in a CodeTable is a prefix of another.  The zero value is the empty
// table.
type CodeTable struct {
	codes   map[Symbol]Code
	inverse map[Code]Symbol
	symbols []Symbol
	minSize byte
	maxSize byte
}

// NewCodeTable derives the CodeTable of a prefix-code tree: each leaf's
// Symbol is assigned the path leading to it, 0 for a left branch and 1 for a
// right branch.  A nil root yields the empty table.
func NewCodeTable(root *Node) CodeTable {
	codes := make(map[Symbol]Code)
	root.walk(func(node *Node, path Code) {
		if !node.IsLeaf() {
			return
		}
		_, dupe := codes[node.symbol]
		assert.Assertf(!dupe, "symbol %d appears in more than one leaf", node.symbol)
		assert.Assertf(path.Size != 0, "symbol %d was assigned an empty code", node.symbol)
		codes[node.symbol] = path
	})
	return makeCodeTable(codes)
}

// CodeTableFromCodes builds a CodeTable from an explicit assignment, such as
// one read back from storage.  It fails unless every Code is non-empty and
// the assignment is prefix-free.
func CodeTableFromCodes(codes map[Symbol]Code) (CodeTable, error) {
	copied := make(map[Symbol]Code, len(codes))
	list := make(byText, 0, len(codes))
	for sym, hc := range codes {
		if sym < 0 {
			return CodeTable{}, fmt.Errorf("invalid symbol %d", sym)
		}
		if hc.Size == 0 {
			return CodeTable{}, fmt.Errorf("symbol %d has an empty code", sym)
		}
		if hc.Size > MaxCodeSize {
			return CodeTable{}, fmt.Errorf("symbol %d has a %d-bit code, max %d", sym, hc.Size, MaxCodeSize)
		}
		hc = MakeCode(hc.Size, hc.Bits)
		copied[sym] = hc
		list = append(list, symbolAndCode{sym, hc})
	}

	// If any code is a prefix of another, then it is also a prefix of the
	// code immediately following it in lexical order.
	list.Sort()
	for i := 1; i < len(list); i++ {
		a, b := list[i-1], list[i]
		if b.code.HasPrefix(a.code) {
			return CodeTable{}, fmt.Errorf("code %s of symbol %d is a prefix of code %s of symbol %d", a.code, a.symbol, b.code, b.symbol)
		}
	}

	return makeCodeTable(copied), nil
}

// CodeTableFromMap is like CodeTableFromCodes, but takes the codes in the
// textual form produced by Map.
func CodeTableFromMap(m map[Symbol]string) (CodeTable, error) {
	codes := make(map[Symbol]Code, len(m))
	for sym, str := range m {
		hc, err := ParseCode(str)
		if err != nil {
			return CodeTable{}, fmt.Errorf("symbol %d: %w", sym, err)
		}
		codes[sym] = hc
	}
	return CodeTableFromCodes(codes)
}

func makeCodeTable(codes map[Symbol]Code) CodeTable {
	t := CodeTable{
		codes:   codes,
		inverse: make(map[Code]Symbol, len(codes)),
		symbols: make([]Symbol, 0, len(codes)),
	}
	for sym, hc := range codes {
		t.inverse[hc] = sym
		t.symbols = append(t.symbols, sym)
		if len(t.symbols) == 1 {
			t.minSize, t.maxSize = hc.Size, hc.Size
		} else if t.minSize > hc.Size {
			t.minSize = hc.Size
		} else if t.maxSize < hc.Size {
			t.maxSize = hc.Size
		}
	}
	sort.Slice(t.symbols, func(i, j int) bool { return t.symbols[i] < t.symbols[j] })
	return t
}

// Len returns the number of symbols in the table.
func (t CodeTable) Len() int {
	return len(t.symbols)
}

// Lookup returns the Code assigned to sym.
func (t CodeTable) Lookup(sym Symbol) (Code, bool) {
	hc, found := t.codes[sym]
	return hc, found
}

// Symbols returns the symbols of the table in ascending order.
func (t CodeTable) Symbols() []Symbol {
	out := make([]Symbol, len(t.symbols))
	copy(out, t.symbols)
	return out
}

// MinSize is the bit length of the shortest code.
func (t CodeTable) MinSize() byte {
	return t.minSize
}

// MaxSize is the bit length of the longest code.
func (t CodeTable) MaxSize() byte {
	return t.maxSize
}

// Map returns the table as a plain Symbol → bit string mapping, suitable for
// display or for encoding/json.
func (t CodeTable) Map() map[Symbol]string {
	out := make(map[Symbol]string, len(t.codes))
	for sym, hc := range t.codes {
		out[sym] = hc.Text()
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (t CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for _, sym := range t.symbols {
		fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", sym, t.codes[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t CodeTable) symbolFor(hc Code) (Symbol, bool) {
	sym, found := t.inverse[hc]
	if !found {
		return InvalidSymbol, false
	}
	return sym, true
}

// type symbolAndCode + type byText {{{

type symbolAndCode struct {
	symbol Symbol
	code   Code
}

type byText []symbolAndCode

func (list byText) Len() int {
	return len(list)
}

func (list byText) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byText) Less(i, j int) bool {
	return compareCodeText(list[i].code, list[j].code) < 0
}

func (list byText) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = byText(nil)

// }}}
