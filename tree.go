package prefixcode

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a prefix-code tree.
//
// A leaf holds exactly one Symbol and its frequency.  An internal node holds
// no Symbol (Symbol() returns InvalidSymbol) and the summed weight of its
// children.  Every internal node has a left child; only the synthetic root of
// a single-symbol tree lacks a right child.
//
// Trees are built bottom-up by BuildTree and never modified afterward.
type Node struct {
	left   *Node
	right  *Node
	weight uint64
	order  uint64
	symbol Symbol
}

// Symbol returns the symbol of a leaf, or InvalidSymbol for internal nodes.
func (n *Node) Symbol() Symbol {
	return n.symbol
}

// Weight returns the frequency of a leaf, or the summed weight of an internal
// node's children.
func (n *Node) Weight() uint64 {
	return n.weight
}

// Left returns the child reached by a 0 bit, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the child reached by a 1 bit.  It is nil for leaves and for
// the synthetic root of a single-symbol tree.
func (n *Node) Right() *Node {
	return n.right
}

// IsLeaf returns true iff this node holds a Symbol.
func (n *Node) IsLeaf() bool {
	return n.left == nil
}

// BuildTree constructs an optimal prefix-code tree for ft using the greedy
// minimum-merge algorithm.  It returns nil if ft is empty.
//
// The two lightest nodes are merged first, the first one removed becoming the
// left child.  Equal weights are ordered by creation: leaves in ascending
// Symbol order, then internal nodes in the order they were created.  The
// running time is O(k log k) in the number of distinct symbols k.
//
// A table with exactly one symbol yields a synthetic root whose only child is
// the leaf, so that the symbol still gets the non-empty code "0".
//
func BuildTree(ft FrequencyTable) *Node {
	if ft.Len() == 0 {
		return nil
	}

	// Step 1: seed the minheap with one leaf per distinct symbol.

	var order uint64
	h := nodeHeap{list: make([]*Node, 0, ft.Len())}
	for _, sym := range ft.symbols {
		h.list = append(h.list, &Node{weight: ft.counts[sym], order: order, symbol: sym})
		order++
	}
	h.Init()

	// Step 2: merge the two lightest nodes until only the root remains.

	for h.Len() > 1 {
		a := heap.Pop(&h).(*Node)
		b := heap.Pop(&h).(*Node)
		heap.Push(&h, &Node{
			left:   a,
			right:  b,
			weight: saturatingAdd(a.weight, b.weight),
			order:  order,
			symbol: InvalidSymbol,
		})
		order++
	}

	root := heap.Pop(&h).(*Node)
	if root.IsLeaf() {
		root = &Node{left: root, weight: root.weight, order: order, symbol: InvalidSymbol}
	}
	return root
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one line per node in pre-order, keyed by the node's path.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	n.walk(func(node *Node, path Code) {
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "\tLeaf(%s) = {%d, %d}\n", path, node.symbol, node.weight)
		} else {
			fmt.Fprintf(&buf, "\tNode(%s) = {%d}\n", path, node.weight)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// depth returns the number of edges on the longest root-to-leaf path.
func (n *Node) depth() int {
	if n == nil {
		return 0
	}

	type stackItem struct {
		node  *Node
		depth int
	}

	var deepest int
	stack := []stackItem{{n, 0}}
	for len(stack) != 0 {
		last := len(stack) - 1
		item := stack[last]
		stack = stack[:last]

		if item.node.IsLeaf() {
			if item.depth > deepest {
				deepest = item.depth
			}
			continue
		}
		if right := item.node.right; right != nil {
			stack = append(stack, stackItem{right, item.depth + 1})
		}
		stack = append(stack, stackItem{item.node.left, item.depth + 1})
	}
	return deepest
}

// walk visits every node of the tree in pre-order (left before right),
// passing the path from the root.  A nil tree visits nothing.
func (n *Node) walk(fn func(node *Node, path Code)) {
	if n == nil {
		return
	}

	type stackItem struct {
		node *Node
		path Code
	}

	stack := make([]stackItem, 0, 2*log2uint64(n.weight+1))
	stack = append(stack, stackItem{n, Code{}})
	for len(stack) != 0 {
		last := len(stack) - 1
		item := stack[last]
		stack[last] = stackItem{}
		stack = stack[:last]

		fn(item.node, item.path)
		if item.node.IsLeaf() {
			continue
		}

		assert.Assertf(item.path.Size < MaxCodeSize, "prefix-code tree deeper than %d bits", MaxCodeSize)
		if right := item.node.right; right != nil {
			stack = append(stack, stackItem{right, item.path.Append(1)})
		}
		stack = append(stack, stackItem{item.node.left, item.path.Append(0)})
	}
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*Node
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.order < b.order
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
