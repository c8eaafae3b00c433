package prefixcode

import (
	"strings"
	"testing"
)

func TestBuildTree(t *testing.T) {
	root := BuildTree(NewFrequencyTable(SymbolsFromString("AAAAABBBCCD")))

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tNode(\"\") = {11}\n",
		"\tLeaf(\"0\") = {65, 5}\n",
		"\tNode(\"1\") = {6}\n",
		"\tLeaf(\"10\") = {66, 3}\n",
		"\tNode(\"11\") = {3}\n",
		"\tLeaf(\"110\") = {68, 1}\n",
		"\tLeaf(\"111\") = {67, 2}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = root.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if root.Symbol() != InvalidSymbol {
		t.Errorf("expected root to hold no symbol, got %d", root.Symbol())
	}
	if root.Weight() != 11 {
		t.Errorf("expected root weight 11, got %d", root.Weight())
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	ft, err := FrequencyTableFromCounts(map[Symbol]uint64{'A': 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := BuildTree(ft)

	if root.IsLeaf() {
		t.Fatal("expected a synthetic internal root")
	}
	if root.Right() != nil {
		t.Errorf("expected no right child, got %v", root.Right())
	}
	leaf := root.Left()
	if !leaf.IsLeaf() || leaf.Symbol() != 'A' || leaf.Weight() != 5 {
		t.Errorf("wrong leaf: symbol %d, weight %d", leaf.Symbol(), leaf.Weight())
	}
}

func TestBuildTree_Empty(t *testing.T) {
	if root := BuildTree(FrequencyTable{}); root != nil {
		t.Errorf("expected nil tree, got %v", root)
	}
}

func TestBuildTree_Ties(t *testing.T) {
	// All weights equal: leaves merge in ascending symbol order, then
	// internal nodes in creation order.
	root := BuildTree(NewFrequencyTable(SymbolsFromString("DCBA")))

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tNode(\"\") = {4}\n",
		"\tNode(\"0\") = {2}\n",
		"\tLeaf(\"00\") = {65, 1}\n",
		"\tLeaf(\"01\") = {66, 1}\n",
		"\tNode(\"1\") = {2}\n",
		"\tLeaf(\"10\") = {67, 1}\n",
		"\tLeaf(\"11\") = {68, 1}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = root.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}
