package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/chronos-tachyon/prefixcode"
	"github.com/chronos-tachyon/prefixcode/internal/baseline"
)

type huffmanStats struct {
	Symbols         uint64  `json:"symbols"`
	DistinctSymbols int     `json:"distinct_symbols"`
	OriginalBits    uint64  `json:"original_bits"`
	CompressedBits  uint64  `json:"compressed_bits"`
	Ratio           float64 `json:"ratio"`
	SerializedBytes int     `json:"serialized_bytes"`
}

type statsReport struct {
	OriginalBytes int               `json:"original_bytes"`
	Huffman       huffmanStats      `json:"huffman"`
	Baselines     []baseline.Result `json:"baselines"`
}

func runStats(args []string, stdin io.Reader, stdout io.Writer) error {
	opts, err := parseOptions("stats", args)
	if err != nil {
		return err
	}

	data, err := loadSequence(opts, stdin)
	if err != nil {
		return err
	}

	p, err := prefixcode.Compress(prefixcode.SymbolsFromBytes(data))
	if err != nil {
		return err
	}
	raw, err := p.MarshalBinary()
	if err != nil {
		return err
	}

	codecs, err := baseline.Select(opts.codecs)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	opts.logf("running %d baseline codecs", len(codecs))
	results, err := baseline.Sizes(data, codecs...)
	if err != nil {
		return err
	}

	report := statsReport{
		OriginalBytes: len(data),
		Huffman: huffmanStats{
			Symbols:         p.SymbolCount,
			DistinctSymbols: p.Table.Len(),
			OriginalBits:    p.OriginalBits(),
			CompressedBits:  p.CompressedBits(),
			Ratio:           p.Ratio(),
			SerializedBytes: len(raw),
		},
		Baselines: results,
	}

	if opts.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	tw := tabwriter.NewWriter(stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "Original Size:\t%d bytes\n", report.OriginalBytes)
	fmt.Fprintf(tw, "Distinct Symbols:\t%d\n", report.Huffman.DistinctSymbols)
	fmt.Fprintf(tw, "Huffman Original Bits:\t%d\n", report.Huffman.OriginalBits)
	fmt.Fprintf(tw, "Huffman Compressed Bits:\t%d\n", report.Huffman.CompressedBits)
	fmt.Fprintf(tw, "Huffman Ratio:\t%.4f\n", report.Huffman.Ratio)
	fmt.Fprintf(tw, "Huffman Serialized Size:\t%d bytes\n", report.Huffman.SerializedBytes)
	for _, r := range report.Baselines {
		fmt.Fprintf(tw, "%s Size:\t%d bytes (ratio %.4f)\n", r.Codec, r.Bytes, r.Ratio)
	}
	return tw.Flush()
}

func runCodes(args []string, stdin io.Reader, stdout io.Writer) error {
	opts, err := parseOptions("codes", args)
	if err != nil {
		return err
	}

	data, err := loadSequence(opts, stdin)
	if err != nil {
		return err
	}

	seq := prefixcode.SymbolsFromBytes(data)
	ft := prefixcode.NewFrequencyTable(seq)
	table := prefixcode.NewCodeTable(prefixcode.BuildTree(ft))

	if opts.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(displayTable(table))
	}

	tw := tabwriter.NewWriter(stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "SYMBOL\tCOUNT\tCODE\n")
	for _, sym := range table.Symbols() {
		hc, _ := table.Lookup(sym)
		fmt.Fprintf(tw, "%s\t%d\t%s\n", displaySymbol(sym), ft.Count(sym), hc.Text())
	}
	return tw.Flush()
}
