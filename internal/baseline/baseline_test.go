package baseline

import (
	"bytes"
	"strings"
	"testing"
)

var genome = []byte(strings.Repeat("ACGTTGCAAGGCTTAACCGGTA", 200))

func TestCodecs_RoundTrip(t *testing.T) {
	for _, c := range Codecs {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			compressed, err := c.Compress(genome)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			actual, err := c.Decompress(compressed)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(genome, actual) {
				t.Errorf("round trip differs")
			}
		})
	}
}

func TestSizes(t *testing.T) {
	results, err := Sizes(genome)
	if err != nil {
		t.Fatalf("Sizes failed: %v", err)
	}
	if len(results) != len(Codecs) {
		t.Fatalf("expected %d results, got %d", len(Codecs), len(results))
	}
	for i, r := range results {
		if r.Codec != Codecs[i].Name {
			t.Errorf("result %d: expected codec %q, got %q", i, Codecs[i].Name, r.Codec)
		}
		if r.Bytes <= 0 || r.Ratio >= 1 {
			t.Errorf("%s: implausible result %d bytes, ratio %.4f", r.Codec, r.Bytes, r.Ratio)
		}

		compressed, err := Codecs[i].Compress(genome)
		if err != nil {
			t.Fatalf("%s: Compress failed: %v", r.Codec, err)
		}
		if r.Bytes != int64(len(compressed)) {
			t.Errorf("%s: Sizes reported %d bytes, Compress produced %d", r.Codec, r.Bytes, len(compressed))
		}
	}
}

func TestSizes_Subset(t *testing.T) {
	codecs, err := Select("xz, gzip")
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	results, err := Sizes(genome, codecs...)
	if err != nil {
		t.Fatalf("Sizes failed: %v", err)
	}
	if len(results) != 2 || results[0].Codec != "xz" || results[1].Codec != "gzip" {
		t.Errorf("wrong results: %+v", results)
	}
}

func TestSelect(t *testing.T) {
	type testRow struct {
		names  string
		expect []string
		ok     bool
	}

	testData := [...]testRow{
		{names: "", expect: []string{"gzip", "zstd", "xz", "lzma"}, ok: true},
		{names: "zstd", expect: []string{"zstd"}, ok: true},
		{names: "lzma,gzip", expect: []string{"lzma", "gzip"}, ok: true},
		{names: "bzip2", ok: false},
		{names: "gzip,", ok: false},
	}
	for _, row := range testData {
		t.Run(row.names, func(t *testing.T) {
			codecs, err := Select(row.names)
			if ok := err == nil; ok != row.ok {
				t.Fatalf("expected success %v, got error %v", row.ok, err)
			}
			if len(codecs) != len(row.expect) {
				t.Fatalf("expected %v, got %d codecs", row.expect, len(codecs))
			}
			for i, c := range codecs {
				if c.Name != row.expect[i] {
					t.Errorf("codec %d: expected %q, got %q", i, row.expect[i], c.Name)
				}
			}
		})
	}
}
