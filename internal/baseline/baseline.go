// Package baseline measures how off-the-shelf general purpose compressors do
// on the same input, so that prefix-code results can be put in context.
package baseline

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

// Codec defines the compressor and decompressor functions for a compression
// format.
type Codec struct {
	Name            string
	newCompressor   func(w io.Writer) (io.WriteCloser, error)
	newDecompressor func(r io.Reader) (io.ReadCloser, error)
}

// Codecs lists the supported formats, in display order.
var Codecs = []Codec{
	{
		Name: "gzip",
		newCompressor: func(w io.Writer) (io.WriteCloser, error) {
			return gzip.NewWriterLevel(w, gzip.BestCompression)
		},
		newDecompressor: func(r io.Reader) (io.ReadCloser, error) {
			return gzip.NewReader(r)
		},
	},
	{
		Name: "zstd",
		newCompressor: func(w io.Writer) (io.WriteCloser, error) {
			return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		},
		newDecompressor: func(r io.Reader) (io.ReadCloser, error) {
			d, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return d.IOReadCloser(), nil
		},
	},
	{
		Name: "xz",
		newCompressor: func(w io.Writer) (io.WriteCloser, error) {
			return xz.NewWriter(w)
		},
		newDecompressor: func(r io.Reader) (io.ReadCloser, error) {
			xr, err := xz.NewReader(r)
			if err != nil {
				return nil, err
			}
			return io.NopCloser(xr), nil
		},
	},
	{
		Name: "lzma",
		newCompressor: func(w io.Writer) (io.WriteCloser, error) {
			return lzma.NewWriter(w)
		},
		newDecompressor: func(r io.Reader) (io.ReadCloser, error) {
			lr, err := lzma.NewReader(r)
			if err != nil {
				return nil, err
			}
			return io.NopCloser(lr), nil
		},
	},
}

// Lookup returns the codec with the given name.
func Lookup(name string) (Codec, bool) {
	for _, c := range Codecs {
		if c.Name == name {
			return c, true
		}
	}
	return Codec{}, false
}

// Select resolves a comma separated list of codec names, such as
// "gzip,xz".  An empty list selects every codec.
func Select(names string) ([]Codec, error) {
	if names == "" {
		return Codecs, nil
	}
	var out []Codec
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		c, found := Lookup(name)
		if !found {
			return nil, fmt.Errorf("unknown codec %q", name)
		}
		out = append(out, c)
	}
	return out, nil
}

// Compress returns data compressed with this codec.
func (c Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.compressTo(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress is the inverse of Compress.
func (c Codec) Decompress(data []byte) ([]byte, error) {
	r, err := c.newDecompressor(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Name, err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("%s: %w", c.Name, err)
	}
	if err = r.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", c.Name, err)
	}
	return out, nil
}

func (c Codec) compressTo(w io.Writer, data []byte) error {
	cw, err := c.newCompressor(w)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	if _, err = io.Copy(cw, bytes.NewReader(data)); err != nil {
		cw.Close()
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	if err = cw.Close(); err != nil {
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	return nil
}

// Result is the compressed size of an input under one codec.
type Result struct {
	Codec string  `json:"codec"`
	Bytes int64   `json:"bytes"`
	Ratio float64 `json:"ratio"`
}

// Sizes compresses data with each of the given codecs, or with every codec
// in Codecs if none are given.  Each compressed form is decompressed again
// and compared with data; a mismatch is an error.
func Sizes(data []byte, codecs ...Codec) ([]Result, error) {
	if len(codecs) == 0 {
		codecs = Codecs
	}
	results := make([]Result, 0, len(codecs))
	for _, c := range codecs {
		compressed, err := c.Compress(data)
		if err != nil {
			return results, err
		}
		restored, err := c.Decompress(compressed)
		if err != nil {
			return results, err
		}
		if !bytes.Equal(data, restored) {
			return results, fmt.Errorf("%s: decompressed output differs from input", c.Name)
		}

		n := int64(len(compressed))
		var ratio float64
		if len(data) != 0 {
			ratio = float64(n) / float64(len(data))
		}
		results = append(results, Result{Codec: c.Name, Bytes: n, Ratio: ratio})
	}
	return results, nil
}
