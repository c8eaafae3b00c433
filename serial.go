package prefixcode

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"io"
	"math"

	"github.com/icza/bitio"
)

// The persisted layout of a Payload:
//
//     magic       4 bytes  "PFX1"
//     numSymbols  uvarint
//     repeat numSymbols times, in ascending symbol order:
//         symbol  uvarint
//         size    8 bits
//         bits    size bits, first bit first
//     padding     zero bits up to the next byte boundary
//     bitCount    uvarint
//     seqLen      uvarint
//     payload     ceil(bitCount/8) bytes, final byte zero padded
//
// The code table is stored explicitly; the payload cannot be decoded
// without it.

var payloadMagic = [4]byte{'P', 'F', 'X', '1'}

// MarshalBinary returns the persisted form of the Payload.
func (p Payload) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.encodeTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the persisted form of the Payload to the given writer.
func (p Payload) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := p.encodeTo(&buf); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

func (p Payload) encodeTo(buf *bytes.Buffer) error {
	var scratch [binary.MaxVarintLen64]byte
	bw := bitio.NewWriter(buf)
	writeUvarint := func(x uint64) {
		bw.TryWrite(binary.AppendUvarint(scratch[:0], x))
	}

	bw.TryWrite(payloadMagic[:])
	writeUvarint(uint64(len(p.Table.symbols)))
	for _, sym := range p.Table.symbols {
		hc := p.Table.codes[sym]
		writeUvarint(uint64(sym))
		bw.TryWriteBits(uint64(hc.Size), 8)
		bw.TryWriteBits(hc.Bits, hc.Size)
	}
	bw.TryAlign()
	writeUvarint(p.Data.n)
	writeUvarint(p.SymbolCount)
	bw.TryWrite(p.Data.buf)

	if bw.TryError != nil {
		return bw.TryError
	}
	return bw.Close()
}

// ReadPayload reads one persisted Payload from the given reader.  Malformed
// input yields an error wrapping ErrCorrupt.  If r is not an io.ByteReader it
// is buffered, so bytes past the end of the Payload may be consumed.
func ReadPayload(r io.Reader) (Payload, error) {
	pr := payloadReader{r: bitio.NewReader(r)}

	var magic [4]byte
	for i := range magic {
		b, err := pr.ReadByte()
		if err != nil {
			return Payload{}, corruptf("failed to read magic: %v", err)
		}
		magic[i] = b
	}
	if magic != payloadMagic {
		return Payload{}, corruptf("bad magic %q", magic[:])
	}

	numSymbols, err := pr.readUvarint("symbol count")
	if err != nil {
		return Payload{}, err
	}
	if numSymbols > uint64(MaxSymbol)+1 {
		return Payload{}, corruptf("symbol count %d exceeds the alphabet", numSymbols)
	}

	codes := make(map[Symbol]Code)
	for i := uint64(0); i < numSymbols; i++ {
		value, err := pr.readUvarint("symbol")
		if err != nil {
			return Payload{}, err
		}
		if value > uint64(MaxSymbol) {
			return Payload{}, corruptf("symbol %d > MaxSymbol %d", value, MaxSymbol)
		}
		sym := Symbol(value)
		if _, dupe := codes[sym]; dupe {
			return Payload{}, corruptf("symbol %d appears twice in the code table", sym)
		}

		size, err := pr.readBits(8, "code size")
		if err != nil {
			return Payload{}, err
		}
		if size == 0 || size > MaxCodeSize {
			return Payload{}, corruptf("symbol %d has code size %d, expected 1..%d", sym, size, MaxCodeSize)
		}

		bits, err := pr.readBits(uint8(size), "code bits")
		if err != nil {
			return Payload{}, err
		}
		codes[sym] = MakeCode(byte(size), bits)
	}

	if pad := (8 - pr.pos%8) % 8; pad != 0 {
		bits, err := pr.readBits(uint8(pad), "code table padding")
		if err != nil {
			return Payload{}, err
		}
		if bits != 0 {
			return Payload{}, corruptf("non-zero code table padding")
		}
	}

	table, err := CodeTableFromCodes(codes)
	if err != nil {
		return Payload{}, corruptf("%v", err)
	}

	bitCount, err := pr.readUvarint("bit count")
	if err != nil {
		return Payload{}, err
	}
	if bitCount > math.MaxInt64 {
		return Payload{}, corruptf("bit count %d is too large", bitCount)
	}

	seqLen, err := pr.readUvarint("sequence length")
	if err != nil {
		return Payload{}, err
	}

	var data bytes.Buffer
	want := int64(bytesForBits(bitCount))
	if n, err := io.CopyN(&data, pr.r, want); err != nil {
		return Payload{}, corruptf("expected %d payload bytes, got %d: %v", want, n, err)
	}

	bits, err := MakeBits(data.Bytes(), bitCount)
	if err != nil {
		return Payload{}, corruptf("%v", err)
	}

	return Payload{Table: table, Data: bits, SymbolCount: seqLen}, nil
}

// UnmarshalBinary is the inverse of MarshalBinary.  Trailing bytes are an
// error.
func (p *Payload) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	tmp, err := ReadPayload(r)
	if err != nil {
		return err
	}
	if r.Len() != 0 {
		return corruptf("%d trailing bytes", r.Len())
	}
	*p = tmp
	return nil
}

var (
	_ encoding.BinaryMarshaler   = Payload{}
	_ encoding.BinaryUnmarshaler = (*Payload)(nil)
	_ io.WriterTo                = Payload{}
)

// type payloadReader {{{

// payloadReader tracks the bit position within the persisted layout.
type payloadReader struct {
	r   *bitio.Reader
	pos uint64
}

func (pr *payloadReader) ReadByte() (byte, error) {
	b, err := pr.r.ReadByte()
	if err == nil {
		pr.pos += 8
	}
	return b, err
}

func (pr *payloadReader) readBits(n uint8, what string) (uint64, error) {
	u, err := pr.r.ReadBits(n)
	if err != nil {
		return 0, corruptf("failed to read %s: %v", what, err)
	}
	pr.pos += uint64(n)
	return u, nil
}

func (pr *payloadReader) readUvarint(what string) (uint64, error) {
	x, err := binary.ReadUvarint(pr)
	if err != nil {
		return 0, corruptf("failed to read %s: %v", what, err)
	}
	return x, nil
}

var _ io.ByteReader = (*payloadReader)(nil)

// }}}
