package prefixcode

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Bits is an immutable sequence of bits, stored packed 8 per byte with the
// first bit in the most significant position of the first byte.  The final
// byte is zero padded; Len tells valid bits apart from padding.
type Bits struct {
	buf []byte
	n   uint64
}

// MakeBits wraps a packed byte buffer holding n valid bits.  It fails unless
// len(buf) is exactly the number of bytes needed for n bits and every padding
// bit is 0.  The buffer is copied.
func MakeBits(buf []byte, n uint64) (Bits, error) {
	if want := bytesForBits(n); uint64(len(buf)) != want {
		return Bits{}, fmt.Errorf("%d bits need %d bytes, got %d", n, want, len(buf))
	}
	if pad := n % 8; pad != 0 {
		if last := buf[len(buf)-1]; last&(0xff>>pad) != 0 {
			return Bits{}, fmt.Errorf("non-zero padding bits in final byte %#02x", last)
		}
	}
	copied := make([]byte, len(buf))
	copy(copied, buf)
	return Bits{buf: copied, n: n}, nil
}

// ParseBits parses a string of '0' and '1' characters into Bits.
func ParseBits(str string) (Bits, error) {
	n := uint64(len(str))
	buf := make([]byte, bytesForBits(n))
	for i := uint64(0); i < n; i++ {
		switch str[i] {
		case '0':
		case '1':
			buf[i/8] |= 0x80 >> (i % 8)
		default:
			return Bits{}, fmt.Errorf("invalid character %q at index %d", str[i], i)
		}
	}
	return Bits{buf: buf, n: n}, nil
}

// Len returns the number of valid bits.
func (b Bits) Len() uint64 {
	return b.n
}

// At returns the i'th bit.
func (b Bits) At(i uint64) uint {
	assert.Assertf(i < b.n, "bit index %d out of range [0, %d)", i, b.n)
	return uint(b.buf[i/8]>>(7-i%8)) & 1
}

// Bytes returns a copy of the packed representation.
func (b Bits) Bytes() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}

// String returns the bits as a string of '0' and '1' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(int(b.n))
	for i := uint64(0); i < b.n; i++ {
		sb.WriteByte(byte('0' + b.At(i)))
	}
	return sb.String()
}

var _ fmt.Stringer = Bits{}
