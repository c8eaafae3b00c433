package prefixcode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the maximum number of bits in a Code.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits, right-aligned.  The first
	// bit is the most significant of the Size low bits of Bits.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.  Bits above
// Size are cleared.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= MaxCodeSize, "size %d > MaxCodeSize %d", size, MaxCodeSize)
	if size < MaxCodeSize {
		bits &= (uint64(1) << size) - 1
	}
	return Code{Size: size, Bits: bits}
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("code %q is longer than %d bits", str, MaxCodeSize)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("invalid character %q at index %d of code %q", str[i], i, str)
		}
	}
	return hc, nil
}

// Append returns the Code with one more bit added at the end.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "cannot append to a %d-bit code", hc.Size)
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | uint64(bit&1)}
}

// Bit returns the i'th bit of the Code, counting from 0 at the first bit.
func (hc Code) Bit(i byte) uint {
	assert.Assertf(i < hc.Size, "bit index %d out of range for a %d-bit code", i, hc.Size)
	return uint(hc.Bits>>(hc.Size-1-i)) & 1
}

// HasPrefix returns true iff the first prefix.Size bits of hc equal prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// Text returns the bits of this Code as a string of '0' and '1' characters.
func (hc Code) Text() string {
	if hc.Size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return fmt.Sprintf(format, hc.Bits)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Text())
}

var _ fmt.Stringer = Code{}

func compareCodeText(a, b Code) int {
	return strings.Compare(a.Text(), b.Text())
}
