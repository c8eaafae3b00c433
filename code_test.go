package prefixcode

import (
	"bytes"
	"testing"
)

func TestCode(t *testing.T) {
	type testRow struct {
		text string
		size byte
		bits uint64
	}

	testData := [...]testRow{
		{text: "", size: 0, bits: 0x00},
		{text: "0", size: 1, bits: 0x00},
		{text: "1", size: 1, bits: 0x01},
		{text: "110", size: 3, bits: 0x06},
		{text: "0011", size: 4, bits: 0x03},
	}
	for _, row := range testData {
		hc := MakeCode(row.size, row.bits)
		t.Run(hc.String(), func(t *testing.T) {
			if text := hc.Text(); text != row.text {
				t.Errorf("expected text %q, got %q", row.text, text)
			}
			parsed, err := ParseCode(row.text)
			if err != nil {
				t.Fatalf("ParseCode(%q) failed: %v", row.text, err)
			}
			if parsed != hc {
				t.Errorf("ParseCode(%q) = %#v, expected %#v", row.text, parsed, hc)
			}
			for i := byte(0); i < hc.Size; i++ {
				if bit := hc.Bit(i); bit != uint(row.text[i]-'0') {
					t.Errorf("Bit(%d) = %d, expected %c", i, bit, row.text[i])
				}
			}
		})
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		code   string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{code: "110", prefix: "", expect: true},
		{code: "110", prefix: "1", expect: true},
		{code: "110", prefix: "11", expect: true},
		{code: "110", prefix: "110", expect: true},
		{code: "110", prefix: "111", expect: false},
		{code: "110", prefix: "0", expect: false},
		{code: "110", prefix: "1100", expect: false},
	}
	for _, row := range testData {
		t.Run(row.code+"/"+row.prefix, func(t *testing.T) {
			hc, _ := ParseCode(row.code)
			prefix, _ := ParseCode(row.prefix)
			if actual := hc.HasPrefix(prefix); actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}

func TestMakeCode_MasksHighBits(t *testing.T) {
	hc := MakeCode(2, 0xff)
	if hc.Bits != 0x03 {
		t.Errorf("expected bits 0x03, got %#x", hc.Bits)
	}
	full := MakeCode(MaxCodeSize, ^uint64(0))
	if full.Bits != ^uint64(0) {
		t.Errorf("expected all 64 bits kept, got %#x", full.Bits)
	}
}

func TestParseCode_Invalid(t *testing.T) {
	for _, str := range []string{"012", "x", string(make([]byte, MaxCodeSize+1))} {
		if _, err := ParseCode(str); err == nil {
			t.Errorf("ParseCode(%q): expected error", str)
		}
	}
}

func TestBits(t *testing.T) {
	str := "00000101010111111110"
	b, err := ParseBits(str)
	if err != nil {
		t.Fatalf("ParseBits failed: %v", err)
	}
	if b.Len() != 20 {
		t.Errorf("expected Len() = 20, got %d", b.Len())
	}
	if expect, actual := []byte{0x05, 0x5f, 0xe0}, b.Bytes(); !bytes.Equal(expect, actual) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expect, actual)
	}
	if actual := b.String(); actual != str {
		t.Errorf("wrong string:\n\texpect: %s\n\tactual: %s", str, actual)
	}

	again, err := MakeBits(b.Bytes(), b.Len())
	if err != nil {
		t.Fatalf("MakeBits failed: %v", err)
	}
	if again.String() != str {
		t.Errorf("MakeBits round trip: expected %s, got %s", str, again.String())
	}
}

func TestMakeBits_Invalid(t *testing.T) {
	type testRow struct {
		name string
		buf  []byte
		n    uint64
	}

	testData := [...]testRow{
		{name: "short", buf: []byte{0x05}, n: 20},
		{name: "long", buf: []byte{0x05, 0x5f, 0xe0, 0x00}, n: 20},
		{name: "dirty-padding", buf: []byte{0x05, 0x5f, 0xe1}, n: 20},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			if _, err := MakeBits(row.buf, row.n); err == nil {
				t.Error("expected error")
			}
		})
	}
}
