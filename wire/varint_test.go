package wire_test

import (
	"errors"
	"testing"

	pberrors "github.com/wippyai/pbwire/errors"
	"github.com/wippyai/pbwire/wire"
)

func TestReadVarint(t *testing.T) {
	tests := []struct {
		encoded []byte
		value   uint64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x7f}, 127},
		{[]byte{0xa2, 0x74}, 14882},
		{[]byte{0xbe, 0xf7, 0x92, 0x84, 0x0b}, 2961488830},
		{[]byte{0xbe, 0xf7, 0x92, 0x84, 0x1b}, 7256456126},
		{[]byte{0x80, 0xe6, 0xeb, 0x9c, 0xc3, 0xc9, 0xa4, 0x49}, 41256202580718336},
		{[]byte{0x9b, 0xa8, 0xf9, 0xc2, 0xbb, 0xd6, 0x80, 0x85, 0xa6, 0x01}, 11964378330978735131},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}, 0xffffffffffffffff},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			c := wire.NewCursor(tt.encoded)
			got, err := c.ReadVarint()
			if err != nil {
				t.Fatalf("decode %x: %v", tt.encoded, err)
			}
			if got != tt.value {
				t.Errorf("decode %x: got %d, want %d", tt.encoded, got, tt.value)
			}
			if c.Position() != len(tt.encoded) {
				t.Errorf("decode %x: consumed %d bytes, want %d", tt.encoded, c.Position(), len(tt.encoded))
			}

			// Round trip through the append helper.
			enc := wire.AppendVarint(nil, tt.value)
			c2 := wire.NewCursor(enc)
			back, err := c2.ReadVarint()
			if err != nil {
				t.Fatalf("round trip %d: %v", tt.value, err)
			}
			if back != tt.value {
				t.Errorf("round trip: got %d, want %d", back, tt.value)
			}
		})
	}
}

func TestReadVarint_Truncated(t *testing.T) {
	tests := [][]byte{
		{},
		{0xf0},
		{0xf0, 0xab},
		{0xf0, 0xab, 0xc9, 0x9a, 0xf8, 0xb2},
	}

	for _, in := range tests {
		c := wire.NewCursor(in)
		_, err := c.ReadVarint()
		if !errors.Is(err, pberrors.ErrTruncated) {
			t.Errorf("decode %x: got %v, want truncated", in, err)
		}
		if c.Position() != 0 {
			t.Errorf("decode %x: position moved to %d on error", in, c.Position())
		}
	}
}

func TestReadVarint_Overflow(t *testing.T) {
	// The tenth byte may only be 0x00 or 0x01 in a 64-bit value.
	in := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02}
	c := wire.NewCursor(in)
	_, err := c.ReadVarint()
	if !errors.Is(err, pberrors.ErrMalformedVarint) {
		t.Fatalf("got %v, want malformed_varint", err)
	}
	if c.Position() != 0 {
		t.Errorf("position moved to %d on error", c.Position())
	}
}

func TestReadVarint_TooManyBytes(t *testing.T) {
	// Continuation bit still set on the tenth byte.
	in := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x80, 0x00}
	c := wire.NewCursor(in)
	_, err := c.ReadVarint()
	if !errors.Is(err, pberrors.ErrMalformedVarint) {
		t.Fatalf("got %v, want malformed_varint", err)
	}
}

func TestReadVarint_TenthByteLowBit(t *testing.T) {
	in := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	c := wire.NewCursor(in)
	got, err := c.ReadVarint()
	if err != nil {
		t.Fatal(err)
	}
	if want := uint64(1) << 63; got != want {
		t.Errorf("got %#x, want %#x", got, want)
	}
}

func TestZigzag32(t *testing.T) {
	tests := []struct {
		in   uint32
		want int32
	}{
		{0, 0},
		{1, -1},
		{2, 1},
		{3, -2},
		{0x7FFFFFFE, 0x3FFFFFFF},
		{0x7FFFFFFF, -0x40000000},
		{0xFFFFFFFE, 0x7FFFFFFF},
		{0xFFFFFFFF, -0x80000000},
	}
	for _, tt := range tests {
		if got := wire.Zigzag32(tt.in); got != tt.want {
			t.Errorf("Zigzag32(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestZigzag64(t *testing.T) {
	tests := []struct {
		in   uint64
		want int64
	}{
		{0, 0},
		{1, -1},
		{2, 1},
		{3, -2},
		{0x7FFFFFFE, 0x3FFFFFFF},
		{0x7FFFFFFF, -0x40000000},
		{0xFFFFFFFE, 0x7FFFFFFF},
		{0xFFFFFFFF, -0x80000000},
		{0xFFFFFFFFFFFFFFFE, 0x7FFFFFFFFFFFFFFF},
		{0xFFFFFFFFFFFFFFFF, -0x8000000000000000},
	}
	for _, tt := range tests {
		if got := wire.Zigzag64(tt.in); got != tt.want {
			t.Errorf("Zigzag64(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestZigzagRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 63, -64, 1 << 40, -(1 << 40), 1<<63 - 1, -1 << 63} {
		// Encode: (v << 1) ^ (v >> 63), then decode back.
		enc := uint64(v<<1) ^ uint64(v>>63)
		if got := wire.Zigzag64(enc); got != v {
			t.Errorf("round trip %d: got %d", v, got)
		}
	}
}
