package wire

import (
	"encoding/binary"

	"github.com/wippyai/pbwire/errors"
)

// Varint decoding for the protobuf base-128 encoding.

// ReadVarint reads one varint and returns its value as a raw uint64.
//
// The encoding is capped at MaxVarintLen bytes: a tenth byte with its
// continuation bit set, or one encoding more than the single remaining
// significant bit of a 64-bit value, fails with malformed_varint. Running out
// of buffer before a terminating byte fails with truncated. The position is
// unchanged on failure.
func (c *Cursor) ReadVarint() (uint64, error) {
	// Single-byte fast path covers most tags and small scalars.
	if c.pos < len(c.buf) {
		if b := c.buf[c.pos]; b < 0x80 {
			c.pos++
			return uint64(b), nil
		}
	}

	var v uint64
	for i := 0; i < MaxVarintLen; i++ {
		if c.pos+i >= len(c.buf) {
			return 0, errors.Truncated(len(c.buf), 1, 0)
		}
		b := c.buf[c.pos+i]
		if i == MaxVarintLen-1 {
			// Bytes 1-9 carry 63 bits; only the low bit of byte 10 is
			// meaningful. Anything else overflows or over-runs the cap.
			if b > 1 {
				if b >= 0x80 {
					return 0, errors.MalformedVarint(c.pos+i, "varint exceeds 10 bytes")
				}
				return 0, errors.MalformedVarint(c.pos+i, "varint overflows 64 bits")
			}
			v |= uint64(b) << 63
			c.pos += MaxVarintLen
			return v, nil
		}
		v |= uint64(b&0x7f) << (7 * i)
		if b < 0x80 {
			c.pos += i + 1
			return v, nil
		}
	}
	// Unreachable: the loop always returns by the tenth byte.
	return 0, errors.MalformedVarint(c.pos, "varint exceeds 10 bytes")
}

// Zigzag32 maps a zigzag-encoded uint32 back to a signed int32 (sint32).
func Zigzag32(n uint32) int32 {
	return int32(n>>1) ^ -int32(n&1)
}

// Zigzag64 maps a zigzag-encoded uint64 back to a signed int64 (sint64).
func Zigzag64(n uint64) int64 {
	return int64(n>>1) ^ -int64(n&1)
}

// Append helpers mirror the decoder for tests and fixtures. They are not an
// encoder layer: no message builder, no schema awareness.

// AppendVarint appends v in base-128 varint encoding.
func AppendVarint(b []byte, v uint64) []byte {
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

// AppendTag appends a field tag for the given number and wire type.
func AppendTag(b []byte, number uint32, t WireType) []byte {
	return AppendVarint(b, uint64(number)<<3|uint64(t))
}

// AppendFixed32 appends v as 4 little-endian bytes.
func AppendFixed32(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}

// AppendFixed64 appends v as 8 little-endian bytes.
func AppendFixed64(b []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(b, v)
}

// AppendBytes appends v as a varint-length-prefixed byte run.
func AppendBytes(b []byte, v []byte) []byte {
	b = AppendVarint(b, uint64(len(v)))
	return append(b, v...)
}
