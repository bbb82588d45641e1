package wire

import (
	"encoding/binary"

	"github.com/wippyai/pbwire/errors"
)

// Cursor is a bounds-checked, non-owning view over a byte buffer with a
// monotonic read position. Every read either advances the position by exactly
// the bytes consumed or fails without moving it; no operation ever reads past
// the end of the buffer.
//
// A Cursor never copies the buffer. Sub-slices returned from ReadBytes alias
// the underlying buffer and must not outlive it.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor creates a Cursor over buf starting at position 0.
func NewCursor(buf []byte) Cursor {
	return Cursor{buf: buf}
}

// Position returns the current byte position.
func (c *Cursor) Position() int {
	return c.pos
}

// Len returns the total length of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Peek returns the next n bytes without advancing the position.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, errors.Truncated(c.pos, n, c.Remaining())
	}
	return c.buf[c.pos : c.pos+n], nil
}

// ReadByte reads a single byte and advances the position.
func (c *Cursor) ReadByte() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, errors.Truncated(c.pos, 1, 0)
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

// ReadBytes reads exactly n bytes as a zero-copy sub-slice of the underlying
// buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, errors.Truncated(c.pos, n, c.Remaining())
	}
	b := c.buf[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return b, nil
}

// SkipBytes advances the position by n without materializing the bytes.
func (c *Cursor) SkipBytes(n int) error {
	if n < 0 || n > c.Remaining() {
		return errors.Truncated(c.pos, n, c.Remaining())
	}
	c.pos += n
	return nil
}

// ReadFixed32 reads a little-endian uint32 (fixed 4 bytes).
func (c *Cursor) ReadFixed32() (uint32, error) {
	if c.Remaining() < 4 {
		return 0, errors.Truncated(c.pos, 4, c.Remaining())
	}
	v := binary.LittleEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadFixed64 reads a little-endian uint64 (fixed 8 bytes).
func (c *Cursor) ReadFixed64() (uint64, error) {
	if c.Remaining() < 8 {
		return 0, errors.Truncated(c.pos, 8, c.Remaining())
	}
	v := binary.LittleEndian.Uint64(c.buf[c.pos:])
	c.pos += 8
	return v, nil
}
