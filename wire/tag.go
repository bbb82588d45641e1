package wire

import (
	"github.com/wippyai/pbwire/errors"
)

// Tag is the field key preceding every value in an encoded message: a field
// number and the wire type of the bytes that follow.
type Tag struct {
	Number uint32
	Type   WireType
}

// ReadTag reads one varint and splits it into field number and wire type.
//
// Field number 0 is illegal, as are numbers beyond MaxFieldNumber. Wire types
// 3 and 4 (group markers) and 6 and 7 (undefined) are rejected. The position
// is unchanged on any failure.
func ReadTag(c *Cursor) (Tag, error) {
	start := c.pos
	v, err := c.ReadVarint()
	if err != nil {
		return Tag{}, err
	}
	number := v >> 3
	if number == 0 {
		c.pos = start
		return Tag{}, errors.InvalidFieldNumber(start)
	}
	if number > MaxFieldNumber {
		c.pos = start
		return Tag{}, &errors.Error{
			Kind:   errors.KindInvalidFieldNumber,
			Offset: start,
			Detail: "field number exceeds 2^29-1",
		}
	}
	switch t := WireType(v & 0x7); t {
	case TypeVarint, TypeFixed64, TypeLengthDelimited, TypeFixed32:
		return Tag{Number: uint32(number), Type: t}, nil
	default:
		c.pos = start
		return Tag{}, errors.InvalidWireType(start, byte(v&0x7))
	}
}
