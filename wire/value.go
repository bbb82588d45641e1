package wire

import (
	"math"
	"unicode/utf8"

	"github.com/wippyai/pbwire/errors"
)

// Value is a decoded field value: a closed tagged union over the four wire
// types. Varint values hold the raw uint64; fixed values hold the raw
// little-endian bits; length-delimited values hold a zero-copy sub-slice of
// the message buffer.
//
// Typed accessors reinterpret the raw payload on demand and fail with
// type_mismatch when called on the wrong variant. Nothing is validated
// beyond the wire format itself until an accessor asks for it; in
// particular, bytes are only checked for UTF-8 by String.
type Value struct {
	raw []byte
	num uint64
	wt  WireType
}

// ReadValue consumes exactly the bytes belonging to one field of the given
// wire type. The position is unchanged on any failure, including a
// length-delimited field whose declared length exceeds the remaining bytes.
func ReadValue(c *Cursor, t WireType) (Value, error) {
	start := c.pos
	switch t {
	case TypeVarint:
		v, err := c.ReadVarint()
		if err != nil {
			return Value{}, err
		}
		return Value{wt: t, num: v}, nil

	case TypeFixed64:
		v, err := c.ReadFixed64()
		if err != nil {
			return Value{}, err
		}
		return Value{wt: t, num: v}, nil

	case TypeFixed32:
		v, err := c.ReadFixed32()
		if err != nil {
			return Value{}, err
		}
		return Value{wt: t, num: uint64(v)}, nil

	case TypeLengthDelimited:
		length, err := c.ReadVarint()
		if err != nil {
			return Value{}, err
		}
		if length > math.MaxInt {
			c.pos = start
			return Value{}, errors.MalformedLength(start, length)
		}
		raw, err := c.ReadBytes(int(length))
		if err != nil {
			c.pos = start
			return Value{}, err
		}
		return Value{wt: t, raw: raw}, nil

	default:
		return Value{}, errors.InvalidWireType(start, byte(t))
	}
}

// SkipValue advances the cursor past one field of the given wire type,
// consuming exactly the bytes ReadValue would, without materializing the
// value. The position is unchanged on failure.
func SkipValue(c *Cursor, t WireType) error {
	start := c.pos
	switch t {
	case TypeVarint:
		_, err := c.ReadVarint()
		return err

	case TypeFixed64:
		return c.SkipBytes(8)

	case TypeFixed32:
		return c.SkipBytes(4)

	case TypeLengthDelimited:
		length, err := c.ReadVarint()
		if err != nil {
			return err
		}
		if length > math.MaxInt {
			c.pos = start
			return errors.MalformedLength(start, length)
		}
		if err := c.SkipBytes(int(length)); err != nil {
			c.pos = start
			return err
		}
		return nil

	default:
		return errors.InvalidWireType(start, byte(t))
	}
}

// Type returns the wire type the value was decoded from.
func (v Value) Type() WireType {
	return v.wt
}

// Varint accessors

// Uint64 returns the value of a uint64 field.
func (v Value) Uint64() (uint64, error) {
	if v.wt != TypeVarint {
		return 0, errors.TypeMismatch(TypeVarint.String(), v.wt.String())
	}
	return v.num, nil
}

// Uint32 returns the value of a uint32 field.
func (v Value) Uint32() (uint32, error) {
	if v.wt != TypeVarint {
		return 0, errors.TypeMismatch(TypeVarint.String(), v.wt.String())
	}
	return uint32(v.num), nil
}

// Int64 returns the value of an int64 field.
func (v Value) Int64() (int64, error) {
	if v.wt != TypeVarint {
		return 0, errors.TypeMismatch(TypeVarint.String(), v.wt.String())
	}
	return int64(v.num), nil
}

// Int32 returns the value of an int32 field.
func (v Value) Int32() (int32, error) {
	if v.wt != TypeVarint {
		return 0, errors.TypeMismatch(TypeVarint.String(), v.wt.String())
	}
	return int32(v.num), nil
}

// Bool returns the value of a bool field.
func (v Value) Bool() (bool, error) {
	if v.wt != TypeVarint {
		return false, errors.TypeMismatch(TypeVarint.String(), v.wt.String())
	}
	return v.num != 0, nil
}

// Enum returns the value of an enum field.
func (v Value) Enum() (int32, error) {
	return v.Int32()
}

// Sint32 returns the value of a sint32 field, zigzag-decoded.
func (v Value) Sint32() (int32, error) {
	if v.wt != TypeVarint {
		return 0, errors.TypeMismatch(TypeVarint.String(), v.wt.String())
	}
	return Zigzag32(uint32(v.num)), nil
}

// Sint64 returns the value of a sint64 field, zigzag-decoded.
func (v Value) Sint64() (int64, error) {
	if v.wt != TypeVarint {
		return 0, errors.TypeMismatch(TypeVarint.String(), v.wt.String())
	}
	return Zigzag64(v.num), nil
}

// Fixed64 accessors

// Fixed64 returns the value of a fixed64 field.
func (v Value) Fixed64() (uint64, error) {
	if v.wt != TypeFixed64 {
		return 0, errors.TypeMismatch(TypeFixed64.String(), v.wt.String())
	}
	return v.num, nil
}

// Sfixed64 returns the value of an sfixed64 field.
func (v Value) Sfixed64() (int64, error) {
	if v.wt != TypeFixed64 {
		return 0, errors.TypeMismatch(TypeFixed64.String(), v.wt.String())
	}
	return int64(v.num), nil
}

// Double returns the value of a double field.
func (v Value) Double() (float64, error) {
	if v.wt != TypeFixed64 {
		return 0, errors.TypeMismatch(TypeFixed64.String(), v.wt.String())
	}
	return math.Float64frombits(v.num), nil
}

// Fixed32 accessors

// Fixed32 returns the value of a fixed32 field.
func (v Value) Fixed32() (uint32, error) {
	if v.wt != TypeFixed32 {
		return 0, errors.TypeMismatch(TypeFixed32.String(), v.wt.String())
	}
	return uint32(v.num), nil
}

// Sfixed32 returns the value of an sfixed32 field.
func (v Value) Sfixed32() (int32, error) {
	if v.wt != TypeFixed32 {
		return 0, errors.TypeMismatch(TypeFixed32.String(), v.wt.String())
	}
	return int32(v.num), nil
}

// Float returns the value of a float field.
func (v Value) Float() (float32, error) {
	if v.wt != TypeFixed32 {
		return 0, errors.TypeMismatch(TypeFixed32.String(), v.wt.String())
	}
	return math.Float32frombits(uint32(v.num)), nil
}

// Length-delimited accessors

// Bytes returns the value of a bytes field as a zero-copy sub-slice of the
// message buffer.
func (v Value) Bytes() ([]byte, error) {
	if v.wt != TypeLengthDelimited {
		return nil, errors.TypeMismatch(TypeLengthDelimited.String(), v.wt.String())
	}
	return v.raw, nil
}

// String returns the value of a string field, validating UTF-8.
func (v Value) String() (string, error) {
	if v.wt != TypeLengthDelimited {
		return "", errors.TypeMismatch(TypeLengthDelimited.String(), v.wt.String())
	}
	if !utf8.Valid(v.raw) {
		return "", errors.InvalidUTF8(v.raw)
	}
	return string(v.raw), nil
}

// Message reinterprets the value as a nested message. The returned Message
// views the field's sub-slice; iterating it never touches the parent
// iterator's cursor.
func (v Value) Message() (Message, error) {
	if v.wt != TypeLengthDelimited {
		return Message{}, errors.TypeMismatch(TypeLengthDelimited.String(), v.wt.String())
	}
	return NewMessage(v.raw), nil
}

// Packed reinterprets the value as a packed repeated payload of the given
// element kind.
func (v Value) Packed(kind PackedKind) (*Packed, error) {
	if v.wt != TypeLengthDelimited {
		return nil, errors.TypeMismatch(TypeLengthDelimited.String(), v.wt.String())
	}
	return &Packed{c: NewCursor(v.raw), kind: kind}, nil
}

// Repeated yields the elements of a repeated scalar field whichever way it
// was encoded: a length-delimited packed payload, or a single unpacked
// occurrence whose wire type matches the element kind. Callers merge
// occurrences across fields of the same number with one loop per field.
func (v Value) Repeated(kind PackedKind) (*Packed, error) {
	if v.wt == TypeLengthDelimited {
		return &Packed{c: NewCursor(v.raw), kind: kind}, nil
	}
	if v.wt == kind.wireType() {
		return &Packed{single: true, num: v.num, kind: kind}, nil
	}
	return nil, errors.TypeMismatch(kind.wireType().String(), v.wt.String())
}
