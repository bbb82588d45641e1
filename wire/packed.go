package wire

// PackedKind selects how elements of a packed repeated payload are laid out:
// back-to-back varints, or fixed 4- or 8-byte little-endian values.
type PackedKind int

const (
	PackedVarint PackedKind = iota
	PackedFixed32
	PackedFixed64
)

func (k PackedKind) String() string {
	switch k {
	case PackedVarint:
		return "varint"
	case PackedFixed32:
		return "fixed32"
	case PackedFixed64:
		return "fixed64"
	default:
		return "invalid"
	}
}

// wireType maps an element kind to the wire type a single unpacked
// occurrence of the same field would carry.
func (k PackedKind) wireType() WireType {
	switch k {
	case PackedFixed32:
		return TypeFixed32
	case PackedFixed64:
		return TypeFixed64
	default:
		return TypeVarint
	}
}

// Packed is a lazy, single-pass sequence of scalars extracted from one
// packed repeated field's payload. Next yields the raw bits of each element;
// the caller reinterprets them (Zigzag64 for sint, math.Float32frombits for
// float, plain truncation for the narrower integer types).
//
// A payload that ends mid-element is malformed: Next returns false and Err
// reports truncated. Re-scanning means constructing a fresh Packed from the
// same Value, which is always possible since the underlying slice is
// immutable.
type Packed struct {
	err    error
	c      Cursor
	num    uint64
	kind   PackedKind
	single bool
	done   bool
}

// Next yields the raw bits of the next element. It returns false when the
// payload is exhausted or malformed; check Err to tell the two apart.
func (p *Packed) Next() (uint64, bool) {
	if p.err != nil || p.done {
		return 0, false
	}
	if p.single {
		p.done = true
		return p.num, true
	}
	if p.c.Remaining() == 0 {
		p.done = true
		return 0, false
	}
	switch p.kind {
	case PackedFixed32:
		v, err := p.c.ReadFixed32()
		if err != nil {
			p.err = err
			return 0, false
		}
		return uint64(v), true
	case PackedFixed64:
		v, err := p.c.ReadFixed64()
		if err != nil {
			p.err = err
			return 0, false
		}
		return v, true
	default:
		v, err := p.c.ReadVarint()
		if err != nil {
			p.err = err
			return 0, false
		}
		return v, true
	}
}

// Err returns the error that stopped iteration, or nil after a clean pass.
func (p *Packed) Err() error {
	return p.err
}
