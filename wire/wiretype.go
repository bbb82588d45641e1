package wire

// Wire format limits.
const (
	// MaxVarintLen is the maximum number of bytes in an encoded varint
	// (ceil(64/7)).
	MaxVarintLen = 10

	// MaxFieldNumber is the largest field number the tag encoding admits.
	MaxFieldNumber = 1<<29 - 1

	// FirstReservedNumber and LastReservedNumber bound the field number
	// range reserved for the protobuf implementation itself. The decoder
	// passes these through; rejecting them is a schema-layer concern.
	FirstReservedNumber = 19000
	LastReservedNumber  = 19999
)

// WireType is the 3-bit code in a field tag selecting the byte-layout family.
type WireType byte

const (
	TypeVarint          WireType = 0
	TypeFixed64         WireType = 1
	TypeLengthDelimited WireType = 2
	TypeFixed32         WireType = 5

	// Wire types 3 and 4 delimit groups, a legacy encoding this decoder
	// rejects at tag decode. 6 and 7 are undefined.
)

func (t WireType) String() string {
	switch t {
	case TypeVarint:
		return "varint"
	case TypeFixed64:
		return "fixed64"
	case TypeLengthDelimited:
		return "length-delimited"
	case TypeFixed32:
		return "fixed32"
	default:
		return "invalid"
	}
}
