package wire_test

import (
	"testing"

	"github.com/wippyai/pbwire/wire"
)

// benchMessage builds a message resembling a telemetry record: scalar ids,
// a couple of strings, a packed series, and a nested sub-message.
func benchMessage() []byte {
	var inner []byte
	inner = wire.AppendTag(inner, 1, wire.TypeVarint)
	inner = wire.AppendVarint(inner, 1234567)
	inner = wire.AppendTag(inner, 2, wire.TypeFixed64)
	inner = wire.AppendFixed64(inner, 0x3ff0000000000000)

	var series []byte
	for i := uint64(0); i < 64; i++ {
		series = wire.AppendVarint(series, i*i)
	}

	var buf []byte
	for i := 0; i < 16; i++ {
		buf = wire.AppendTag(buf, 1, wire.TypeVarint)
		buf = wire.AppendVarint(buf, uint64(i)<<20)
		buf = wire.AppendTag(buf, 2, wire.TypeLengthDelimited)
		buf = wire.AppendBytes(buf, []byte("sensor-name"))
		buf = wire.AppendTag(buf, 3, wire.TypeLengthDelimited)
		buf = wire.AppendBytes(buf, series)
		buf = wire.AppendTag(buf, 4, wire.TypeLengthDelimited)
		buf = wire.AppendBytes(buf, inner)
		buf = wire.AppendTag(buf, 5, wire.TypeFixed32)
		buf = wire.AppendFixed32(buf, uint32(i))
	}
	return buf
}

func BenchmarkIterateSkip(b *testing.B) {
	data := benchMessage()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		it := wire.NewIterator(data)
		for it.Next() {
			if err := it.Skip(); err != nil {
				b.Fatal(err)
			}
		}
		if err := it.Err(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIterateDecode(b *testing.B) {
	data := benchMessage()

	b.ResetTimer()
	b.ReportAllocs()

	var sink uint64
	for i := 0; i < b.N; i++ {
		it := wire.NewIterator(data)
		for it.Next() {
			v, err := it.Value()
			if err != nil {
				b.Fatal(err)
			}
			switch it.Tag().Number {
			case 1:
				n, _ := v.Uint64()
				sink += n
			case 3:
				p, _ := v.Packed(wire.PackedVarint)
				for e, ok := p.Next(); ok; e, ok = p.Next() {
					sink += e
				}
			case 4:
				msg, _ := v.Message()
				sub := msg.Fields()
				for sub.Next() {
					if err := sub.Skip(); err != nil {
						b.Fatal(err)
					}
				}
			case 5:
				f, _ := v.Fixed32()
				sink += uint64(f)
			default:
				raw, _ := v.Bytes()
				sink += uint64(len(raw))
			}
		}
		if err := it.Err(); err != nil {
			b.Fatal(err)
		}
	}
	_ = sink
}

func BenchmarkReadVarint(b *testing.B) {
	data := wire.AppendVarint(nil, 11964378330978735131)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		c := wire.NewCursor(data)
		if _, err := c.ReadVarint(); err != nil {
			b.Fatal(err)
		}
	}
}
