// Package wire provides schema-free traversal of the Protocol Buffers
// binary wire format.
//
// The package decodes an encoded message field by field without generated
// code, a .proto schema, or reflection. Callers that know their own field
// layout get direct, zero-copy access to raw field bytes: every sub-slice
// handed out aliases the caller's buffer, and iteration allocates nothing
// on the common path.
//
// # Supported Encoding
//
//	Wire types:
//	  - Varint (0): base-128 integers, bool, enum, zigzag sint32/sint64
//	  - Fixed64 (1): fixed64, sfixed64, double
//	  - Length-delimited (2): bytes, string, nested messages, packed repeateds
//	  - Fixed32 (5): fixed32, sfixed32, float
//
//	Rejected at tag decode:
//	  - Group markers (3, 4): legacy encoding, unsupported
//	  - Undefined wire type codes (6, 7)
//	  - Field number 0 and numbers beyond 2^29-1
//
// # Iterating a Message
//
// Walk the fields, consuming or skipping every one:
//
//	it := wire.NewIterator(buf)
//	for it.Next() {
//	    switch it.Tag().Number {
//	    case 1:
//	        v, err := it.Value()
//	        if err != nil {
//	            return err
//	        }
//	        id, _ := v.Uint64()
//	    default:
//	        if err := it.Skip(); err != nil {
//	            return err
//	        }
//	    }
//	}
//	if err := it.Err(); err != nil {
//	    return err
//	}
//
// Every yielded field must be resolved with Value or Skip before the next
// Next call; advancing over an unresolved field fails with
// field_not_consumed.
//
// # Nested Messages
//
// A length-delimited value reinterpreted as a message yields an independent
// iterator over its sub-slice:
//
//	msg, _ := v.Message()
//	inner := msg.Fields()
//
// Nesting depth is unbounded; each level owns its own cursor.
//
// # Packed Repeated Fields
//
// A packed payload decodes lazily, one element per call:
//
//	p, _ := v.Packed(wire.PackedVarint)
//	for raw, ok := p.Next(); ok; raw, ok = p.Next() {
//	    use(raw)
//	}
//	if err := p.Err(); err != nil {
//	    return err // payload ended mid-element
//	}
//
// Next yields raw bits; reinterpret with Zigzag64, math.Float64frombits,
// or integer truncation as the field's declared type requires.
//
// # Error Handling
//
// The decoder never recovers, retries, or substitutes defaults; every error
// surfaces to the caller with its buffer offset. A failed read leaves the
// cursor where it was, so position accounting stays exact even on
// adversarial or truncated input.
//
// # Concurrency
//
// Iterators and cursors are single-owner sequential state and not safe for
// shared mutation, but the underlying buffer is never written: any number of
// independent iterators may read the same buffer from different goroutines
// without locking.
package wire
