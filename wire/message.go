package wire

import (
	"github.com/wippyai/pbwire/errors"
)

// Message is a view over one complete encoded message (or a sub-message
// slice handed out by Value.Message). It never copies or mutates the buffer.
type Message struct {
	buf []byte
}

// NewMessage creates a Message viewing buf.
func NewMessage(buf []byte) Message {
	return Message{buf: buf}
}

// Bytes returns the underlying buffer.
func (m Message) Bytes() []byte {
	return m.buf
}

// Fields returns an iterator over the message's fields.
func (m Message) Fields() *Iterator {
	return &Iterator{c: NewCursor(m.buf)}
}

type iterState int

const (
	statePositioned iterState = iota // next tag not yet read
	stateTagRead                     // tag read, value pending
	stateExhausted                   // end of buffer, terminal
)

// Iterator walks a message field by field. Each successful Next yields a tag
// whose value is still unconsumed; the caller must resolve it with Value or
// Skip before the next call. Advancing over an unresolved field is a
// programming error and stops the iterator with field_not_consumed, so
// unread bytes can never silently corrupt the byte accounting.
//
// After Next returns false, Err distinguishes clean exhaustion (nil) from a
// decode failure. The iterator does not resynchronize after an error.
type Iterator struct {
	err   error
	c     Cursor
	tag   Tag
	state iterState
}

// NewIterator creates an iterator over one encoded message in buf.
func NewIterator(buf []byte) *Iterator {
	return &Iterator{c: NewCursor(buf)}
}

// Next reads the next field tag. It returns false at the end of the message
// or on error; check Err to tell the two apart.
func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}
	switch it.state {
	case stateExhausted:
		return false
	case stateTagRead:
		it.err = errors.FieldNotConsumed(it.tag.Number)
		return false
	}
	if it.c.Remaining() == 0 {
		it.state = stateExhausted
		return false
	}
	tag, err := ReadTag(&it.c)
	if err != nil {
		it.err = err
		return false
	}
	it.tag = tag
	it.state = stateTagRead
	return true
}

// Tag returns the tag yielded by the last successful Next.
func (it *Iterator) Tag() Tag {
	return it.tag
}

// Value consumes the pending field's bytes and returns the decoded value.
// On failure the position is unchanged and the field remains pending.
func (it *Iterator) Value() (Value, error) {
	if it.state != stateTagRead {
		return Value{}, errors.Wrap(errors.KindFieldNotConsumed, nil, "no field pending; call Next first")
	}
	v, err := ReadValue(&it.c, it.tag.Type)
	if err != nil {
		return Value{}, err
	}
	it.state = statePositioned
	return v, nil
}

// Skip consumes the pending field's bytes without materializing the value.
func (it *Iterator) Skip() error {
	if it.state != stateTagRead {
		return errors.Wrap(errors.KindFieldNotConsumed, nil, "no field pending; call Next first")
	}
	if err := SkipValue(&it.c, it.tag.Type); err != nil {
		return err
	}
	it.state = statePositioned
	return nil
}

// Err returns the first error encountered, or nil after clean exhaustion.
func (it *Iterator) Err() error {
	return it.err
}

// Position returns the iterator's byte offset into the message buffer.
func (it *Iterator) Position() int {
	return it.c.Position()
}
