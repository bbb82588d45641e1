package errors

import (
	"fmt"
	"strings"
)

// Kind categorizes the error
type Kind string

const (
	KindTruncated          Kind = "truncated"            // fewer bytes remain than the operation needs
	KindMalformedVarint    Kind = "malformed_varint"     // varint exceeds 10 bytes or overflows 64 bits
	KindMalformedLength    Kind = "malformed_length"     // declared length cannot be satisfied
	KindInvalidWireType    Kind = "invalid_wire_type"    // tag carries a group marker or undefined code
	KindInvalidFieldNumber Kind = "invalid_field_number" // field number zero
	KindFieldNotConsumed   Kind = "field_not_consumed"   // iterator advanced over an unresolved field
	KindInvalidUTF8        Kind = "invalid_utf8"         // string accessor on non-UTF-8 bytes
	KindTypeMismatch       Kind = "type_mismatch"        // typed accessor on the wrong wire type
)

// Matcher values for errors.Is. Each carries only a Kind, so any error of
// the same kind matches regardless of offset or detail.
var (
	ErrTruncated          = &Error{Kind: KindTruncated, Offset: -1}
	ErrMalformedVarint    = &Error{Kind: KindMalformedVarint, Offset: -1}
	ErrMalformedLength    = &Error{Kind: KindMalformedLength, Offset: -1}
	ErrInvalidWireType    = &Error{Kind: KindInvalidWireType, Offset: -1}
	ErrInvalidFieldNumber = &Error{Kind: KindInvalidFieldNumber, Offset: -1}
	ErrFieldNotConsumed   = &Error{Kind: KindFieldNotConsumed, Offset: -1}
	ErrInvalidUTF8        = &Error{Kind: KindInvalidUTF8, Offset: -1}
	ErrTypeMismatch       = &Error{Kind: KindTypeMismatch, Offset: -1}
)

// Error is the structured error type used throughout the decoder
type Error struct {
	Cause  error
	Kind   Kind
	Detail string
	Offset int // byte offset into the buffer being decoded, -1 if unknown
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("pbwire: ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for the decoder's error patterns

// Truncated creates an error for a read past the end of the buffer
func Truncated(offset, need, have int) *Error {
	return &Error{
		Kind:   KindTruncated,
		Offset: offset,
		Detail: fmt.Sprintf("need %d bytes, have %d", need, have),
	}
}

// MalformedVarint creates an error for an over-long or overflowing varint
func MalformedVarint(offset int, detail string) *Error {
	return &Error{
		Kind:   KindMalformedVarint,
		Offset: offset,
		Detail: detail,
	}
}

// MalformedLength creates an error for an unsatisfiable declared length
func MalformedLength(offset int, length uint64) *Error {
	return &Error{
		Kind:   KindMalformedLength,
		Offset: offset,
		Detail: fmt.Sprintf("declared length %d exceeds addressable range", length),
	}
}

// InvalidWireType creates an error for a rejected wire type code
func InvalidWireType(offset int, code byte) *Error {
	detail := fmt.Sprintf("wire type %d", code)
	if code == 3 || code == 4 {
		detail += " (groups are unsupported legacy encoding)"
	}
	return &Error{
		Kind:   KindInvalidWireType,
		Offset: offset,
		Detail: detail,
	}
}

// InvalidFieldNumber creates an error for field number zero
func InvalidFieldNumber(offset int) *Error {
	return &Error{
		Kind:   KindInvalidFieldNumber,
		Offset: offset,
		Detail: "field number 0 is illegal",
	}
}

// FieldNotConsumed creates an error for advancing past an unresolved field.
// This is a programming-contract violation, not an input-data error.
func FieldNotConsumed(number uint32) *Error {
	return &Error{
		Kind:   KindFieldNotConsumed,
		Offset: -1,
		Detail: fmt.Sprintf("field %d was yielded but neither consumed nor skipped", number),
	}
}

// InvalidUTF8 creates an error for a string accessor over non-UTF-8 bytes
func InvalidUTF8(data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Kind:   KindInvalidUTF8,
		Offset: -1,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// TypeMismatch creates an error for a typed accessor applied to the wrong
// wire type
func TypeMismatch(want, got string) *Error {
	return &Error{
		Kind:   KindTypeMismatch,
		Offset: -1,
		Detail: fmt.Sprintf("accessor needs wire type %s, field is %s", want, got),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(kind Kind, cause error, detail string) *Error {
	return &Error{
		Kind:   kind,
		Offset: -1,
		Detail: detail,
		Cause:  cause,
	}
}
