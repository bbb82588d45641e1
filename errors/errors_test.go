package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "full error",
			err:      Truncated(17, 8, 3),
			contains: []string{"pbwire:", "truncated", "offset 17", "need 8 bytes", "have 3"},
		},
		{
			name: "minimal error",
			err: &Error{
				Kind:   KindMalformedVarint,
				Offset: -1,
			},
			contains: []string{"pbwire:", "malformed_varint"},
		},
		{
			name:     "error with cause",
			err:      Wrap(KindMalformedLength, errors.New("underlying error"), "nested field"),
			contains: []string{"malformed_length", "nested field", "caused by", "underlying error"},
		},
		{
			name:     "group wire type names legacy encoding",
			err:      InvalidWireType(4, 3),
			contains: []string{"invalid_wire_type", "offset 4", "wire type 3", "legacy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("message %q missing %q", msg, s)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := Truncated(42, 4, 0)
	if !errors.Is(err, ErrTruncated) {
		t.Error("Truncated should match ErrTruncated regardless of offset")
	}
	if errors.Is(err, ErrMalformedVarint) {
		t.Error("Truncated must not match ErrMalformedVarint")
	}
	if errors.Is(err, errors.New("truncated")) {
		t.Error("must not match unrelated error types")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(KindInvalidUTF8, cause, "string accessor")
	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestInvalidUTF8_PreviewTruncated(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = 0xff
	}
	msg := InvalidUTF8(data).Error()
	if len(msg) > 200 {
		t.Errorf("preview should be capped, message is %d bytes", len(msg))
	}
}
