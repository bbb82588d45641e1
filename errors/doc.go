// Package errors provides structured error types for the pbwire decoder.
//
// Errors are categorized by Kind and carry the byte offset at which decoding
// failed. The decoder never recovers internally; every error is surfaced to
// the caller, and a caller seeing any error mid-message should treat the
// whole message as untrustworthy.
//
// Use the convenience constructors:
//
//	err := errors.Truncated(offset, 8, remaining)
//	err := errors.InvalidWireType(offset, 3)
//
// All errors implement the standard error interface and support errors.Is/As.
// The exported Err* values match by Kind:
//
//	if errors.Is(err, pbwireerrors.ErrTruncated) {
//	    // input was cut short
//	}
package errors
