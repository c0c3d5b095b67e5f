// Package errors provides structured error types for the binwire codec.
//
// Errors are categorized by Phase (encode or decode) and Kind (error category).
// The Error type includes rich context: the logical wire type involved, the
// offending bytes when the input is malformed, and a cause chain for wrapped
// I/O failures.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidData).
//		Type("bool").
//		Bytes([]byte{0x02}).
//		Detail("invalid byte sequence").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidBytes("option", []byte{0x07})
//	err := errors.UnexpectedEOF(8, 3)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind, so callers can test for a category without
// matching exact messages:
//
//	errors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindUnexpectedEOF})
package errors
