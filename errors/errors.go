package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which half of the codec the error occurred in
type Phase string

const (
	PhaseEncode Phase = "encode" // value to bytes
	PhaseDecode Phase = "decode" // bytes to value
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownLength Kind = "unknown_length" // sequence/map length not known up front
	KindVariantRange  Kind = "variant_range"  // union variant index does not fit in one byte
	KindUnsupported   Kind = "unsupported"    // operation the wire format cannot express
	KindInvalidData   Kind = "invalid_data"   // discriminant or width byte outside its domain
	KindUnexpectedEOF Kind = "unexpected_eof" // input exhausted mid-value
	KindInvalidUTF8   Kind = "invalid_utf8"   // string or char payload is not valid UTF-8
	KindOverflow      Kind = "overflow"       // decoded length does not fit the platform
	KindIO            Kind = "io"             // underlying reader/writer failure
	KindCustom        Kind = "custom"         // free-form message from calling code
)

// Error is the structured error type used throughout the codec
type Error struct {
	Bytes  []byte
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Type != "" {
		b.WriteString(": ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Type sets the logical wire type name ("bool", "option", a union name, ...)
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Bytes sets the offending wire bytes
func (b *Builder) Bytes(data []byte) *Builder {
	b.err.Bytes = data
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnknownLength rejects encoding a sequence or map whose length is not known
// before the first element is written.
func UnknownLength(what string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnknownLength,
		Type:   what,
		Detail: fmt.Sprintf("cannot encode a %s of unknown length", what),
	}
}

// VariantRange rejects a union variant index that does not fit in the
// one-byte tag. The union name is carried so callers can tell which type
// is over the limit.
func VariantRange(union string, index int) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindVariantRange,
		Type:   union,
		Detail: fmt.Sprintf("variant index %d does not fit in a one-byte tag", index),
	}
}

// InvalidBytes creates an invalid data error carrying the offending bytes
// and the logical type that was being decoded.
func InvalidBytes(wireType string, data []byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidData,
		Type:   wireType,
		Bytes:  data,
		Detail: fmt.Sprintf("invalid byte sequence: %x", preview(data)),
	}
}

// UnexpectedEOF signals input exhausted in the middle of a value.
func UnexpectedEOF(want, got int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnexpectedEOF,
		Detail: fmt.Sprintf("needed %d more bytes, got %d", want, got),
	}
}

// InvalidUTF8 creates an invalid UTF-8 error with a bounded byte preview.
func InvalidUTF8(data []byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidUTF8,
		Bytes:  data,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview(data)),
	}
}

// Overflow creates an overflow error for lengths the platform cannot hold.
func Overflow(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// IO wraps a failure from the underlying reader or writer
func IO(phase Phase, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindIO,
		Cause: cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Custom is the escape hatch for calling code that needs a free-form
// message, typically per-type Marshal/Unmarshal implementations.
func Custom(phase Phase, format string, args ...any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCustom,
		Detail: fmt.Sprintf(format, args...),
	}
}

func preview(data []byte) []byte {
	if len(data) > 32 {
		return data[:32]
	}
	return data
}
