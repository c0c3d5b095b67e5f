package binwire

import (
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"

	"github.com/wippyai/binwire/errors"
	"github.com/wippyai/binwire/internal/varlen"
)

// Encoder writes values to an io.Writer in wire order. It owns no buffer
// beyond a small scratch array: bytes reach the writer as each operation
// completes, so a failed operation can leave a partial value behind.
//
// An Encoder is not safe for concurrent use. Distinct instances are
// independent and may live on different goroutines.
type Encoder struct {
	w       io.Writer
	scratch [16]byte
}

// NewEncoder returns an Encoder that writes wire bytes to w. Wrap w in a
// bufio.Writer when emitting many small values to an unbuffered
// destination; Flush will pick it up.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes one complete value. Several values may share one Encoder;
// they concatenate on the wire with no separators.
func (e *Encoder) Encode(v Marshaler) error {
	if v == nil {
		return errors.New(errors.PhaseEncode, errors.KindInvalidData).
			Detail("cannot encode a nil value").
			Build()
	}
	return v.MarshalWire(e)
}

// Flush forwards to the underlying writer when it buffers.
func (e *Encoder) Flush() error {
	if f, ok := e.w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return errors.IO(errors.PhaseEncode, err)
		}
	}
	return nil
}

func (e *Encoder) write(p []byte) error {
	if _, err := e.w.Write(p); err != nil {
		return errors.IO(errors.PhaseEncode, err)
	}
	return nil
}

func (e *Encoder) writeByte(b byte) error {
	e.scratch[0] = b
	return e.write(e.scratch[:1])
}

func (e *Encoder) writeLen(n uint64) error {
	return e.write(varlen.AppendLarge(e.scratch[:0], n))
}

// EncodeBool writes one byte, 0 for false and 1 for true.
func (e *Encoder) EncodeBool(v bool) error {
	var b byte
	if v {
		b = 1
	}
	return e.writeByte(b)
}

func (e *Encoder) EncodeInt8(v int8) error {
	return e.writeByte(byte(v))
}

func (e *Encoder) EncodeInt16(v int16) error {
	binary.BigEndian.PutUint16(e.scratch[:2], uint16(v))
	return e.write(e.scratch[:2])
}

func (e *Encoder) EncodeInt32(v int32) error {
	binary.BigEndian.PutUint32(e.scratch[:4], uint32(v))
	return e.write(e.scratch[:4])
}

func (e *Encoder) EncodeInt64(v int64) error {
	binary.BigEndian.PutUint64(e.scratch[:8], uint64(v))
	return e.write(e.scratch[:8])
}

// EncodeInt128 writes the high half before the low half, both big-endian.
func (e *Encoder) EncodeInt128(v Int128) error {
	binary.BigEndian.PutUint64(e.scratch[:8], uint64(v.Hi))
	binary.BigEndian.PutUint64(e.scratch[8:16], v.Lo)
	return e.write(e.scratch[:16])
}

func (e *Encoder) EncodeUint8(v uint8) error {
	return e.writeByte(v)
}

func (e *Encoder) EncodeUint16(v uint16) error {
	binary.BigEndian.PutUint16(e.scratch[:2], v)
	return e.write(e.scratch[:2])
}

func (e *Encoder) EncodeUint32(v uint32) error {
	binary.BigEndian.PutUint32(e.scratch[:4], v)
	return e.write(e.scratch[:4])
}

func (e *Encoder) EncodeUint64(v uint64) error {
	binary.BigEndian.PutUint64(e.scratch[:8], v)
	return e.write(e.scratch[:8])
}

func (e *Encoder) EncodeUint128(v Uint128) error {
	binary.BigEndian.PutUint64(e.scratch[:8], v.Hi)
	binary.BigEndian.PutUint64(e.scratch[8:16], v.Lo)
	return e.write(e.scratch[:16])
}

// EncodeFloat32 writes the IEEE-754 bit pattern big-endian. NaN payloads
// pass through unchanged.
func (e *Encoder) EncodeFloat32(v float32) error {
	binary.BigEndian.PutUint32(e.scratch[:4], math.Float32bits(v))
	return e.write(e.scratch[:4])
}

func (e *Encoder) EncodeFloat64(v float64) error {
	binary.BigEndian.PutUint64(e.scratch[:8], math.Float64bits(v))
	return e.write(e.scratch[:8])
}

// EncodeRune writes a Unicode scalar as a one-byte UTF-8 width followed by
// the UTF-8 bytes. Surrogates and out-of-range values are rejected.
func (e *Encoder) EncodeRune(r rune) error {
	if !utf8.ValidRune(r) {
		return errors.New(errors.PhaseEncode, errors.KindInvalidData).
			Type("char").
			Detail("invalid Unicode scalar value %#x", r).
			Build()
	}
	n := utf8.EncodeRune(e.scratch[1:1+utf8.UTFMax], r)
	e.scratch[0] = byte(n)
	return e.write(e.scratch[:1+n])
}

// EncodeString writes a large-length byte count followed by the UTF-8
// bytes of s.
func (e *Encoder) EncodeString(s string) error {
	if err := e.writeLen(uint64(len(s))); err != nil {
		return err
	}
	if _, err := io.WriteString(e.w, s); err != nil {
		return errors.IO(errors.PhaseEncode, err)
	}
	return nil
}

// EncodeBytes writes a large-length byte count followed by the raw bytes.
func (e *Encoder) EncodeBytes(b []byte) error {
	if err := e.writeLen(uint64(len(b))); err != nil {
		return err
	}
	return e.write(b)
}

// EncodeOption writes the presence byte: 0 for absent, 1 for present.
// When present is true the caller encodes the payload next.
func (e *Encoder) EncodeOption(present bool) error {
	var b byte
	if present {
		b = 1
	}
	return e.writeByte(b)
}

// EncodeSeqLen writes the element count prefix of a sequence. A negative
// n means the length is not known up front, which the format cannot
// represent; nothing is written in that case.
func (e *Encoder) EncodeSeqLen(n int) error {
	if n < 0 {
		return errors.UnknownLength("sequence")
	}
	return e.writeLen(uint64(n))
}

// EncodeMapLen writes the entry count prefix of a map. Negative n is
// rejected the same way EncodeSeqLen rejects it.
func (e *Encoder) EncodeMapLen(n int) error {
	if n < 0 {
		return errors.UnknownLength("map")
	}
	return e.writeLen(uint64(n))
}

// EncodeVariant writes the one-byte tag of a tagged-union variant. The
// union name only feeds the error when index does not fit in a byte.
func (e *Encoder) EncodeVariant(union string, index int) error {
	if index < 0 || index > 255 {
		return errors.VariantRange(union, index)
	}
	return e.writeByte(byte(index))
}

// SkipField always fails: the format has no representation for omitted
// fields, so every field must be encoded in declaration order.
func (e *Encoder) SkipField(name string) error {
	return errors.New(errors.PhaseEncode, errors.KindUnsupported).
		Detail("cannot skip field %q: the format has no representation for omitted fields", name).
		Build()
}
