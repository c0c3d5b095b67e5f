package binwire

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"
	"unsafe"

	"github.com/wippyai/binwire/errors"
	"github.com/wippyai/binwire/internal/varlen"
)

// Decoder pulls values out of a byte source in wire order. The format is
// not self-describing, so the caller must ask for exactly the shapes that
// were encoded; a mismatch surfaces as an invalid-data or EOF error at
// whatever point the bytes stop lining up.
//
// A Decoder is not safe for concurrent use. Distinct instances are
// independent and may live on different goroutines.
type Decoder struct {
	r       reader
	buf     *bufferReader // non-nil when the source is slice-backed
	scratch [16]byte
}

// NewDecoder returns a Decoder that pulls from r. Stream sources copy
// every value out; the borrowed decode methods fail on them.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: &streamReader{r: r}}
}

// NewDecoderBytes returns a Decoder over data. The slice must stay intact
// and unmodified for as long as any borrowed result is in use.
func NewDecoderBytes(data []byte) *Decoder {
	b := &bufferReader{data: data}
	return &Decoder{r: b, buf: b}
}

// Decode fills one complete value. Several values may share one Decoder,
// consuming the source in sequence.
func (d *Decoder) Decode(v Unmarshaler) error {
	if v == nil {
		return errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Detail("cannot decode into a nil value").
			Build()
	}
	return v.UnmarshalWire(d)
}

// readLargeLen reads a large-length prefix and bounds it to the platform.
func (d *Decoder) readLargeLen() (int, error) {
	k, err := d.r.readByte()
	if err != nil {
		return 0, err
	}
	if int(k) > varlen.MaxTier2 {
		return 0, errors.Overflow("length prefix of %d bytes cannot fit in 64 bits", k)
	}
	p := d.scratch[:k]
	if err := d.r.readFull(p); err != nil {
		return 0, err
	}
	if !varlen.Minimal(p) {
		debugf("tolerating non-minimal length prefix %x", p)
	}
	n := varlen.DecodeLarge(p)
	if n > math.MaxInt {
		return 0, errors.Overflow("length %d exceeds the platform int range", n)
	}
	return int(n), nil
}

// borrow returns a zero-copy view of the next n source bytes. what names
// the shape for the error when the source cannot provide views.
func (d *Decoder) borrow(n int, what string) ([]byte, error) {
	if d.buf == nil {
		return nil, errors.Unsupported(errors.PhaseDecode,
			"expected "+what+", but a stream source cannot provide views; decode an owned value or use NewDecoderBytes")
	}
	return d.buf.view(n)
}

// DecodeBool reads one byte and requires it to be 0 or 1.
func (d *Decoder) DecodeBool() (bool, error) {
	b, err := d.r.readByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.InvalidBytes("bool", []byte{b})
	}
}

func (d *Decoder) DecodeInt8() (int8, error) {
	b, err := d.r.readByte()
	if err != nil {
		return 0, err
	}
	return int8(b), nil
}

func (d *Decoder) DecodeInt16() (int16, error) {
	if err := d.r.readFull(d.scratch[:2]); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(d.scratch[:2])), nil
}

func (d *Decoder) DecodeInt32() (int32, error) {
	if err := d.r.readFull(d.scratch[:4]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(d.scratch[:4])), nil
}

func (d *Decoder) DecodeInt64() (int64, error) {
	if err := d.r.readFull(d.scratch[:8]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(d.scratch[:8])), nil
}

func (d *Decoder) DecodeInt128() (Int128, error) {
	if err := d.r.readFull(d.scratch[:16]); err != nil {
		return Int128{}, err
	}
	return Int128{
		Hi: int64(binary.BigEndian.Uint64(d.scratch[:8])),
		Lo: binary.BigEndian.Uint64(d.scratch[8:16]),
	}, nil
}

func (d *Decoder) DecodeUint8() (uint8, error) {
	return d.r.readByte()
}

func (d *Decoder) DecodeUint16() (uint16, error) {
	if err := d.r.readFull(d.scratch[:2]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(d.scratch[:2]), nil
}

func (d *Decoder) DecodeUint32() (uint32, error) {
	if err := d.r.readFull(d.scratch[:4]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(d.scratch[:4]), nil
}

func (d *Decoder) DecodeUint64() (uint64, error) {
	if err := d.r.readFull(d.scratch[:8]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(d.scratch[:8]), nil
}

func (d *Decoder) DecodeUint128() (Uint128, error) {
	if err := d.r.readFull(d.scratch[:16]); err != nil {
		return Uint128{}, err
	}
	return Uint128{
		Hi: binary.BigEndian.Uint64(d.scratch[:8]),
		Lo: binary.BigEndian.Uint64(d.scratch[8:16]),
	}, nil
}

func (d *Decoder) DecodeFloat32() (float32, error) {
	if err := d.r.readFull(d.scratch[:4]); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(d.scratch[:4])), nil
}

func (d *Decoder) DecodeFloat64() (float64, error) {
	if err := d.r.readFull(d.scratch[:8]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(d.scratch[:8])), nil
}

// DecodeRune reads the one-byte UTF-8 width and the payload, and returns
// the first Unicode scalar. A payload holding more than one scalar is
// consumed whole but only the first scalar is kept.
func (d *Decoder) DecodeRune() (rune, error) {
	w, err := d.r.readByte()
	if err != nil {
		return 0, err
	}
	if w < 1 || w > utf8.UTFMax {
		return 0, errors.InvalidBytes("char", []byte{w})
	}
	p := d.scratch[:w]
	if err := d.r.readFull(p); err != nil {
		return 0, err
	}
	if !utf8.Valid(p) {
		return 0, errors.InvalidUTF8(bytes.Clone(p))
	}
	r, size := utf8.DecodeRune(p)
	if size < int(w) {
		debugf("char frame carried %d bytes, first scalar used %d", w, size)
	}
	return r, nil
}

// DecodeString reads a large-length prefix and returns the UTF-8 payload
// as an owned string, valid past the decode.
func (d *Decoder) DecodeString() (string, error) {
	n, err := d.readLargeLen()
	if err != nil {
		return "", err
	}
	b, err := d.r.readN(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.InvalidUTF8(b)
	}
	return string(b), nil
}

// DecodeBytes reads a large-length prefix and returns an owned copy of the
// payload.
func (d *Decoder) DecodeBytes() ([]byte, error) {
	n, err := d.readLargeLen()
	if err != nil {
		return nil, err
	}
	return d.r.readN(n)
}

// DecodeBorrowedBytes returns the payload as a view into the input slice:
// no copy, valid only while the slice handed to NewDecoderBytes stays
// intact. Stream sources fail with a descriptive error.
func (d *Decoder) DecodeBorrowedBytes() ([]byte, error) {
	n, err := d.readLargeLen()
	if err != nil {
		return nil, err
	}
	return d.borrow(n, "borrowed bytes")
}

// DecodeBorrowedString returns the payload as a string aliasing the input
// slice. The caller must not mutate the input while the string lives.
// Stream sources fail with a descriptive error.
func (d *Decoder) DecodeBorrowedString() (string, error) {
	n, err := d.readLargeLen()
	if err != nil {
		return "", err
	}
	v, err := d.borrow(n, "a borrowed string")
	if err != nil {
		return "", err
	}
	if !utf8.Valid(v) {
		return "", errors.InvalidUTF8(v)
	}
	if len(v) == 0 {
		return "", nil
	}
	return unsafe.String(&v[0], len(v)), nil
}

// DecodeOption reads the presence byte and requires it to be 0 or 1. When
// it returns true the caller decodes the payload next.
func (d *Decoder) DecodeOption() (bool, error) {
	b, err := d.r.readByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.InvalidBytes("option", []byte{b})
	}
}

// DecodeVariant reads the one-byte tag of a tagged union and returns the
// variant index. The caller switches on the index and decodes that
// variant's payload: nothing for a unit variant, one value for a newtype
// variant, the fields in order for tuple and struct variants.
func (d *Decoder) DecodeVariant() (int, error) {
	b, err := d.r.readByte()
	if err != nil {
		return 0, err
	}
	return int(b), nil
}

// SkipValue always fails: without shape metadata in the stream there is
// no way to know how many bytes one value spans.
func (d *Decoder) SkipValue() error {
	return errors.Unsupported(errors.PhaseDecode,
		"cannot skip a value: the format carries no shape metadata to skip by")
}
