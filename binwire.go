package binwire

import (
	"bytes"
	"io"
)

// Marshaler is implemented by types that can write themselves in wire
// order. Implementations call Encoder operations field by field in
// declaration order and stop at the first error.
type Marshaler interface {
	MarshalWire(e *Encoder) error
}

// Unmarshaler is the decode-side counterpart of Marshaler. Implementations
// pull exactly the shapes MarshalWire wrote, in the same order.
type Unmarshaler interface {
	UnmarshalWire(d *Decoder) error
}

// Marshal encodes v into a fresh byte slice.
func Marshal(v Marshaler) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalTo encodes v directly to w.
func MarshalTo(w io.Writer, v Marshaler) error {
	return NewEncoder(w).Encode(v)
}

// Unmarshal decodes data into v. The decode is slice-backed: borrowed
// decode calls succeed and their results alias data.
func Unmarshal(data []byte, v Unmarshaler) error {
	return NewDecoderBytes(data).Decode(v)
}

// UnmarshalFrom decodes one value from r into v. The decode is
// stream-backed, so borrowed decode calls fail; everything is copied out
// of r as it is read.
func UnmarshalFrom(r io.Reader, v Unmarshaler) error {
	return NewDecoder(r).Decode(v)
}
