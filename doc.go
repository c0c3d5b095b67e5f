// Package binwire implements a compact, deterministic binary encoding for
// structured values.
//
// The format is not self-describing: apart from option presence bytes and
// tagged-union variant tags it carries no type information, no field
// names, and no alignment padding. Per-type code walks a value and drives
// the Encoder operation by operation; on the way back it pulls exactly
// the same shapes from the Decoder. Equal values always produce equal
// bytes.
//
// # Architecture Overview
//
// The module is organized into a small set of packages:
//
//	binwire/             Root package: Encoder, Decoder, entry points
//	├── errors/          Structured error types with phase and kind
//	├── internal/varlen/ Two-tier length framing
//	└── cmd/wire/        Workbench CLI for inspecting encodings
//
// # Quick Start
//
// Implement the two interfaces on a type and round-trip it:
//
//	type Point struct{ X, Y int32 }
//
//	func (p *Point) MarshalWire(e *binwire.Encoder) error {
//	    if err := e.EncodeInt32(p.X); err != nil {
//	        return err
//	    }
//	    return e.EncodeInt32(p.Y)
//	}
//
//	func (p *Point) UnmarshalWire(d *binwire.Decoder) (err error) {
//	    if p.X, err = d.DecodeInt32(); err != nil {
//	        return err
//	    }
//	    p.Y, err = d.DecodeInt32()
//	    return err
//	}
//
//	data, err := binwire.Marshal(&Point{X: 1, Y: 2})
//	var back Point
//	err = binwire.Unmarshal(data, &back)
//
// # Wire Format
//
//   - bool: one byte, 0 or 1
//   - integers: big-endian two's complement at 8/16/32/64/128 bits
//   - floats: IEEE-754 bit pattern, big-endian
//   - char: one UTF-8 width byte, then the UTF-8 bytes
//   - string, bytes: length prefix, then the payload
//   - option: one presence byte, then the payload when present
//   - records, tuples: fields concatenated in declaration order
//   - sequences, maps: length prefix, then elements or key/value pairs
//   - tagged unions: one tag byte, then the variant payload
//
// Length prefixes use two tiers: a count byte, then that many big-endian
// bytes holding the value with no leading zeros. Zero is the single byte
// 0, 255 is [1, 255], 256 is [2, 1, 0].
//
// # Borrowed Data
//
// Decoding from a byte slice (Unmarshal, NewDecoderBytes) allows
// DecodeBorrowedBytes and DecodeBorrowedString, which return views into
// the input instead of copies. The input must stay intact while those
// views live. Stream sources (UnmarshalFrom, NewDecoder) cannot provide
// views and fail such calls with a descriptive error.
//
// # Thread Safety
//
// Encoder and Decoder maintain internal state and are NOT safe for
// concurrent use. Distinct instances share nothing and may be used from
// different goroutines freely.
//
// # Error Handling
//
// All failures are *errors.Error values carrying a phase (encode or
// decode) and a kind (invalid_data, unexpected_eof, unsupported, ...).
// Malformed-input errors keep the offending bytes and the logical type
// that was being decoded.
package binwire
