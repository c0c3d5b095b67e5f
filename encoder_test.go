package binwire_test

import (
	"bufio"
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/wippyai/binwire"
	wireerrors "github.com/wippyai/binwire/errors"
)

// encodeOne runs a single Encoder operation against a fresh buffer and
// returns the bytes it produced.
func encodeOne(t *testing.T, f func(*binwire.Encoder) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := f(binwire.NewEncoder(&buf)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestEncodePrimitives(t *testing.T) {
	tests := []struct {
		name string
		f    func(*binwire.Encoder) error
		want []byte
	}{
		{"bool true", func(e *binwire.Encoder) error { return e.EncodeBool(true) }, []byte{1}},
		{"bool false", func(e *binwire.Encoder) error { return e.EncodeBool(false) }, []byte{0}},
		{"int8 min", func(e *binwire.Encoder) error { return e.EncodeInt8(-128) }, []byte{128}},
		{"int8 -1", func(e *binwire.Encoder) error { return e.EncodeInt8(-1) }, []byte{255}},
		{"int16", func(e *binwire.Encoder) error { return e.EncodeInt16(-2) }, []byte{255, 254}},
		{"int32", func(e *binwire.Encoder) error { return e.EncodeInt32(3) }, []byte{0, 0, 0, 3}},
		{"int64", func(e *binwire.Encoder) error { return e.EncodeInt64(4) }, []byte{0, 0, 0, 0, 0, 0, 0, 4}},
		{"uint8", func(e *binwire.Encoder) error { return e.EncodeUint8(1) }, []byte{1}},
		{"uint16", func(e *binwire.Encoder) error { return e.EncodeUint16(2) }, []byte{0, 2}},
		{"uint32", func(e *binwire.Encoder) error { return e.EncodeUint32(3) }, []byte{0, 0, 0, 3}},
		{"uint64 max", func(e *binwire.Encoder) error { return e.EncodeUint64(math.MaxUint64) },
			[]byte{255, 255, 255, 255, 255, 255, 255, 255}},
		{"float32 6.25", func(e *binwire.Encoder) error { return e.EncodeFloat32(6.25) }, []byte{64, 200, 0, 0}},
		{"float64 3.125", func(e *binwire.Encoder) error { return e.EncodeFloat64(3.125) },
			[]byte{64, 9, 0, 0, 0, 0, 0, 0}},
		{"rune ascii", func(e *binwire.Encoder) error { return e.EncodeRune('A') }, []byte{1, 65}},
		{"rune two bytes", func(e *binwire.Encoder) error { return e.EncodeRune('é') }, []byte{2, 0xC3, 0xA9}},
		{"rune three bytes", func(e *binwire.Encoder) error { return e.EncodeRune('☃') }, []byte{3, 0xE2, 0x98, 0x83}},
		{"rune four bytes", func(e *binwire.Encoder) error { return e.EncodeRune('😀') },
			[]byte{4, 0xF0, 0x9F, 0x98, 0x80}},
		{"string", func(e *binwire.Encoder) error { return e.EncodeString("my string") },
			append([]byte{1, 9}, "my string"...)},
		{"string empty", func(e *binwire.Encoder) error { return e.EncodeString("") }, []byte{0}},
		{"bytes", func(e *binwire.Encoder) error { return e.EncodeBytes([]byte{0, 1, 2, 3}) },
			[]byte{1, 4, 0, 1, 2, 3}},
		{"bytes empty", func(e *binwire.Encoder) error { return e.EncodeBytes(nil) }, []byte{0}},
		{"option absent", func(e *binwire.Encoder) error { return e.EncodeOption(false) }, []byte{0}},
		{"option present", func(e *binwire.Encoder) error { return e.EncodeOption(true) }, []byte{1}},
		{"int128 minus one", func(e *binwire.Encoder) error {
			return e.EncodeInt128(binwire.Int128FromInt64(-1))
		}, bytes.Repeat([]byte{255}, 16)},
		{"uint128 one", func(e *binwire.Encoder) error {
			return e.EncodeUint128(binwire.Uint128FromUint64(1))
		}, append(bytes.Repeat([]byte{0}, 15), 1)},
		{"seq len", func(e *binwire.Encoder) error { return e.EncodeSeqLen(5) }, []byte{1, 5}},
		{"seq len zero", func(e *binwire.Encoder) error { return e.EncodeSeqLen(0) }, []byte{0}},
		{"map len boundary", func(e *binwire.Encoder) error { return e.EncodeMapLen(256) }, []byte{2, 1, 0}},
		{"variant tag", func(e *binwire.Encoder) error { return e.EncodeVariant("shape", 3) }, []byte{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encodeOne(t, tt.f)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("encoded bytes = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodeNaNPassthrough(t *testing.T) {
	// NaN payloads are preserved bit for bit, not canonicalized.
	bits := uint32(0x7FC12345)
	got := encodeOne(t, func(e *binwire.Encoder) error {
		return e.EncodeFloat32(math.Float32frombits(bits))
	})
	want := []byte{0x7F, 0xC1, 0x23, 0x45}
	if !bytes.Equal(got, want) {
		t.Errorf("NaN bytes = %x, want %x", got, want)
	}
}

func TestEncodeRuneInvalidScalar(t *testing.T) {
	tests := []struct {
		name string
		r    rune
	}{
		{"surrogate low", 0xD800},
		{"surrogate high", 0xDFFF},
		{"past max", 0x110000},
		{"negative", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := binwire.NewEncoder(&buf).EncodeRune(tt.r)
			if !errors.Is(err, &wireerrors.Error{Phase: wireerrors.PhaseEncode, Kind: wireerrors.KindInvalidData}) {
				t.Errorf("EncodeRune(%#x) error = %v, want encode/invalid_data", tt.r, err)
			}
			if buf.Len() != 0 {
				t.Errorf("rejected rune still wrote %d bytes", buf.Len())
			}
		})
	}
}

func TestEncodeUnknownLength(t *testing.T) {
	var buf bytes.Buffer
	e := binwire.NewEncoder(&buf)

	err := e.EncodeSeqLen(-1)
	if !errors.Is(err, &wireerrors.Error{Phase: wireerrors.PhaseEncode, Kind: wireerrors.KindUnknownLength}) {
		t.Errorf("EncodeSeqLen(-1) error = %v, want encode/unknown_length", err)
	}
	if !strings.Contains(err.Error(), "sequence") {
		t.Errorf("sequence error %q should name the sequence", err)
	}

	err = e.EncodeMapLen(-1)
	if !strings.Contains(err.Error(), "map") {
		t.Errorf("map error %q should name the map", err)
	}
	if buf.Len() != 0 {
		t.Errorf("unknown-length rejection still wrote %d bytes", buf.Len())
	}
}

func TestEncodeVariantRange(t *testing.T) {
	tests := []struct {
		name  string
		index int
		ok    bool
	}{
		{"zero", 0, true},
		{"max", 255, true},
		{"past max", 256, false},
		{"far past max", 1000, false},
		{"negative", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := binwire.NewEncoder(&buf).EncodeVariant("Signal", tt.index)
			if tt.ok {
				if err != nil {
					t.Fatalf("EncodeVariant(%d): %v", tt.index, err)
				}
				if want := []byte{byte(tt.index)}; !bytes.Equal(buf.Bytes(), want) {
					t.Errorf("tag bytes = %v, want %v", buf.Bytes(), want)
				}
				return
			}
			if !errors.Is(err, &wireerrors.Error{Phase: wireerrors.PhaseEncode, Kind: wireerrors.KindVariantRange}) {
				t.Fatalf("EncodeVariant(%d) error = %v, want encode/variant_range", tt.index, err)
			}
			if !strings.Contains(err.Error(), "Signal") {
				t.Errorf("error %q should name the union", err)
			}
		})
	}
}

func TestEncodeSkipField(t *testing.T) {
	err := binwire.NewEncoder(&bytes.Buffer{}).SkipField("legacy")
	if !errors.Is(err, &wireerrors.Error{Phase: wireerrors.PhaseEncode, Kind: wireerrors.KindUnsupported}) {
		t.Fatalf("SkipField error = %v, want encode/unsupported", err)
	}
	if !strings.Contains(err.Error(), "legacy") {
		t.Errorf("error %q should name the field", err)
	}
}

// failWriter fails after accepting limit bytes.
type failWriter struct {
	limit int
	n     int
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n+len(p) > w.limit {
		return 0, errors.New("disk full")
	}
	w.n += len(p)
	return len(p), nil
}

func TestEncodeWriteFailure(t *testing.T) {
	e := binwire.NewEncoder(&failWriter{limit: 0})
	err := e.EncodeUint32(7)
	var werr *wireerrors.Error
	if !errors.As(err, &werr) {
		t.Fatalf("error %v is not a structured error", err)
	}
	if werr.Kind != wireerrors.KindIO || werr.Phase != wireerrors.PhaseEncode {
		t.Errorf("got %s/%s, want encode/io", werr.Phase, werr.Kind)
	}
	if werr.Unwrap() == nil || werr.Unwrap().Error() != "disk full" {
		t.Errorf("cause = %v, want the writer's error", werr.Unwrap())
	}
}

func TestEncoderFlush(t *testing.T) {
	var raw bytes.Buffer
	bw := bufio.NewWriterSize(&raw, 64)
	e := binwire.NewEncoder(bw)

	if err := e.EncodeUint16(512); err != nil {
		t.Fatalf("EncodeUint16: %v", err)
	}
	if raw.Len() != 0 {
		t.Fatalf("bytes reached the sink before Flush")
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if want := []byte{2, 0}; !bytes.Equal(raw.Bytes(), want) {
		t.Errorf("flushed bytes = %v, want %v", raw.Bytes(), want)
	}

	// Writers without a Flush method are a no-op.
	if err := binwire.NewEncoder(&raw).Flush(); err != nil {
		t.Errorf("Flush on plain writer: %v", err)
	}
}

func TestEncodeNil(t *testing.T) {
	err := binwire.NewEncoder(&bytes.Buffer{}).Encode(nil)
	if !errors.Is(err, &wireerrors.Error{Phase: wireerrors.PhaseEncode, Kind: wireerrors.KindInvalidData}) {
		t.Errorf("Encode(nil) error = %v, want encode/invalid_data", err)
	}
}
