package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/binwire"
)

// A sample is a flat shape the workbench can encode and decode without
// user-defined types: an ordered list of fields, each carrying a wire
// type and a default value rendered as text.
type sample struct {
	name   string
	about  string
	fields []field
}

type field struct {
	name string
	typ  string
	val  string
}

// span records which wire bytes one field produced.
type span struct {
	start int
	end   int
}

var samples = []sample{
	{
		name:  "marker",
		about: "bool + i8 + string record",
		fields: []field{
			{"flag", "bool", "true"},
			{"code", "i8", "-1"},
			{"label", "string", "hi"},
		},
	},
	{
		name:  "reading",
		about: "telemetry record with an option and a sequence",
		fields: []field{
			{"device", "string", "sensor-7f"},
			{"seq", "u64", "123456789"},
			{"temp", "f64", "21.625"},
			{"battery", "option-u8", "87"},
			{"samples", "seq-u8", "7,8,9,10,11"},
		},
	},
	{
		name:  "event",
		about: "tagged union: tag byte, then a bool + u8 payload",
		fields: []field{
			{"tag", "variant", "2"},
			{"flag", "bool", "false"},
			{"n", "u8", "14"},
		},
	},
	{
		name:  "census",
		about: "wide integers, floats, a char and raw bytes",
		fields: []field{
			{"i16", "i16", "-32768"},
			{"i32", "i32", "-2147483648"},
			{"i64", "i64", "-9223372036854775808"},
			{"u16", "u16", "65535"},
			{"u32", "u32", "4294967295"},
			{"f32", "f32", "6.25"},
			{"char", "char", "A"},
			{"blob", "bytes", "00010203"},
		},
	},
}

func findSample(name string) (sample, bool) {
	for _, s := range samples {
		if s.name == name {
			return s, true
		}
	}
	return sample{}, false
}

func (s sample) defaults() []string {
	vals := make([]string, len(s.fields))
	for i, f := range s.fields {
		vals[i] = f.val
	}
	return vals
}

// encode renders vals field by field and reports the byte range each
// field occupies in the result.
func (s sample) encode(vals []string) ([]byte, []span, error) {
	var buf bytes.Buffer
	e := binwire.NewEncoder(&buf)
	spans := make([]span, len(s.fields))
	for i, f := range s.fields {
		start := buf.Len()
		if err := encodeField(e, f, vals[i]); err != nil {
			return nil, nil, fmt.Errorf("field %s: %w", f.name, err)
		}
		spans[i] = span{start: start, end: buf.Len()}
	}
	return buf.Bytes(), spans, nil
}

// decode reads data as this sample's shape and renders every field back
// to text in the same format encode accepts.
func (s sample) decode(data []byte) ([]string, error) {
	d := binwire.NewDecoderBytes(data)
	vals := make([]string, len(s.fields))
	for i, f := range s.fields {
		v, err := decodeField(d, f)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.name, err)
		}
		vals[i] = v
	}
	return vals, nil
}

func encodeField(e *binwire.Encoder, f field, val string) error {
	switch f.typ {
	case "bool":
		v, err := strconv.ParseBool(val)
		if err != nil {
			return err
		}
		return e.EncodeBool(v)
	case "i8":
		n, err := strconv.ParseInt(val, 10, 8)
		if err != nil {
			return err
		}
		return e.EncodeInt8(int8(n))
	case "i16":
		n, err := strconv.ParseInt(val, 10, 16)
		if err != nil {
			return err
		}
		return e.EncodeInt16(int16(n))
	case "i32":
		n, err := strconv.ParseInt(val, 10, 32)
		if err != nil {
			return err
		}
		return e.EncodeInt32(int32(n))
	case "i64":
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return err
		}
		return e.EncodeInt64(n)
	case "u8":
		n, err := strconv.ParseUint(val, 10, 8)
		if err != nil {
			return err
		}
		return e.EncodeUint8(uint8(n))
	case "u16":
		n, err := strconv.ParseUint(val, 10, 16)
		if err != nil {
			return err
		}
		return e.EncodeUint16(uint16(n))
	case "u32":
		n, err := strconv.ParseUint(val, 10, 32)
		if err != nil {
			return err
		}
		return e.EncodeUint32(uint32(n))
	case "u64":
		n, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return err
		}
		return e.EncodeUint64(n)
	case "f32":
		n, err := strconv.ParseFloat(val, 32)
		if err != nil {
			return err
		}
		return e.EncodeFloat32(float32(n))
	case "f64":
		n, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return err
		}
		return e.EncodeFloat64(n)
	case "char":
		r := []rune(val)
		if len(r) != 1 {
			return fmt.Errorf("want exactly one character, got %q", val)
		}
		return e.EncodeRune(r[0])
	case "string":
		return e.EncodeString(val)
	case "bytes":
		b, err := hex.DecodeString(val)
		if err != nil {
			return err
		}
		return e.EncodeBytes(b)
	case "option-u8":
		if val == "" || val == "none" {
			return e.EncodeOption(false)
		}
		n, err := strconv.ParseUint(val, 10, 8)
		if err != nil {
			return err
		}
		if err := e.EncodeOption(true); err != nil {
			return err
		}
		return e.EncodeUint8(uint8(n))
	case "seq-u8":
		var parts []string
		if val != "" {
			parts = strings.Split(val, ",")
		}
		if err := e.EncodeSeqLen(len(parts)); err != nil {
			return err
		}
		for _, p := range parts {
			n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return err
			}
			if err := e.EncodeUint8(uint8(n)); err != nil {
				return err
			}
		}
		return nil
	case "variant":
		n, err := strconv.Atoi(val)
		if err != nil {
			return err
		}
		return e.EncodeVariant(f.name, n)
	default:
		return fmt.Errorf("unknown field type %q", f.typ)
	}
}

func decodeField(d *binwire.Decoder, f field) (string, error) {
	switch f.typ {
	case "bool":
		v, err := d.DecodeBool()
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(v), nil
	case "i8":
		v, err := d.DecodeInt8()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(v), 10), nil
	case "i16":
		v, err := d.DecodeInt16()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(v), 10), nil
	case "i32":
		v, err := d.DecodeInt32()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(v), 10), nil
	case "i64":
		v, err := d.DecodeInt64()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil
	case "u8":
		v, err := d.DecodeUint8()
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(uint64(v), 10), nil
	case "u16":
		v, err := d.DecodeUint16()
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(uint64(v), 10), nil
	case "u32":
		v, err := d.DecodeUint32()
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(uint64(v), 10), nil
	case "u64":
		v, err := d.DecodeUint64()
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(v, 10), nil
	case "f32":
		v, err := d.DecodeFloat32()
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case "f64":
		v, err := d.DecodeFloat64()
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case "char":
		v, err := d.DecodeRune()
		if err != nil {
			return "", err
		}
		return string(v), nil
	case "string":
		return d.DecodeString()
	case "bytes":
		v, err := d.DecodeBytes()
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(v), nil
	case "option-u8":
		present, err := d.DecodeOption()
		if err != nil {
			return "", err
		}
		if !present {
			return "none", nil
		}
		v, err := d.DecodeUint8()
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(uint64(v), 10), nil
	case "seq-u8":
		seq, err := d.DecodeSeq()
		if err != nil {
			return "", err
		}
		var parts []string
		for seq.Next() {
			v, err := d.DecodeUint8()
			if err != nil {
				return "", err
			}
			parts = append(parts, strconv.FormatUint(uint64(v), 10))
		}
		return strings.Join(parts, ","), nil
	case "variant":
		v, err := d.DecodeVariant()
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil
	default:
		return "", fmt.Errorf("unknown field type %q", f.typ)
	}
}
