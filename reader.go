package binwire

import (
	"bytes"
	"io"

	"github.com/wippyai/binwire/errors"
)

// reader is the byte source a Decoder pulls from. readFull either fills p
// entirely or reports why it could not; partial reads never escape. readN
// returns n bytes in a fresh allocation the caller owns.
type reader interface {
	readByte() (byte, error)
	readFull(p []byte) error
	readN(n int) ([]byte, error)
}

// maxChunkAlloc bounds a single allocation while reading from a stream.
// A hostile length prefix runs into EOF before it can force a giant
// up-front allocation.
const maxChunkAlloc = 1 << 20

// streamReader adapts an io.Reader. Everything is copied out; the source
// cannot hand out views of data it does not retain.
type streamReader struct {
	r io.Reader
}

func (s *streamReader) readByte() (byte, error) {
	var b [1]byte
	if err := s.readFull(b[:1]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *streamReader) readFull(p []byte) error {
	n, err := io.ReadFull(s.r, p)
	switch err {
	case nil:
		return nil
	case io.EOF, io.ErrUnexpectedEOF:
		return errors.UnexpectedEOF(len(p), n)
	default:
		return errors.IO(errors.PhaseDecode, err)
	}
}

func (s *streamReader) readN(n int) ([]byte, error) {
	if n <= maxChunkAlloc {
		out := make([]byte, n)
		if err := s.readFull(out); err != nil {
			return nil, err
		}
		return out, nil
	}
	out := make([]byte, 0, maxChunkAlloc)
	for len(out) < n {
		chunk := n - len(out)
		if chunk > maxChunkAlloc {
			chunk = maxChunkAlloc
		}
		start := len(out)
		out = append(out, make([]byte, chunk)...)
		if err := s.readFull(out[start:]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// bufferReader decodes from a caller-owned slice. Short reads fail rather
// than zero-fill, and view hands out subslices of the backing buffer
// without copying.
type bufferReader struct {
	data []byte
	off  int
}

func (b *bufferReader) remaining() int {
	return len(b.data) - b.off
}

func (b *bufferReader) readByte() (byte, error) {
	if b.off >= len(b.data) {
		return 0, errors.UnexpectedEOF(1, 0)
	}
	c := b.data[b.off]
	b.off++
	return c, nil
}

func (b *bufferReader) readFull(p []byte) error {
	if rem := b.remaining(); rem < len(p) {
		return errors.UnexpectedEOF(len(p), rem)
	}
	copy(p, b.data[b.off:])
	b.off += len(p)
	return nil
}

func (b *bufferReader) readN(n int) ([]byte, error) {
	v, err := b.view(n)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(v), nil
}

// view returns the next n bytes of the backing buffer without copying.
// The capacity is clipped so an append on the result cannot touch bytes
// past the view.
func (b *bufferReader) view(n int) ([]byte, error) {
	if rem := b.remaining(); rem < n {
		return nil, errors.UnexpectedEOF(n, rem)
	}
	v := b.data[b.off : b.off+n : b.off+n]
	b.off += n
	return v, nil
}
