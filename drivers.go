package binwire

// SeqDecoder walks the elements of one sequence. DecodeSeq reads the
// count prefix and returns the driver; the caller loops on Next and
// decodes one element per iteration:
//
//	seq, err := d.DecodeSeq()
//	if err != nil {
//		return err
//	}
//	out := make([]uint32, 0, seq.Len())
//	for seq.Next() {
//		v, err := d.DecodeUint32()
//		if err != nil {
//			return err
//		}
//		out = append(out, v)
//	}
//
// A driver is bound to the decode that produced it and must not outlive
// that call.
type SeqDecoder struct {
	remaining int
}

// DecodeSeq reads a sequence count prefix and returns its driver.
func (d *Decoder) DecodeSeq() (*SeqDecoder, error) {
	n, err := d.readLargeLen()
	if err != nil {
		return nil, err
	}
	return &SeqDecoder{remaining: n}, nil
}

// Next reports whether another element follows, counting it off when it
// does. Elements past the count are never offered.
func (s *SeqDecoder) Next() bool {
	if s.remaining == 0 {
		return false
	}
	s.remaining--
	return true
}

// Len returns the number of elements not yet offered by Next. It is a
// size hint for preallocation; cap it when the input is untrusted, since
// the count comes straight off the wire.
func (s *SeqDecoder) Len() int {
	return s.remaining
}

// MapDecoder walks the entries of one map. Next counts off one key/value
// pair; the caller decodes the key and then the value each iteration:
//
//	m, err := d.DecodeMap()
//	if err != nil {
//		return err
//	}
//	out := make(map[string]uint64, m.Len())
//	for m.Next() {
//		k, err := d.DecodeString()
//		if err != nil {
//			return err
//		}
//		v, err := d.DecodeUint64()
//		if err != nil {
//			return err
//		}
//		out[k] = v
//	}
type MapDecoder struct {
	remaining int
}

// DecodeMap reads a map entry-count prefix and returns its driver.
func (d *Decoder) DecodeMap() (*MapDecoder, error) {
	n, err := d.readLargeLen()
	if err != nil {
		return nil, err
	}
	return &MapDecoder{remaining: n}, nil
}

// Next reports whether another entry follows, counting the pair off when
// it does.
func (m *MapDecoder) Next() bool {
	if m.remaining == 0 {
		return false
	}
	m.remaining--
	return true
}

// Len returns the number of entries not yet offered by Next. The same
// preallocation caution as SeqDecoder.Len applies.
func (m *MapDecoder) Len() int {
	return m.remaining
}
