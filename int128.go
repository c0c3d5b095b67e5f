package binwire

import (
	"encoding/binary"
	"math/big"
)

// Uint128 is a 128-bit unsigned integer split into two 64-bit halves.
// On the wire the high half precedes the low half, both big-endian.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a 128-bit signed integer in two's complement. Hi carries the
// sign; Lo is the raw low half.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Uint128FromUint64 widens v to 128 bits.
func Uint128FromUint64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Int128FromInt64 sign-extends v to 128 bits.
func Int128FromInt64(v int64) Int128 {
	var hi int64
	if v < 0 {
		hi = -1
	}
	return Int128{Hi: hi, Lo: uint64(v)}
}

var two128 = new(big.Int).Lsh(big.NewInt(1), 128)

// String renders the value in decimal.
func (u Uint128) String() string {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.Hi)
	binary.BigEndian.PutUint64(b[8:], u.Lo)
	return new(big.Int).SetBytes(b[:]).String()
}

// String renders the value in decimal.
func (i Int128) String() string {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], uint64(i.Hi))
	binary.BigEndian.PutUint64(b[8:], i.Lo)
	v := new(big.Int).SetBytes(b[:])
	if i.Hi < 0 {
		v.Sub(v, two128)
	}
	return v.String()
}
