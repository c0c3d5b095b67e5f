package varlen

import "math/bits"

// MaxLargeSize is the largest encoded size of a large length: one tier-1
// byte plus up to eight tier-2 bytes.
const MaxLargeSize = 9

// MaxTier2 is the widest tier-2 run a decoder accepts. Anything larger
// cannot fit in a uint64 and marks corrupt or hostile input.
const MaxTier2 = 8

// EncodeSmall returns n as a single raw byte. ok is false when n does not
// fit in one byte.
func EncodeSmall(n int) (byte, bool) {
	if n < 0 || n > 255 {
		return 0, false
	}
	return byte(n), true
}

// DecodeSmall is the inverse of EncodeSmall.
func DecodeSmall(b byte) int {
	return int(b)
}

// AppendLarge appends the canonical large-length encoding of n to dst and
// returns the extended slice.
func AppendLarge(dst []byte, n uint64) []byte {
	k := tier2Len(n)
	dst = append(dst, byte(k))
	for i := k - 1; i >= 0; i-- {
		dst = append(dst, byte(n>>(8*i)))
	}
	return dst
}

// DecodeLarge folds big-endian tier-2 bytes into a value. The caller reads
// exactly the tier-1 count of bytes and must keep len(b) <= MaxTier2; the
// fold itself accepts non-minimal input (leading zeros) without complaint.
func DecodeLarge(b []byte) uint64 {
	var n uint64
	for _, c := range b {
		n = n<<8 | uint64(c)
	}
	return n
}

// SizeLarge returns the encoded size of n: the tier-1 byte plus the
// minimal big-endian width.
func SizeLarge(n uint64) int {
	return 1 + tier2Len(n)
}

// Minimal returns whether the tier-2 bytes b are the canonical encoding of
// their value: no leading zero, and the single byte 0 spelled as an empty
// run.
func Minimal(b []byte) bool {
	return len(b) == 0 || b[0] != 0
}

func tier2Len(n uint64) int {
	return (bits.Len64(n) + 7) / 8
}
