// Package varlen implements the two-tier length framing used by the wire
// format.
//
// A small length is a single raw byte (0-255). A large length is a tier-1
// byte holding the count of tier-2 bytes, followed by the value in minimal
// big-endian with no leading zeros. Zero encodes as the single byte 0.
// The encoding is canonical: a given value has exactly one valid encoding.
//
// # Contents
//
//   - varlen.go: small/large length encoding and decoding
//
// This package is internal to the codec. All functions are pure; reading
// the right number of bytes from the input is the caller's job.
package varlen
