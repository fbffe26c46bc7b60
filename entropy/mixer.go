// Package entropy implements the deterministic byte pipeline that turns raw
// source bytes into a reproducible stream for seeding the initial-condition
// sampler: a SHA-256 mixer, a counter-mode expander, and a streaming reader
// that turns expanded bytes into uniform floats and Box-Muller normals.
package entropy

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
)

// MaxExpandLength is the largest number of bytes Expand will produce.
const MaxExpandLength = 8192

// Mix combines an ordered list of byte buffers into a single 32-byte digest:
// SHA-256(b1 || b2 || ... || bn). Mixing is order-sensitive — Mix([a,b]) and
// Mix([b,a]) differ almost surely — and deterministic: the same ordered
// inputs always yield the same digest. An empty input list yields an empty
// output, not a hash of the empty string.
func Mix(buffers ...[]byte) []byte {
	if len(buffers) == 0 {
		return nil
	}
	h := sha256.New()
	for _, b := range buffers {
		h.Write(b)
	}
	return h.Sum(nil)
}

// Expand stretches a 32-byte seed into length bytes of deterministic output
// via SHA-256 counter mode: truncate(SHA256(seed||0x00) || SHA256(seed||0x01)
// || ..., length). The counter is a single byte, so length may not exceed
// MaxExpandLength. The same seed always yields identical output, and a
// biased seed (e.g. all-zero) still yields output with roughly even
// bit-distribution, since each counter block is independently re-hashed.
func Expand(seed []byte, length int) ([]byte, error) {
	if length > MaxExpandLength {
		return nil, errors.New("entropy: requested length exceeds MaxExpandLength")
	}
	if length <= 0 {
		return nil, nil
	}

	out := make([]byte, 0, length)
	for counter := 0; len(out) < length; counter++ {
		if counter > 255 {
			return nil, errors.New("entropy: counter overflow before reaching requested length")
		}
		block := sha256.Sum256(append(append([]byte{}, seed...), byte(counter)))
		out = append(out, block[:]...)
	}
	return out[:length], nil
}

// UniformFloatFromBytes reads 4 bytes at offset as a little-endian uint32
// and returns it divided by 2^32, landing in [0, 1) with a maximum strictly
// less than 1. Fails when fewer than 4 bytes remain at offset.
func UniformFloatFromBytes(buf []byte, offset int) (float64, error) {
	if offset < 0 || offset+4 > len(buf) {
		return 0, errors.New("entropy: fewer than 4 bytes remain at offset")
	}
	u := binary.LittleEndian.Uint32(buf[offset : offset+4])
	return float64(u) / 4294967296.0, nil
}

// UniformFloatInRange maps a [0,1) uniform float to [min, max).
func UniformFloatInRange(u, min, max float64) float64 {
	return min + (max-min)*u
}
