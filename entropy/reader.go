package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"math"

	"github.com/rohit-kuinkel1/flip-coin/util/logger"
)

// Reader is a cursor over expanded entropy bytes, consuming them into
// uniform floats and Box-Muller normals. When the cursor is exhausted it
// falls back to a non-deterministic uniform source (crypto/rand); this is a
// documented degradation path, not a normal outcome, and is logged at warn
// level each time it triggers.
type Reader struct {
	bytes  []byte
	offset int
}

// NewReader wraps expanded bytes in a Reader.
func NewReader(expanded []byte) *Reader {
	return &Reader{bytes: expanded}
}

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int {
	return len(r.bytes) - r.offset
}

// NextUniform consumes 4 bytes and returns a float in [0, 1).
func (r *Reader) NextUniform() float64 {
	if r.Remaining() < 4 {
		logger.Log.Warn().
			Int("remaining", r.Remaining()).
			Msg("entropy reader exhausted, falling back to non-deterministic uniform source")
		return fallbackUniform()
	}
	u, err := UniformFloatFromBytes(r.bytes, r.offset)
	if err != nil {
		// Cannot happen given the Remaining() check above, but fall back
		// rather than panic if it somehow does.
		return fallbackUniform()
	}
	r.offset += 4
	return u
}

// NextGaussian consumes 8 bytes (two uniforms) and returns a normal sample
// with the given mean and standard deviation via the Box-Muller transform:
// z0 = sqrt(-2*ln(max(u1, 1e-10))) * cos(2*pi*u2).
func (r *Reader) NextGaussian(mean, stdDev float64) float64 {
	u1 := r.NextUniform()
	u2 := r.NextUniform()
	if u1 < 1e-10 {
		u1 = 1e-10
	}
	z0 := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + stdDev*z0
}

// fallbackUniform draws a uniform float in [0,1) from the OS CSPRNG. This is
// the non-deterministic degradation path documented on Reader; it is never
// used when the entropy buffer fully covers the sampler's needs.
func fallbackUniform() float64 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing is catastrophic for the whole process; return
		// the distribution's midpoint rather than panicking inside a
		// numerics kernel.
		logger.Log.Error().Err(err).Msg("crypto/rand read failed during entropy fallback")
		return 0.5
	}
	u := binary.LittleEndian.Uint32(buf[:])
	return float64(u) / 4294967296.0
}
