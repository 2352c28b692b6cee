package procgen

import "fmt"

// DeriveSeed folds an identifier into a deterministic 31-bit seed rooted at
// masterSeed. The accumulator is a multiply-by-31 polynomial rolling hash over
// the identifier's bytes with 32-bit signed wraparound at every step; the
// wraparound width is load-bearing, since any node regenerating the same path
// must arrive at the same seed. Collisions between different identifiers are
// tolerated.
func DeriveSeed(masterSeed int32, identifier string) int32 {
	acc := masterSeed
	for i := 0; i < len(identifier); i++ {
		acc = acc<<5 - acc + int32(identifier[i])
	}
	v := int64(acc)
	if v < 0 {
		v = -v
	}
	return int32(v & 0x7FFFFFFF)
}

// GalaxyPath returns the generation identifier for a galaxy.
func GalaxyPath(galaxyIndex int) string {
	return fmt.Sprintf("galaxy_%d", galaxyIndex)
}

// SystemPath returns the generation identifier for a system within a galaxy.
func SystemPath(galaxyIndex, systemIndex int) string {
	return fmt.Sprintf("galaxy_%d_system_%d", galaxyIndex, systemIndex)
}

// BodyPath returns the generation identifier for a body within a system.
func BodyPath(galaxyIndex, systemIndex, bodyIndex int) string {
	return fmt.Sprintf("galaxy_%d_system_%d_body_%d", galaxyIndex, systemIndex, bodyIndex)
}

// Stream is a reproducible pseudo-random float source. Two streams built from
// the same seed yield the same sequence on every machine; the recurrence
// below is part of the wire-level contract and must not be swapped for
// another generator, however equivalent it looks.
type Stream struct {
	state int64
}

// NewStream constructs a stream from a derived seed.
func NewStream(seed int32) *Stream {
	return &Stream{state: int64(seed)}
}

// Next advances the stream and returns a value in [0, 1).
// Linear congruential recurrence: state = (state*1103515245 + 12345) mod 2^31.
func (s *Stream) Next() float64 {
	s.state = (s.state*1103515245 + 12345) % (1 << 31)
	return float64(s.state) / (1 << 31)
}

// NextIn returns a value in [min, max).
func (s *Stream) NextIn(min, max float64) float64 {
	return min + s.Next()*(max-min)
}
