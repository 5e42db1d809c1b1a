// Package prng provides the deterministic number stream every generator draws from,
// plus the seed arithmetic used to address children by index.
package prng

import (
	"math"
	"unicode/utf16"
)

// Stream is a mulberry32 generator. The zero value is a valid stream seeded with 0.
type Stream struct {
	state uint32
}

// New returns a stream seeded with seed.
func New(seed uint32) *Stream {
	return &Stream{state: seed}
}

// Float64 returns the next draw in [0,1) and advances the stream.
func (s *Stream) Float64() float64 {
	s.state += 0x6d2b79f5
	a := s.state
	t := (a ^ (a >> 15)) * (1 | a)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296
}

// Between draws once and maps the value onto [a,b).
func (s *Stream) Between(a, b float64) float64 {
	return Lerp(a, b, s.Float64())
}

// Intn draws once and returns an integer in [0,n). n must be positive.
func (s *Stream) Intn(n int) int {
	return int(s.Float64() * float64(n))
}

// Lerp interpolates linearly between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Pick draws once and returns one element of items, uniformly.
func Pick[T any](s *Stream, items []T) T {
	return items[s.Intn(len(items))]
}

// HashCoord hashes a cell coordinate into 32 bits. Coordinates are truncated to 32
// bits first and the products wrap exactly, also when they exceed 2^53.
func HashCoord(x, y, z int) uint32 {
	hx := uint32(int32(x)) * 73856093
	hy := uint32(int32(y)) * 19349663
	hz := uint32(int32(z)) * 83492791
	return hx ^ hy ^ hz
}

// Mix combines seed with a cell coordinate.
func Mix(seed uint32, x, y, z int) uint32 {
	return seed ^ HashCoord(x, y, z)
}

// Derive returns seed XOR (index*constant), truncated to 32 bits.
func Derive(seed uint32, index int, constant uint32) uint32 {
	return seed ^ uint32(index)*constant
}

// Offset returns seed + index*constant, truncated to 32 bits.
func Offset(seed uint32, index int, constant uint32) uint32 {
	return seed + uint32(index)*constant
}

// HashString is the 31-multiplier rolling hash over UTF-16 code units, wrapped to a
// signed 32-bit value and made non-negative.
func HashString(s string) uint32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}
	if h < 0 {
		return uint32(-int64(h))
	}
	return uint32(h)
}

// Round rounds half up, like Math.round.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Round2 rounds to two decimals.
func Round2(x float64) float64 {
	return Round(x*100) / 100
}

// NormalizeSeed folds any integer into the seed domain: absolute value, low 32 bits.
func NormalizeSeed(v int64) uint32 {
	if v < 0 {
		v = -v
	}
	return uint32(v)
}

// NormalizeIndex returns |v|.
func NormalizeIndex(v int64) int {
	if v < 0 {
		v = -v
	}
	return int(v)
}
