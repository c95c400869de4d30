// Package randutil builds the random generators that drive the computer's moves.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG words are derived from the one seed so a single number on the
// command line is enough to replay a session.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewUnseeded returns a generator seeded from the operating system.
func NewUnseeded() *rand.Rand {
	return New(RandomSeed())
}

// FromSeed treats 0 as "pick a seed for me" and returns the generator
// together with the seed actually used, so callers can log it for replay.
func FromSeed(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = RandomSeed()
	}
	return New(seed), seed
}

// RandomSeed returns a non-zero seed read from crypto/rand
func RandomSeed() int64 {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			panic("failed to read random seed: " + err.Error())
		}
		if seed := int64(binary.LittleEndian.Uint64(b[:]) >> 1); seed != 0 {
			return seed
		}
	}
}

// Derive returns the seed for the n-th independent stream under a base seed
func Derive(base int64, n int) int64 {
	return int64(mix(uint64(base)+uint64(n)*goldenRatio64) >> 1)
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
