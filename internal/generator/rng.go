package generator

import "math/rand/v2"

// mixSeed derives the second PCG word from a seed with a SplitMix64 finalizer
// so that nearby seeds give unrelated streams.
func mixSeed(seed uint64) uint64 {
	x := seed + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// NewRand returns a deterministic random source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, mixSeed(seed)))
}
