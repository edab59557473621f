// Package randgen implements the linear congruential generator used to
// pick random token indices while generating a haiku nonce, matching
// trigg_rand/trigg_srand in original_source/src/trigg.c.
//
// The package-level functions reproduce the original global, mutex-guarded
// generator exactly. Source additionally exposes an unshared, per-worker
// generator with identical arithmetic so a multi-worker miner can avoid
// contending on the shared lock.
package randgen

import "sync"

const (
	mul = 69069
	inc = 262145
)

var (
	mu sync.Mutex
	// seed defaults to 1, matching Trigg_seed's compile-time initializer
	// in trigg.c: the shared generator is usable before any Srand call.
	seed uint32 = 1
)

// Srand reseeds the shared generator, matching trigg_srand.
func Srand(s uint32) {
	mu.Lock()
	seed = s
	mu.Unlock()
}

// Rand advances and reads the shared generator, matching trigg_rand.
func Rand() uint32 {
	mu.Lock()
	seed = seed*mul + inc
	r := seed >> 16
	mu.Unlock()
	return r
}

// Source is an independent, unsynchronized LCG stream with the same
// recurrence as the shared generator. Each mining worker should own one
// Source rather than share the package-level generator, eliminating lock
// contention across workers while remaining bit-identical per stream.
type Source struct {
	seed uint32
}

// New returns a Source seeded with s.
func New(s uint32) *Source {
	return &Source{seed: s}
}

// Seed reseeds the source.
func (src *Source) Seed(s uint32) {
	src.seed = s
}

// Next advances and returns the next pseudo-random value.
func (src *Source) Next() uint32 {
	src.seed = src.seed*mul + inc
	return src.seed >> 16
}
