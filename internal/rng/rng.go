// Package rng isolates all randomness used by the simulation behind a single
// seeded source so that games, injuries, and AI decisions are replayable.
package rng

import (
	"hash/fnv"
	"math/rand"
)

// Rand wraps a seeded math/rand source. Every probabilistic branch in the
// engine draws from a Rand, never from the global source.
type Rand struct {
	r *rand.Rand
}

// New creates a Rand from an explicit seed.
func New(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Derive creates a child Rand whose seed mixes this Rand's seed material with
// the given labels. Used to give each game its own stream so simulating one
// game never perturbs another.
func Derive(seed int64, labels ...string) *Rand {
	h := fnv.New64a()
	for _, l := range labels {
		h.Write([]byte(l))
	}
	return New(seed ^ int64(h.Sum64()))
}

func (r *Rand) Float64() float64 { return r.r.Float64() }

// Intn returns a uniform int in [0, n).
func (r *Rand) Intn(n int) int { return r.r.Intn(n) }

// Range returns a uniform int in [min, max] inclusive.
func (r *Rand) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.r.Intn(max-min+1)
}

// Uniform returns a uniform float64 in [min, max).
func (r *Rand) Uniform(min, max float64) float64 {
	return min + r.r.Float64()*(max-min)
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool { return r.r.Float64() < p }

// Pick returns a uniformly chosen element of items.
func Pick[T any](r *Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// OfferSeed derives the deterministic 0-99 roll used for contract-offer
// acceptance. The roll is a pure function of the player id and the offer
// parameters: the byte sum of the id plus the salary and term, mod 100.
// Identical offers to the same player always resolve the same way.
func OfferSeed(playerID string, salary int64, years int) int {
	sum := int64(0)
	for _, b := range []byte(playerID) {
		sum += int64(b)
	}
	v := (sum + salary + int64(years)) % 100
	if v < 0 {
		v += 100
	}
	return int(v)
}
