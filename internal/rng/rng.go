package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded is a deterministic generator backed by math/rand
// This should only be used by tests and replays. Use Crypto for real play.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded returns a generator that always produces the same sequence for the same seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rng: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

// Shuffle performs an in-place Fisher-Yates shuffle of n elements using gen
func Shuffle(gen Generator, n int, swap func(i, j int)) {
	for j := n - 1; j > 0; j-- {
		i := gen.Intn(j + 1)
		swap(i, j)
	}
}
