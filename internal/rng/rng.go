package rng

import (
	"math/rand"
	"sync"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int

	// Int63 returns a non-negative 63-bit number, used to seed a deck shuffle
	Int63() int64
}

// Seeded is a deterministic generator, mostly useful in tests
type Seeded struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeeded returns a generator that always produces the same sequence for the same seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rnd: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.Intn(n)
}

// Int63 returns a number from 0 <= x < 1<<63
func (s *Seeded) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.Int63()
}
