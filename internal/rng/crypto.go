package rng

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
)

var _ Generator = Crypto{}

// Crypto draws from crypto/rand
// Used for seating and deck seeds so that no two matches are correlated
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
// It panics if n <= 0, like math/rand does
func (c Crypto) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// Int63 returns a positive number, never zero, fit to seed a math/rand source
func (c Crypto) Int63() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}

	return int64(binary.BigEndian.Uint64(b[:])>>1) | 1
}
