package deck

import (
	"errors"
	"fmt"
)

// ErrInvalidRankOrder is returned when a rank order does not list each rank of the deck exactly once
var ErrInvalidRankOrder = errors.New("rank order must list each rank from 7 to ace exactly once")

// RankOrder ranks cards within a suit, lowest first
type RankOrder []int

// StraightOrder is the natural order: 7, 8, 9, 10, J, Q, K, A
var StraightOrder = RankOrder{7, 8, 9, 10, Jack, Queen, King, Ace}

// PlainOrder is the order of a non-trump suit: 7, 8, 9, J, Q, K, 10, A
var PlainOrder = RankOrder{7, 8, 9, Jack, Queen, King, 10, Ace}

// TrumpOrder is the order of the trump suit: 7, 8, Q, K, 10, A, 9, J
var TrumpOrder = RankOrder{7, 8, Queen, King, 10, Ace, 9, Jack}

// Strength returns the position of the rank in the order, or -1 if the rank is not part of it
func (r RankOrder) Strength(rank int) int {
	for i, rr := range r {
		if rr == rank {
			return i
		}
	}

	return -1
}

// Compare returns a negative number if a ranks lower than b, zero if equal, and positive if higher
func (r RankOrder) Compare(a, b int) int {
	return r.Strength(a) - r.Strength(b)
}

// Validate ensures every rank of a 32-card deck appears exactly once
func (r RankOrder) Validate() error {
	if len(r) != Ace-LowestRank+1 {
		return ErrInvalidRankOrder
	}

	seen := make(map[int]bool)
	for _, rank := range r {
		if rank < LowestRank || rank > Ace || seen[rank] {
			return fmt.Errorf("%w: %v", ErrInvalidRankOrder, []int(r))
		}

		seen[rank] = true
	}

	return nil
}
