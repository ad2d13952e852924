package klaverjas

import "klaverjas-server/pkg/deck"

// PointTable maps ranks to points
// Trump cards are looked up in Trump, every other card in Plain. Missing ranks are worth nothing.
type PointTable struct {
	Plain          map[int]int
	Trump          map[int]int
	LastTrickBonus int
}

// DefaultPointTable returns the common table: 162 points per round including the last trick
func DefaultPointTable() PointTable {
	return PointTable{
		Plain: map[int]int{
			deck.Ace:   11,
			10:         10,
			deck.King:  4,
			deck.Queen: 3,
			deck.Jack:  2,
		},
		Trump: map[int]int{
			deck.Jack:  20,
			9:          14,
			deck.Ace:   11,
			10:         10,
			deck.King:  4,
			deck.Queen: 3,
		},
		LastTrickBonus: 10,
	}
}

// CardValue returns the points of a single card
func (p PointTable) CardValue(card *deck.Card, trump deck.Suit) int {
	if trump != deck.NoSuit && card.Suit == trump {
		return p.Trump[card.Rank]
	}

	return p.Plain[card.Rank]
}

// TrickValue returns the points of every card in the trick, plus the bonus for the last trick
func (p PointTable) TrickValue(t *Trick, trump deck.Suit, lastTrick bool) int {
	total := 0
	for _, m := range t.moves {
		total += p.CardValue(m.Card, trump)
	}

	if lastTrick {
		total += p.LastTrickBonus
	}

	return total
}
