package klaverjas

import (
	"klaverjas-server/internal/rng"
	"klaverjas-server/pkg/deck"
)

// automaton plays a random legal card
type automaton struct {
	rng rng.Generator
}

func (a *automaton) pickCard(valid deck.Hand) *deck.Card {
	if len(valid) == 0 {
		return nil
	}

	return valid[a.rng.Intn(len(valid))]
}

// pickTrump prefers the longest suit, then the one holding the strongest trump cards
func (a *automaton) pickTrump(hand deck.Hand) deck.Suit {
	best := deck.NoSuit
	bestScore := -1
	for _, suit := range deck.Suits() {
		cards := hand.OfSuit(suit)
		score := len(cards) * 100
		for _, c := range cards {
			score += deck.TrumpOrder.Strength(c.Rank)
		}

		if score > bestScore {
			best = suit
			bestScore = score
		}
	}

	return best
}
