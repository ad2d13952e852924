package deck

import (
	"strings"
)

// Hand represents a collection of cards
type Hand []*Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if cmp := strings.Compare(string(h[i].Suit), string(h[j].Suit)); cmp != 0 {
		return cmp < 0
	}

	return h[i].Rank < h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// HasSuit returns true if at least one card in the hand is of the suit
func (h Hand) HasSuit(suit Suit) bool {
	for _, c := range h {
		if c.Suit == suit {
			return true
		}
	}

	return false
}

// OfSuit returns the cards of the suit, in hand order
func (h Hand) OfSuit(suit Suit) Hand {
	cards := make(Hand, 0, len(h))
	for _, c := range h {
		if c.Suit == suit {
			cards = append(cards, c)
		}
	}

	return cards
}

// Remove removes the card from the hand and returns true if it was present
func (h *Hand) Remove(card *Card) bool {
	for i, c := range *h {
		if c.Equal(card) {
			newHand := make(Hand, 0, len(*h)-1)
			newHand = append(newHand, (*h)[:i]...)
			*h = append(newHand, (*h)[i+1:]...)
			return true
		}
	}

	return false
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
