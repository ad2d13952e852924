package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_HasCard(t *testing.T) {
	hand := Hand(CardsFromString("7c,8c,9d"))
	assert.True(t, hand.HasCard(CardFromString("8c")))
	assert.False(t, hand.HasCard(CardFromString("8s")))
}

func TestHand_Suits(t *testing.T) {
	hand := Hand(CardsFromString("7c,8c,9d"))
	assert.True(t, hand.HasSuit(Clubs))
	assert.False(t, hand.HasSuit(Spades))
	assert.Equal(t, "7c,8c", hand.OfSuit(Clubs).String())
	assert.Empty(t, hand.OfSuit(Hearts))
}

func TestHand_Remove(t *testing.T) {
	hand := Hand(CardsFromString("7c,8c,9d"))
	clone := hand.Clone()

	assert.True(t, hand.Remove(CardFromString("8c")))
	assert.False(t, hand.Remove(CardFromString("8c")))
	assert.Equal(t, "7c,9d", hand.String())
	assert.Equal(t, "7c,8c,9d", clone.String())
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(CardFromString("14s"))
	h.AddCard(CardFromString("8c"))
	assert.Equal(t, "14s,8c", CardsToString(h))

	sort.Sort(h)
	assert.Equal(t, "8c,14s", CardsToString(h))
}
