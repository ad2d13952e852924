package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testReceiver struct {
	hand Hand
}

func (r *testReceiver) AddCard(card *Card) {
	r.hand.AddCard(card)
}

func receivers(n int) ([]Receiver, []*testReceiver) {
	rs := make([]Receiver, n)
	trs := make([]*testReceiver, n)
	for i := range rs {
		trs[i] = &testReceiver{}
		rs[i] = trs[i]
	}

	return rs, trs
}

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Equal(t, 32, deck.CardsLeft())
	assert.Equal(t, Card{Rank: 7, Suit: Clubs}, *deck.Cards[0])
	assert.Equal(t, Card{Rank: 14, Suit: Spades}, *deck.Cards[31])
	assert.Equal(t, "738b755a8ef85ebf3f62486f0cc4676f181acefe", deck.HashCode())

	deck.SetSeed(1)
	deck.Shuffle()
	assert.Equal(t, 32, deck.CardsLeft())
	assert.Equal(t, int64(1), deck.Seed())

	expected := deck.HashCode()
	assert.NotEqual(t, "738b755a8ef85ebf3f62486f0cc4676f181acefe", expected)

	same := New()
	same.SetSeed(1)
	same.Shuffle()
	assert.Equal(t, expected, same.HashCode())

	deck.Shuffle()
	assert.NotEqual(t, expected, deck.HashCode())
}

func TestDeck_ShuffleWithoutSeed(t *testing.T) {
	a := assert.New(t)
	d1 := New()
	d1.Shuffle()
	d2 := New()
	d2.Shuffle()

	a.Greater(d1.Seed(), int64(0))
	a.NotEqual(d1.Seed(), d2.Seed())
	a.Equal(32, d1.CardsLeft())
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	if !deck.CanDraw(32) {
		t.Errorf("expected CanDraw(32) to be true")
	}

	if deck.CanDraw(33) {
		t.Errorf("expected CanDraw(33) to be false")
	}

	for i := 0; i < 32; i++ {
		card, err := deck.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	card, err := deck.Draw()
	assert.Nil(t, card)
	assert.Equal(t, ErrEndOfDeck, err)

	deck.Shuffle()
	assert.True(t, deck.CanDraw(32), "expected Shuffle() to rebuild the deck")
}

func TestDeck_DealPartialAndRemainder(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.SetSeed(42)
	d.Shuffle()

	rs, trs := receivers(4)
	a.NoError(d.DealPartial(rs, 5))
	a.Equal(12, d.CardsLeft())
	for _, r := range trs {
		a.Equal(5, len(r.hand))
	}

	a.NoError(d.DealRemainder(rs))
	a.Equal(0, d.CardsLeft())

	seen := make(map[string]bool)
	for _, r := range trs {
		a.Equal(8, len(r.hand))
		for _, c := range r.hand {
			a.False(seen[CardToString(c)], "card %s dealt twice", c)
			seen[CardToString(c)] = true
		}
	}
	a.Equal(32, len(seen))

	// dealing the remainder twice is a protocol bug
	a.Equal(ErrEndOfDeck, d.DealRemainder(rs))
	a.Equal(8, len(trs[0].hand))
}

func TestDeck_DealPartial_NotEnoughCards(t *testing.T) {
	a := assert.New(t)
	d := New()
	d.Cards = CardsFromString("7c,8c,9c,10c,11c,12c,13c")

	rs, trs := receivers(4)
	a.Equal(ErrEndOfDeck, d.DealPartial(rs, 2))
	a.Equal(7, d.CardsLeft(), "nothing is drawn on failure")
	for _, r := range trs {
		a.Empty(r.hand)
	}

	a.Equal(ErrUnevenDeal, d.DealRemainder(rs))
	a.Equal(7, d.CardsLeft())

	d.Cards = d.Cards[:4]
	a.NoError(d.DealRemainder(rs))
	a.Equal("7c", CardsToString(trs[0].hand))
	a.Equal("10c", CardsToString(trs[3].hand))
}
