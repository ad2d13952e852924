package klaverjas

import (
	"testing"

	"klaverjas-server/internal/rng"
	"klaverjas-server/pkg/deck"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// testPlayers seats the human first, then alternates teams like the server does
func testPlayers(seed int64) []*Player {
	gen := rng.NewSeeded(seed)
	return []*Player{
		NewHumanPlayer(1, "John Doe", "Suriname"),
		NewAutomatedPlayer(3, "Tupac", "Nederland", gen),
		NewAutomatedPlayer(2, "Bob", "Suriname", gen),
		NewAutomatedPlayer(4, "Jimi", "Nederland", gen),
	}
}

func automatedPlayers(seed int64) []*Player {
	gen := rng.NewSeeded(seed)
	return []*Player{
		NewAutomatedPlayer(1, "North", "Suriname", gen),
		NewAutomatedPlayer(2, "East", "Nederland", gen),
		NewAutomatedPlayer(3, "South", "Suriname", gen),
		NewAutomatedPlayer(4, "West", "Nederland", gen),
	}
}

func setupGame(t *testing.T, players []*Player, opts Options) *CardGame {
	t.Helper()
	return setupSeededGame(t, players, opts, 1)
}

// setupSeededGame returns a game whose seating and deals are driven by seed
func setupSeededGame(t *testing.T, players []*Player, opts Options, seed int64) *CardGame {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	g, err := NewCardGame(logger, players, opts, rng.NewSeeded(seed))
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	return g
}

func giveCards(p *Player, cards string) {
	for _, c := range deck.CardsFromString(cards) {
		p.AddCard(c)
	}
}

func card(s string) *deck.Card {
	return deck.CardFromString(s)
}
