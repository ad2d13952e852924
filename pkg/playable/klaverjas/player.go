package klaverjas

import (
	"klaverjas-server/internal/rng"
	"klaverjas-server/pkg/deck"
)

// Kind tells who produces a player's moves
type Kind int

// kinds of players
const (
	// KindHuman moves arrive from outside, the trick loop waits for them
	KindHuman Kind = iota

	// KindAutomated moves are computed on request
	KindAutomated
)

func (k Kind) String() string {
	if k == KindAutomated {
		return "automated"
	}

	return "human"
}

// Player is an individual in the game
type Player struct {
	ID   int64
	Name string
	Team string
	Kind Kind

	hand deck.Hand

	// only set for KindAutomated
	automaton *automaton
}

// NewHumanPlayer returns a player whose moves are supplied from outside
func NewHumanPlayer(id int64, name, team string) *Player {
	return &Player{
		ID:   id,
		Name: name,
		Team: team,
		Kind: KindHuman,
		hand: make(deck.Hand, 0),
	}
}

// NewAutomatedPlayer returns a player that computes its own moves
func NewAutomatedPlayer(id int64, name, team string, gen rng.Generator) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		Team:      team,
		Kind:      KindAutomated,
		hand:      make(deck.Hand, 0),
		automaton: &automaton{rng: gen},
	}
}

// IsHuman returns true if the player's moves come from outside
func (p *Player) IsHuman() bool {
	return p.Kind == KindHuman
}

// AddCard add a card to the players hand
func (p *Player) AddCard(card *deck.Card) {
	p.hand.AddCard(card)
}

// GetCards returns a shallow clone of the player's hand
func (p *Player) GetCards() []*deck.Card {
	return p.hand.Clone()
}

// CardsLeft returns the number of cards in the player's hand
func (p *Player) CardsLeft() int {
	return len(p.hand)
}

// HasCard returns true if the player has the card in their hand
func (p *Player) HasCard(card *deck.Card) bool {
	return p.hand.HasCard(card)
}

// HasSuit returns true if the player holds at least one card of the suit
func (p *Player) HasSuit(suit deck.Suit) bool {
	return p.hand.HasSuit(suit)
}

// RemoveCard removes the card from the player's hand
func (p *Player) RemoveCard(card *deck.Card) error {
	if !p.hand.Remove(card) {
		return ErrCardNotInHand
	}

	return nil
}

// ValidMoves returns every card in the hand that may be played into the trick
func (p *Player) ValidMoves(t *Trick, trump deck.Suit) deck.Hand {
	valid := make(deck.Hand, 0, len(p.hand))
	for _, card := range p.hand {
		if t.ValidateMove(&Move{Player: p, Card: card}, trump) {
			valid = append(valid, card)
		}
	}

	return valid
}

// GetNextMove computes a legal card for the trick
// The card stays in the hand until the move is accepted into the trick
func (p *Player) GetNextMove(t *Trick, trump deck.Suit) (*deck.Card, error) {
	if p.Kind != KindAutomated {
		return nil, ErrNotAutomated
	}

	if len(p.hand) == 0 {
		return nil, ErrEmptyHand
	}

	if t.IsComplete() {
		return nil, ErrTrickComplete
	}

	if t.hasPlayed(p) {
		return nil, ErrDuplicatePlayer
	}

	return p.automaton.pickCard(p.ValidMoves(t, trump)), nil
}

// ChooseTrump picks a trump suit from the cards in hand
func (p *Player) ChooseTrump() (deck.Suit, error) {
	if p.Kind != KindAutomated {
		return deck.NoSuit, ErrNotAutomated
	}

	if len(p.hand) == 0 {
		return deck.NoSuit, ErrEmptyHand
	}

	return p.automaton.pickTrump(p.hand), nil
}

func (p *Player) clearHand() {
	p.hand = make(deck.Hand, 0)
}
