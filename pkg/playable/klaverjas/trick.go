package klaverjas

import (
	"klaverjas-server/pkg/deck"
)

// Move is a card played by a player
type Move struct {
	Player *Player
	Card   *deck.Card
}

// Trick is one card from every player, starting with the leader
// A trick is never reused: once complete, the next trick is a new value
type Trick struct {
	id         int
	numPlayers int
	rules      Rules
	moves      []*Move
	ledSuit    deck.Suit
}

// NewTrick returns an empty trick
func NewTrick(id, numPlayers int, rules Rules) *Trick {
	return &Trick{
		id:         id,
		numPlayers: numPlayers,
		rules:      rules,
		moves:      make([]*Move, 0, numPlayers),
	}
}

// ID returns the number of the trick within the round, starting at 1
func (t *Trick) ID() int {
	return t.id
}

// Step returns how many moves were made
func (t *Trick) Step() int {
	return len(t.moves)
}

// LedSuit returns the suit of the first card, or deck.NoSuit for an empty trick
func (t *Trick) LedSuit() deck.Suit {
	return t.ledSuit
}

// Moves returns a copy of the moves in the order they were played
func (t *Trick) Moves() []*Move {
	return append([]*Move{}, t.moves...)
}

// IsComplete returns true when every player made a move
func (t *Trick) IsComplete() bool {
	return len(t.moves) == t.numPlayers
}

func (t *Trick) hasPlayed(p *Player) bool {
	for _, m := range t.moves {
		if m.Player == p {
			return true
		}
	}

	return false
}

// AddMove appends a move that was already validated
func (t *Trick) AddMove(m *Move) error {
	if t.IsComplete() {
		return ErrTrickComplete
	}

	if t.hasPlayed(m.Player) {
		return ErrDuplicatePlayer
	}

	if len(t.moves) == 0 {
		t.ledSuit = m.Card.Suit
	}

	t.moves = append(t.moves, m)
	return nil
}

// ValidateMove returns true if the card may be played
// A player holding the led suit must follow it. Otherwise the trump policy decides.
func (t *Trick) ValidateMove(m *Move, trump deck.Suit) bool {
	if m == nil || m.Player == nil || m.Card == nil {
		return false
	}

	if t.IsComplete() || t.hasPlayed(m.Player) || !m.Player.HasCard(m.Card) {
		return false
	}

	if len(t.moves) == 0 {
		return true
	}

	p, card := m.Player, m.Card
	if p.HasSuit(t.ledSuit) {
		if card.Suit != t.ledSuit {
			return false
		}
	} else if t.rules.TrumpPolicy != TrumpPolicyFree && trump != deck.NoSuit && p.HasSuit(trump) && card.Suit != trump {
		return false
	}

	if t.rules.TrumpPolicy == TrumpPolicyMustOvertrump && trump != deck.NoSuit && card.Suit == trump {
		best := t.bestTrump(trump)
		if best != nil && t.rules.TrumpOrder.Compare(card.Rank, best.Rank) < 0 {
			for _, c := range p.hand.OfSuit(trump) {
				if t.rules.TrumpOrder.Compare(c.Rank, best.Rank) > 0 {
					return false
				}
			}
		}
	}

	return true
}

func (t *Trick) bestTrump(trump deck.Suit) *deck.Card {
	var best *deck.Card
	for _, m := range t.moves {
		if m.Card.Suit != trump {
			continue
		}

		if best == nil || t.rules.TrumpOrder.Compare(m.Card.Rank, best.Rank) > 0 {
			best = m.Card
		}
	}

	return best
}

// DecideWinner returns the winning move: the highest trump if any trump was played,
// otherwise the highest card of the led suit
func (t *Trick) DecideWinner(trump deck.Suit) (*Move, error) {
	if !t.IsComplete() {
		return nil, ErrIncompleteTrick
	}

	winner := t.moves[0]
	for _, m := range t.moves[1:] {
		if t.rules.Beats(m.Card, winner.Card, t.ledSuit, trump) {
			winner = m
		}
	}

	return winner, nil
}
