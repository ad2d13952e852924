package klaverjas

import (
	"klaverjas-server/pkg/deck"
)

// RosterEntry describes a seat at the table
type RosterEntry struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	ID      int64  `json:"id"`
	Team    string `json:"team"`
	IsHuman bool   `json:"isHuman"`
}

// MoveState is a card played into a trick
type MoveState struct {
	PlayerID int64      `json:"playerId"`
	Card     *deck.Card `json:"card"`
}

// TrickState is the public view of a trick
type TrickState struct {
	ID      int          `json:"id"`
	LedSuit deck.Suit    `json:"ledSuit"`
	Moves   []*MoveState `json:"moves"`
}

// GameStatePlayer is the state of an individual player
// This is safe for all players to see
type GameStatePlayer struct {
	RosterEntry
	CardsInHand int `json:"cardsInHand"`
}

// GameState is the overall game state
// This is safe for all players to see
type GameState struct {
	GameID         string             `json:"gameId"`
	Round          int                `json:"round"`
	Players        []*GameStatePlayer `json:"players"`
	PlayingOrder   []int64            `json:"playingOrder"`
	TrumpSuit      deck.Suit          `json:"trumpSuit"`
	TrumpChooserID int64              `json:"trumpChooserId"`
	CurrentTrick   *TrickState        `json:"currentTrick"`
	IsRoundOver    bool               `json:"isRoundOver"`
	IsDecided      bool               `json:"isDecided"`
	WinningTeam    string             `json:"winningTeam,omitempty"`
}

// Roster returns the seats in seating order
func (g *CardGame) Roster() []*RosterEntry {
	entries := make([]*RosterEntry, len(g.players))
	for i, p := range g.players {
		entries[i] = &RosterEntry{
			Index:   i,
			Name:    p.Name,
			ID:      p.ID,
			Team:    p.Team,
			IsHuman: p.IsHuman(),
		}
	}

	return entries
}

// State returns the trick as it can be shown to every player
func (t *Trick) State() *TrickState {
	moves := make([]*MoveState, len(t.moves))
	for i, m := range t.moves {
		moves[i] = &MoveState{
			PlayerID: m.Player.ID,
			Card:     m.Card,
		}
	}

	return &TrickState{
		ID:      t.id,
		LedSuit: t.ledSuit,
		Moves:   moves,
	}
}

// GetGameState returns the public state of the game
func (g *CardGame) GetGameState() *GameState {
	players := make([]*GameStatePlayer, len(g.players))
	for i, entry := range g.Roster() {
		players[i] = &GameStatePlayer{
			RosterEntry: *entry,
			CardsInHand: g.players[i].CardsLeft(),
		}
	}

	var chooserID int64
	if g.trumpChooser != nil {
		chooserID = g.trumpChooser.ID
	}

	var trick *TrickState
	if g.trick != nil {
		trick = g.trick.State()
	}

	return &GameState{
		GameID:         g.ID,
		Round:          g.roundNo,
		Players:        players,
		PlayingOrder:   g.GetOrder(),
		TrumpSuit:      g.trump,
		TrumpChooserID: chooserID,
		CurrentTrick:   trick,
		IsRoundOver:    g.IsRoundOver(),
		IsDecided:      g.decided,
		WinningTeam:    g.winningTeam,
	}
}
