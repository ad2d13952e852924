package room

import (
	"klaverjas-server/pkg/deck"
	"klaverjas-server/pkg/playable"
	"klaverjas-server/pkg/playable/klaverjas"
)

// StartGameData is sent once the roster is seated
type StartGameData struct {
	Players      []*klaverjas.RosterEntry `json:"players"`
	PlayingOrder []int64                  `json:"playingOrder"`
	GameID       string                   `json:"gameId"`
}

// CardsData is a player's hand after a deal
type CardsData struct {
	Cards          []*deck.Card `json:"cards"`
	TrumpChooserID int64        `json:"trumpChooserId"`
	TrumpSuit      deck.Suit    `json:"trumpSuit,omitempty"`
}

// AskMoveData asks the human player for a card
type AskMoveData struct {
	PlayerID   int64                 `json:"playerId"`
	TrickID    int                   `json:"trickId"`
	Step       int                   `json:"step"`
	Trick      *klaverjas.TrickState `json:"trick"`
	TrumpSuit  deck.Suit             `json:"trumpSuit"`
	Cards      []*deck.Card          `json:"cards"`
	ValidCards []*deck.Card          `json:"validCards"`
}

// InvalidMoveData tells the player the card cannot be played
type InvalidMoveData struct {
	PlayerID int64      `json:"playerId"`
	Card     *deck.Card `json:"card"`
}

// HandPlayedData is the outcome of a complete trick
type HandPlayedData struct {
	Trick           *klaverjas.TrickState `json:"trick"`
	WinningCard     *deck.Card            `json:"winningCard"`
	WinningPlayerID int64                 `json:"winningPlayerId"`
	Points          int                   `json:"points"`
	LastTrick       bool                  `json:"lastTrick"`
	Scores          map[string]int        `json:"scores"`
}

// ScoresData carries the scores and, once decided, the winner
type ScoresData struct {
	Scores      map[string]int `json:"scores"`
	WinningTeam string         `json:"winningTeam,omitempty"`
}

// StateData is the full view of the session for the human player
type StateData struct {
	Game   *klaverjas.GameState   `json:"game"`
	Cards  []*deck.Card           `json:"cards"`
	Scores map[string]int         `json:"scores"`
	Log    []*playable.LogMessage `json:"log"`
}
