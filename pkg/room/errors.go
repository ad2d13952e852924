package room

import (
	"errors"

	"klaverjas-server/pkg/playable/klaverjas"
)

// ErrNoGame is returned when a command needs a match and startGame was never sent
var ErrNoGame = errors.New("no game in progress")

// ErrNoPendingMove is returned when a move arrives and no human player was asked for one
var ErrNoPendingMove = errors.New("no move was requested")

// ErrStaleMove is returned when a move refers to a trick or step that is no longer current
var ErrStaleMove = errors.New("move does not match the current trick")

// ErrIsNotPlayersTurn is returned when the move comes from a player who was not asked
var ErrIsNotPlayersTurn = klaverjas.ErrIsNotPlayersTurn

// ErrNotHumanSeat is returned when a command names an automated player, their hands stay hidden
var ErrNotHumanSeat = errors.New("only the human player's seat can be addressed")

// ErrSessionClosed is returned for commands sent after the session ended
var ErrSessionClosed = errors.New("session is closed")

// ErrUnknownAction is returned for an action the session does not handle
var ErrUnknownAction = errors.New("unknown action")

// ErrInvalidCard is returned when a move carries no card or a card outside of the deck
var ErrInvalidCard = errors.New("move must carry exactly one valid card")
