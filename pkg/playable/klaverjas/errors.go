package klaverjas

import (
	"errors"
	"fmt"
)

// ErrInvalidTrump happens when trump is chosen out of order or with an unknown suit
var ErrInvalidTrump = errors.New("trump cannot be chosen")

// ErrDealOrder happens when cards are dealt out of order
var ErrDealOrder = errors.New("cards dealt out of order")

// ErrMatchAlreadyDecided is returned by every round or trick operation after the match is won
var ErrMatchAlreadyDecided = errors.New("the match is already decided")

// ErrTrickComplete happens when a move is added to a trick that already has a card from every player
var ErrTrickComplete = errors.New("the trick is complete")

// ErrTrickInProgress happens when a new trick is requested before the current one is complete
var ErrTrickInProgress = errors.New("the current trick is not complete")

// ErrTrickResolved happens when the winner of a trick is resolved twice
var ErrTrickResolved = errors.New("the trick was already resolved")

// ErrNoTrick happens when a card is played and no trick was started
var ErrNoTrick = errors.New("no trick in progress")

// ErrDuplicatePlayer happens when a player tries to play twice in the same trick
var ErrDuplicatePlayer = errors.New("player already played in this trick")

// ErrIncompleteTrick happens when a trick is resolved before every player played
var ErrIncompleteTrick = errors.New("the trick is not complete")

// ErrNoDecisionYet happens when the winner is requested before a team reached the threshold
var ErrNoDecisionYet = errors.New("no team has reached the winning score")

// ErrCardNotInHand happens when the player tries to play a card they don't have
var ErrCardNotInHand = errors.New("card is not in player's hand")

// ErrNotAutomated happens when a human player is asked to compute a move
var ErrNotAutomated = errors.New("player is not automated")

// ErrEmptyHand happens when a player is asked for a move without cards left
var ErrEmptyHand = errors.New("player has no cards left")

// ErrIsNotPlayersTurn is returned when it's not the player's turn
var ErrIsNotPlayersTurn = errors.New("not player's turn")

// ErrRoundOver happens when a trick is requested after every card of the round was played
var ErrRoundOver = errors.New("the round is over")

// ErrUnknownTeam happens when points are credited to a team outside of the match
var ErrUnknownTeam = errors.New("unknown team")

// ErrInvalidTeams happens when the roster is not two teams of two players
var ErrInvalidTeams = errors.New("players must form two teams of two")

// ErrNegativePoints happens when negative points are credited
var ErrNegativePoints = errors.New("points cannot be negative")

// ErrPlayerNotFound happens when no player matches the ID
var ErrPlayerNotFound = errors.New("player not found with that ID")

// ErrInvalidLeaderSeat happens when the forced leader is not one of the seats
var ErrInvalidLeaderSeat = errors.New("leader seat must be -1 or a seat index from 0 to 3")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError int

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d players, got %d", PlayerCount, int(p))
}
