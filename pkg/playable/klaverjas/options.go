package klaverjas

import "fmt"

// PlayerCount is the fixed number of players: two teams of two
const PlayerCount = 4

// FairLeader means the leader of each round is picked at random
const FairLeader = -1

// Options are options for creating a new match
type Options struct {
	Rules Rules

	// WinThreshold is the score a team must reach to win the match
	WinThreshold int

	// LeaderSeat pins the seat that leads every round, or FairLeader
	LeaderSeat int
}

// Validate checks the rules and the leader seat
func (o Options) Validate() error {
	if o.LeaderSeat < FairLeader || o.LeaderSeat >= PlayerCount {
		return fmt.Errorf("%w: %d", ErrInvalidLeaderSeat, o.LeaderSeat)
	}

	return o.Rules.Validate()
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Rules:        DefaultRules(),
		WinThreshold: 1500,
		LeaderSeat:   0,
	}
}
