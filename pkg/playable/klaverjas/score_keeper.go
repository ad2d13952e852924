package klaverjas

import "klaverjas-server/pkg/deck"

// ScoreKeeper tracks team scores across the rounds of a match
type ScoreKeeper struct {
	teams     []string
	scores    map[string]int
	threshold int
	points    PointTable
}

// NewScoreKeeper returns a score keeper for the teams of the players
func NewScoreKeeper(players []*Player, threshold int, points PointTable) (*ScoreKeeper, error) {
	teams, err := teamsOf(players)
	if err != nil {
		return nil, err
	}

	s := &ScoreKeeper{
		teams:     teams,
		threshold: threshold,
		points:    points,
	}

	s.ClearTeamScores()
	return s, nil
}

// Teams returns the team names in roster order
func (s *ScoreKeeper) Teams() []string {
	return append([]string{}, s.teams...)
}

// Threshold returns the score needed to win
func (s *ScoreKeeper) Threshold() int {
	return s.threshold
}

// RegisterWin credits the player's team with the value of the trick
func (s *ScoreKeeper) RegisterWin(p *Player, t *Trick, trump deck.Suit, lastTrick bool) (int, error) {
	if !t.IsComplete() {
		return 0, ErrIncompleteTrick
	}

	if _, ok := s.scores[p.Team]; !ok {
		return 0, ErrUnknownTeam
	}

	points := s.points.TrickValue(t, trump, lastTrick)
	s.scores[p.Team] += points
	return points, nil
}

// AddPoints credits points to the team
func (s *ScoreKeeper) AddPoints(team string, points int) error {
	if points < 0 {
		return ErrNegativePoints
	}

	if _, ok := s.scores[team]; !ok {
		return ErrUnknownTeam
	}

	s.scores[team] += points
	return nil
}

// GetScores returns a copy of the scores
func (s *ScoreKeeper) GetScores() map[string]int {
	scores := make(map[string]int, len(s.scores))
	for team, score := range s.scores {
		scores[team] = score
	}

	return scores
}

// IsGameDecided returns true once a team reached the threshold
func (s *ScoreKeeper) IsGameDecided() bool {
	for _, score := range s.scores {
		if score >= s.threshold {
			return true
		}
	}

	return false
}

// GetWinningTeam returns the highest team at or above the threshold
// If both teams have the same score, the first team in roster order wins
func (s *ScoreKeeper) GetWinningTeam() (string, error) {
	if !s.IsGameDecided() {
		return "", ErrNoDecisionYet
	}

	winner := s.teams[0]
	for _, team := range s.teams[1:] {
		if s.scores[team] > s.scores[winner] {
			winner = team
		}
	}

	return winner, nil
}

// ClearTeamScores sets every team back to zero
// Only used for a brand-new match, never between rounds
func (s *ScoreKeeper) ClearTeamScores() {
	s.scores = make(map[string]int, len(s.teams))
	for _, team := range s.teams {
		s.scores[team] = 0
	}
}
