package klaverjas

import (
	"testing"

	"klaverjas-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestScoreKeeper_DecidesMatch(t *testing.T) {
	a := assert.New(t)

	players := testPlayers(1)
	points := PointTable{
		Plain: map[int]int{deck.Ace: 4, deck.King: 3},
	}

	scores, err := NewScoreKeeper(players, 16, points)
	a.NoError(err)
	a.Equal(16, scores.Threshold())

	a.NoError(scores.AddPoints("Suriname", 10))
	a.False(scores.IsGameDecided())

	_, err = scores.GetWinningTeam()
	a.Equal(ErrNoDecisionYet, err)

	trick := NewTrick(1, 4, DefaultRules())
	for i, c := range []string{"14h", "7h", "13h", "8h"} {
		a.NoError(trick.AddMove(&Move{Player: players[i], Card: card(c)}))
	}

	winner, err := trick.DecideWinner(deck.Spades)
	a.NoError(err)
	a.Equal(players[0], winner.Player)

	won, err := scores.RegisterWin(winner.Player, trick, deck.Spades, false)
	a.NoError(err)
	a.Equal(7, won)
	a.Equal(map[string]int{"Suriname": 17, "Nederland": 0}, scores.GetScores())
	a.True(scores.IsGameDecided())

	team, err := scores.GetWinningTeam()
	a.NoError(err)
	a.Equal("Suriname", team)

	g := setupGame(t, players, DefaultOptions())
	a.NoError(g.ProcessWin(team))
	a.True(g.IsDecided())
}

func TestScoreKeeper_RegisterWin(t *testing.T) {
	a := assert.New(t)

	players := testPlayers(1)
	scores, err := NewScoreKeeper(players, 1500, DefaultPointTable())
	a.NoError(err)

	trick := NewTrick(8, 4, DefaultRules())
	a.NoError(trick.AddMove(&Move{Player: players[0], Card: card("11s")}))

	_, err = scores.RegisterWin(players[0], trick, deck.Spades, true)
	a.Equal(ErrIncompleteTrick, err)

	for i, c := range []string{"9s", "14s", "10d"} {
		a.NoError(trick.AddMove(&Move{Player: players[i+1], Card: card(c)}))
	}

	// 20 + 14 + 11 + 10, plus the last trick
	won, err := scores.RegisterWin(players[0], trick, deck.Spades, true)
	a.NoError(err)
	a.Equal(65, won)

	_, err = scores.RegisterWin(NewHumanPlayer(9, "Stranger", "Belgie"), trick, deck.Spades, false)
	a.Equal(ErrUnknownTeam, err)
	a.Equal(map[string]int{"Suriname": 65, "Nederland": 0}, scores.GetScores())
}

func TestScoreKeeper_AddPoints(t *testing.T) {
	a := assert.New(t)

	scores, err := NewScoreKeeper(testPlayers(1), 100, DefaultPointTable())
	a.NoError(err)

	a.Equal(ErrNegativePoints, scores.AddPoints("Suriname", -1))
	a.Equal(ErrUnknownTeam, scores.AddPoints("Belgie", 1))

	a.NoError(scores.AddPoints("Nederland", 0))
	a.NoError(scores.AddPoints("Nederland", 100))

	team, err := scores.GetWinningTeam()
	a.NoError(err)
	a.Equal("Nederland", team)

	// the copy does not leak
	s := scores.GetScores()
	s["Nederland"] = 0
	a.Equal(100, scores.GetScores()["Nederland"])

	scores.ClearTeamScores()
	a.Equal(map[string]int{"Suriname": 0, "Nederland": 0}, scores.GetScores())
	a.False(scores.IsGameDecided())
	a.Equal([]string{"Suriname", "Nederland"}, scores.Teams())
}

func TestScoreKeeper_GetWinningTeam_Tie(t *testing.T) {
	a := assert.New(t)

	scores, err := NewScoreKeeper(testPlayers(1), 100, DefaultPointTable())
	a.NoError(err)

	a.NoError(scores.AddPoints("Nederland", 120))
	a.NoError(scores.AddPoints("Suriname", 120))

	team, err := scores.GetWinningTeam()
	a.NoError(err)
	a.Equal("Suriname", team, "roster order breaks a tie")

	a.NoError(scores.AddPoints("Nederland", 1))
	team, _ = scores.GetWinningTeam()
	a.Equal("Nederland", team)
}

func TestNewScoreKeeper(t *testing.T) {
	players := testPlayers(1)
	players[3].Team = "Suriname"

	scores, err := NewScoreKeeper(players, 100, DefaultPointTable())
	assert.Nil(t, scores)
	assert.Equal(t, ErrInvalidTeams, err)
}
