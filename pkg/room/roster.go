package room

import (
	"klaverjas-server/internal/rng"
	"klaverjas-server/internal/util"
	"klaverjas-server/pkg/playable/klaverjas"
)

const (
	defaultPlayerName   = "John Doe"
	defaultPlayerTeam   = "Team Suriname"
	defaultOpponentTeam = "Team Nederland"
)

// partner first, then the two opponents
var botNames = []string{"Bob Marley", "Tupac Shakur", "Jimi Hendrix"}

func (s *Session) botNames() []string {
	if !s.options.RandomBotNames {
		return botNames
	}

	names := make([]string, len(botNames))
	for i := range names {
		names[i] = util.GetRandomName()
	}

	return names
}

// newRoster seats the human, an opponent, the human's partner and the other opponent
func newRoster(name, team, opponents string, names []string, gen rng.Generator) []*klaverjas.Player {
	human := klaverjas.NewHumanPlayer(1, name, team)
	partner := klaverjas.NewAutomatedPlayer(2, names[0], team, gen)
	left := klaverjas.NewAutomatedPlayer(3, names[1], opponents, gen)
	right := klaverjas.NewAutomatedPlayer(4, names[2], opponents, gen)

	return []*klaverjas.Player{human, left, partner, right}
}
