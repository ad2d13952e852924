package main

import (
	"sort"
	"strconv"
	"strings"

	"klaverjas-server/pkg/deck"
	"klaverjas-server/pkg/playable/klaverjas"
	"klaverjas-server/pkg/room"

	"github.com/pterm/pterm"
)

func printRoster(data *room.StartGameData) {
	rows := pterm.TableData{{"Seat", "Player", "Team"}}
	for _, p := range data.Players {
		player := p.Name
		if p.IsHuman {
			player = pterm.LightCyan(p.Name)
		}

		rows = append(rows, []string{strconv.Itoa(p.Index + 1), player, p.Team})
	}

	pterm.DefaultSection.Println("Klaverjas")
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func printHand(title string, cards []*deck.Card) {
	hand := deck.Hand(cards).Clone()
	sort.Sort(hand)
	names := make([]string, len(hand))
	for i, c := range hand {
		names[i] = c.String()
	}

	pterm.Info.Printfln("%s: %s", title, pterm.BgGreen.Sprint(" "+strings.Join(names, " ")+" "))
}

func printTrick(names map[int64]string, moves []*klaverjas.MoveState) {
	if len(moves) == 0 {
		return
	}

	rows := pterm.TableData{}
	for _, m := range moves {
		rows = append(rows, []string{names[m.PlayerID], m.Card.String()})
	}

	_ = pterm.DefaultTable.WithData(rows).Render()
}

func printScores(title string, scores map[string]int) {
	teams := make([]string, 0, len(scores))
	for team := range scores {
		teams = append(teams, team)
	}

	sort.Strings(teams)

	rows := pterm.TableData{{"Team", "Points"}}
	for _, team := range teams {
		rows = append(rows, []string{team, strconv.Itoa(scores[team])})
	}

	pterm.DefaultSection.Println(title)
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
