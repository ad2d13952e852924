package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"klaverjas-server/internal/config"
	"klaverjas-server/internal/rng"
	"klaverjas-server/pkg/deck"
	"klaverjas-server/pkg/playable"
	"klaverjas-server/pkg/room"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const responseTimeout = time.Second * 5

var name = flag.String("name", "", "your name at the table")
var auto = flag.Bool("auto", false, "play your cards automatically")
var seed = flag.Int64("seed", 0, "seed for the bots and the seating, 0 picks a random one")
var verbose = flag.Bool("v", false, "show the session logs")

func main() {
	flag.Parse()

	interactive := !*auto && term.IsTerminal(int(os.Stdin.Fd()))
	if err := run(interactive); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(interactive bool) error {
	opts, err := config.Instance().GameOptions()
	if err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
		pterm.EnableDebugMessages()
	} else {
		logger.SetOutput(io.Discard)
	}

	sessionOptions := room.Options{
		Game:           opts,
		RandomBotNames: config.Instance().Bots.RandomNames,
		Logger:         logger,
	}

	if *seed != 0 {
		sessionOptions.Rng = rng.NewSeeded(*seed)
	}

	client := room.NewClient(nil)
	session := room.NewSession(client, sessionOptions)
	session.StartShift()
	defer session.EndShift()

	t := &table{
		client:      client,
		interactive: interactive,
		names:       make(map[int64]string),
	}

	return t.play()
}

// table drives a session from the terminal
type table struct {
	client      *room.Client
	interactive bool
	seq         int

	human int64
	names map[int64]string
}

func (t *table) send(action string, fn func(msg *playable.PayloadIn)) {
	t.seq++
	msg := &playable.PayloadIn{
		Action:         action,
		AdditionalData: playable.AdditionalData{},
		Context:        strconv.Itoa(t.seq),
	}

	if fn != nil {
		fn(msg)
	}

	t.client.ReceivedMessage(msg)
}

func (t *table) next() (*playable.Response, error) {
	select {
	case msg := <-t.client.SendChan():
		res, ok := msg.(*playable.Response)
		if !ok {
			return nil, fmt.Errorf("unexpected message: %T", msg)
		}

		return res, nil
	case <-time.After(responseTimeout):
		return nil, errors.New("timed out waiting for the table")
	}
}

func (t *table) play() error {
	playerName := *name
	if playerName == "" && t.interactive {
		playerName, _ = pterm.DefaultInteractiveTextInput.WithDefaultText("Your name").WithDefaultValue("John Doe").Show()
		pterm.Println()
	}

	t.send("startGame", func(msg *playable.PayloadIn) {
		if playerName != "" {
			msg.AdditionalData["playerName"] = playerName
		}
	})

	for {
		res, err := t.next()
		if err != nil {
			return err
		}

		done, err := t.handle(res)
		if err != nil || done {
			return err
		}
	}
}

// handle reacts to a response, it returns true once the player leaves the table
func (t *table) handle(res *playable.Response) (bool, error) {
	switch data := res.Data.(type) {
	case *room.StartGameData:
		for _, p := range data.Players {
			t.names[p.ID] = p.Name
			if p.IsHuman {
				t.human = p.ID
			}
		}

		printRoster(data)
		t.send("dealFirstCards", nil)

	case *room.CardsData:
		if res.Key == "firstCards" {
			printHand("First cards", data.Cards)
			if data.TrumpChooserID != t.human {
				pterm.Info.Printfln("%s chooses trump", t.names[data.TrumpChooserID])
				return false, nil
			}

			suit := t.pickTrump(data.Cards)
			t.send("chooseTrump", func(msg *playable.PayloadIn) {
				msg.Subject = string(suit)
			})

			return false, nil
		}

		pterm.DefaultSection.Printfln("Trump is %s", data.TrumpSuit)
		printHand("Your hand", data.Cards)
		t.send("isReady", nil)

	case *room.AskMoveData:
		printTrick(t.names, data.Trick.Moves)
		card := t.pickCard(data)
		t.send("makeMove", func(msg *playable.PayloadIn) {
			msg.Cards = []*deck.Card{card}
		})

	case *room.InvalidMoveData:
		pterm.Warning.Printfln("%s cannot be played", data.Card)
		t.send("isReady", nil)

	case *room.HandPlayedData:
		printTrick(t.names, data.Trick.Moves)
		pterm.Success.Printfln("%s wins the trick with %s for %d points", t.names[data.WinningPlayerID], data.WinningCard, data.Points)
		if data.LastTrick {
			printScores("Scores", data.Scores)
		}

		t.send("isReady", nil)

	case *room.ScoresData:
		return t.handleScores(res.Key, data)

	case []*playable.LogMessage:
		if *verbose {
			for _, m := range data {
				pterm.Debug.Println(m.Message)
			}
		}

	default:
		if res.Key == "error" {
			return true, errors.New(res.Value)
		}
	}

	return false, nil
}

func (t *table) handleScores(key string, data *room.ScoresData) (bool, error) {
	switch key {
	case "roundOver":
		t.send("nextRound", nil)
	case "nextRound", "newMatch":
		t.send("dealFirstCards", nil)
	case "gameDecided":
		printScores("Final scores", data.Scores)
		pterm.DefaultBox.WithTitle("Match over").Printfln("%s wins the match", data.WinningTeam)

		if !t.interactive {
			return true, nil
		}

		again, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Play another match?").Show()
		if !again {
			return true, nil
		}

		t.send("newMatch", nil)
	}

	return false, nil
}

func (t *table) pickTrump(cards []*deck.Card) deck.Suit {
	if !t.interactive {
		return longestSuit(cards)
	}

	options := make([]string, 0, 4)
	for _, suit := range deck.Suits() {
		options = append(options, string(suit))
	}

	selected, err := pterm.DefaultInteractiveSelect.WithDefaultText("Choose trump").WithOptions(options).Show()
	if err != nil {
		return longestSuit(cards)
	}

	suit, err := deck.ParseSuit(selected)
	if err != nil {
		return longestSuit(cards)
	}

	return suit
}

func (t *table) pickCard(data *room.AskMoveData) *deck.Card {
	if !t.interactive || len(data.ValidCards) == 1 {
		pterm.Info.Printfln("you play %s", data.ValidCards[0])
		return data.ValidCards[0]
	}

	byName := make(map[string]*deck.Card)
	options := make([]string, len(data.ValidCards))
	for i, c := range data.ValidCards {
		options[i] = c.String()
		byName[options[i]] = c
	}

	selected, err := pterm.DefaultInteractiveSelect.WithDefaultText(fmt.Sprintf("Your move (trump is %s)", data.TrumpSuit)).WithOptions(options).Show()
	if err != nil {
		return data.ValidCards[0]
	}

	return byName[selected]
}

func longestSuit(cards []*deck.Card) deck.Suit {
	counts := make(map[deck.Suit]int)
	best := deck.Hearts
	for _, c := range cards {
		counts[c.Suit]++
		if counts[c.Suit] > counts[best] {
			best = c.Suit
		}
	}

	return best
}
