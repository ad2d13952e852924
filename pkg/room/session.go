package room

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"klaverjas-server/internal/rng"
	"klaverjas-server/pkg/deck"
	"klaverjas-server/pkg/playable"
	"klaverjas-server/pkg/playable/klaverjas"
	"klaverjas-server/pkg/record"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const recordTimeout = time.Second * 5

// Options configure every session
type Options struct {
	Game           klaverjas.Options
	RandomBotNames bool
	Recorder       record.Recorder
	Logger         logrus.FieldLogger
	Rng            rng.Generator
}

// Session runs the match of a single connection
// Commands are handled one at a time in the run loop
type Session struct {
	ID      string
	client  *Client
	options Options
	logger  logrus.FieldLogger

	game        *klaverjas.CardGame
	scores      *klaverjas.ScoreKeeper
	human       *klaverjas.Player
	pending     *pendingMove
	logMessages []*playable.LogMessage

	execInRunLoop chan func()
	close         chan bool
	closeOnce     sync.Once
}

// NewSession creates a new session for the client
// This is called from a blocking state, so it needs to return quickly
func NewSession(client *Client, opts Options) *Session {
	if opts.Recorder == nil {
		opts.Recorder = record.NopRecorder{}
	}

	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	if opts.Rng == nil {
		opts.Rng = rng.Crypto{}
	}

	id := uuid.New().String()
	s := &Session{
		ID:            id,
		client:        client,
		options:       opts,
		logger:        opts.Logger.WithFields(logrus.Fields{"session": id, "client": client.String()}),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}

	client.session = s
	return s
}

// StartShift starts the run loop
func (s *Session) StartShift() {
	go s.runLoop()
}

func (s *Session) runLoop() {
	s.logger.Debug("creating session run loop")
	for {
		select {
		case fn := <-s.execInRunLoop:
			fn()
		case <-s.close:
			s.logger.Debug("terminating session run loop")
			return
		}
	}
}

// EndShift is called when the session is no longer needed
// Any move the session was waiting for is dropped with it
func (s *Session) EndShift() {
	s.closeOnce.Do(func() {
		close(s.close)
	})
}

// ReceivedMessage queues the command for the run loop
func (s *Session) ReceivedMessage(msg *playable.PayloadIn) {
	select {
	case <-s.close:
		s.send(playable.ErrorResponse(msg.Context, ErrSessionClosed))
		return
	default:
	}

	select {
	case s.execInRunLoop <- func() { s.handle(msg) }:
	case <-s.close:
		s.send(playable.ErrorResponse(msg.Context, ErrSessionClosed))
	}
}

// NOTE: must only be called from the run loop
func (s *Session) handle(msg *playable.PayloadIn) {
	var err error
	switch msg.Action {
	case "startGame":
		err = s.startGame(msg)
	case "nextRound":
		err = s.nextRound(msg)
	case "newMatch":
		err = s.newMatch(msg)
	case "dealFirstCards":
		err = s.dealFirstCards(msg)
	case "chooseTrump":
		err = s.chooseTrump(msg)
	case "makeMove":
		err = s.makeMove(msg)
	case "isReady":
		err = s.isReady(msg)
	case "abandon":
		err = s.abandon(msg)
	case "state":
		err = s.state(msg)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownAction, msg.Action)
	}

	if err != nil {
		s.logger.WithError(err).WithField("action", msg.Action).Error("could not perform action")
		s.send(playable.ErrorResponse(msg.Context, err))
	}
}

func (s *Session) send(res *playable.Response) {
	if !s.client.Send(res) {
		s.logger.WithField("key", res.Key).Warn("client send buffer is full, dropping message")
	}
}

// player returns the player named by additionalData.playerId, or the human player
// Automated players cannot be addressed: their hands and their trump choice belong to the server
func (s *Session) player(msg *playable.PayloadIn) (*klaverjas.Player, error) {
	id, ok := msg.AdditionalData.GetInt64("playerId")
	if !ok {
		return s.human, nil
	}

	p, err := s.game.GetPlayerByID(id)
	if err != nil {
		return nil, err
	}

	if !p.IsHuman() {
		return nil, ErrNotHumanSeat
	}

	return p, nil
}

func (s *Session) startGame(msg *playable.PayloadIn) error {
	name := stringOr(msg.AdditionalData, "playerName", defaultPlayerName)
	team := stringOr(msg.AdditionalData, "playerTeam", defaultPlayerTeam)
	opponents := stringOr(msg.AdditionalData, "opponentTeam", defaultOpponentTeam)

	players := newRoster(name, team, opponents, s.botNames(), s.options.Rng)
	game, err := klaverjas.NewCardGame(s.logger, players, s.options.Game, s.options.Rng)
	if err != nil {
		return err
	}

	scores, err := klaverjas.NewScoreKeeper(players, s.options.Game.WinThreshold, s.options.Game.Rules.Points)
	if err != nil {
		return err
	}

	if err := game.SetPlayingOrder(); err != nil {
		return err
	}

	s.game = game
	s.scores = scores
	s.human = players[0]
	s.pending = nil
	s.logMessages = nil

	s.send(&playable.Response{
		Key: "startGame",
		Data: &StartGameData{
			Players:      game.Roster(),
			PlayingOrder: game.GetOrder(),
			GameID:       game.ID,
		},
		Context: msg.Context,
	})

	s.log(msg.Context, playable.SimpleLogMessage(0, "%s and %s against %s and %s", players[0].Name, players[2].Name, players[1].Name, players[3].Name))
	return nil
}

func (s *Session) nextRound(msg *playable.PayloadIn) error {
	if s.game == nil {
		return ErrNoGame
	}

	if err := s.game.ClearGame(); err != nil {
		return err
	}

	s.pending = nil
	s.send(&playable.Response{
		Key:     "nextRound",
		Value:   "OK",
		Data:    &ScoresData{Scores: s.scores.GetScores()},
		Context: msg.Context,
	})

	return nil
}

func (s *Session) newMatch(msg *playable.PayloadIn) error {
	if s.game == nil {
		return ErrNoGame
	}

	s.game.Reset()
	s.scores.ClearTeamScores()
	s.pending = nil

	if err := s.game.SetPlayingOrder(); err != nil {
		return err
	}

	s.send(&playable.Response{
		Key:     "newMatch",
		Value:   "OK",
		Data:    &ScoresData{Scores: s.scores.GetScores()},
		Context: msg.Context,
	})

	return nil
}

func (s *Session) dealFirstCards(msg *playable.PayloadIn) error {
	if s.game == nil {
		return ErrNoGame
	}

	p, err := s.player(msg)
	if err != nil {
		return err
	}

	if err := s.game.DealFirstCards(); err != nil {
		return err
	}

	chooser := s.game.TrumpChooser()
	s.send(&playable.Response{
		Key: "firstCards",
		Data: &CardsData{
			Cards:          p.GetCards(),
			TrumpChooserID: chooser.ID,
		},
		Context: msg.Context,
	})

	if chooser.IsHuman() {
		return nil
	}

	suit, err := chooser.ChooseTrump()
	if err != nil {
		return err
	}

	return s.chooseTrumpAndDeal(msg.Context, p, suit)
}

func (s *Session) chooseTrump(msg *playable.PayloadIn) error {
	if s.game == nil {
		return ErrNoGame
	}

	p, err := s.player(msg)
	if err != nil {
		return err
	}

	suit, err := deck.ParseSuit(msg.Subject)
	if err != nil {
		return err
	}

	return s.chooseTrumpAndDeal(msg.Context, p, suit)
}

func (s *Session) chooseTrumpAndDeal(ctx string, p *klaverjas.Player, suit deck.Suit) error {
	if err := s.game.ChooseTrump(suit); err != nil {
		return err
	}

	if err := s.game.DealCards(); err != nil {
		return err
	}

	chooser := s.game.TrumpChooser()
	s.send(&playable.Response{
		Key: "allCards",
		Data: &CardsData{
			Cards:          p.GetCards(),
			TrumpChooserID: chooser.ID,
			TrumpSuit:      suit,
		},
		Context: ctx,
	})

	s.log(ctx, playable.SimpleLogMessage(chooser.ID, "%s chose %s as trump", chooser.Name, suit))
	return nil
}

func (s *Session) isReady(msg *playable.PayloadIn) error {
	if s.game == nil {
		return ErrNoGame
	}

	if s.scores.IsGameDecided() {
		return s.decide(msg.Context)
	}

	// the trick is waiting on the human player, ask again instead of starting over
	if s.pending != nil {
		s.sendAskMove(msg.Context)
		return nil
	}

	if s.game.IsRoundOver() {
		s.send(&playable.Response{
			Key:     "roundOver",
			Data:    &ScoresData{Scores: s.scores.GetScores()},
			Context: msg.Context,
		})

		return nil
	}

	if _, err := s.game.NewTrick(); err != nil {
		return err
	}

	return s.askPlayers(msg.Context)
}

// askPlayers plays the automated players of the current trick until the trick is
// complete or a human player has to move
func (s *Session) askPlayers(ctx string) error {
	trick := s.game.CurrentTrick()
	trump := s.game.TrumpSuit()

	for !trick.IsComplete() {
		p := s.game.GetNextPlayer(trick.Step())
		if p.IsHuman() {
			s.pending = &pendingMove{
				trickID:  trick.ID(),
				step:     trick.Step(),
				playerID: p.ID,
			}

			s.sendAskMove(ctx)
			return nil
		}

		card, err := p.GetNextMove(trick, trump)
		if err != nil {
			return err
		}

		ok, err := s.game.PlayMove(p, card)
		if err != nil {
			return err
		}

		if !ok {
			return fmt.Errorf("%s picked an illegal card: %s", p.Name, card)
		}

		s.log(ctx, playable.CardLogMessage(p.ID, []*deck.Card{card}, "%s played %s", p.Name, card))
	}

	return s.finishTrick(ctx, trick)
}

func (s *Session) finishTrick(ctx string, trick *klaverjas.Trick) error {
	trump := s.game.TrumpSuit()
	winner, lastTrick, err := s.game.ResolveTrick()
	if err != nil {
		return err
	}

	points, err := s.scores.RegisterWin(winner.Player, trick, trump, lastTrick)
	if err != nil {
		return err
	}

	s.send(&playable.Response{
		Key: "handPlayed",
		Data: &HandPlayedData{
			Trick:           trick.State(),
			WinningCard:     winner.Card,
			WinningPlayerID: winner.Player.ID,
			Points:          points,
			LastTrick:       lastTrick,
			Scores:          s.scores.GetScores(),
		},
		Context: ctx,
	})

	s.log(ctx, playable.CardLogMessage(winner.Player.ID, []*deck.Card{winner.Card}, "%s won the trick with %s for %d points", winner.Player.Name, winner.Card, points))
	return nil
}

func (s *Session) sendAskMove(ctx string) {
	trick := s.game.CurrentTrick()
	trump := s.game.TrumpSuit()
	p, err := s.game.GetPlayerByID(s.pending.playerID)
	if err != nil {
		// pending moves are only created for seated players
		panic(err)
	}

	s.send(&playable.Response{
		Key: "askMove",
		Data: &AskMoveData{
			PlayerID:   p.ID,
			TrickID:    s.pending.trickID,
			Step:       s.pending.step,
			Trick:      trick.State(),
			TrumpSuit:  trump,
			Cards:      p.GetCards(),
			ValidCards: p.ValidMoves(trick, trump),
		},
		Context: ctx,
	})
}

func (s *Session) makeMove(msg *playable.PayloadIn) error {
	if s.game == nil {
		return ErrNoGame
	}

	if s.pending == nil {
		return ErrNoPendingMove
	}

	p, err := s.player(msg)
	if err != nil {
		return err
	}

	if p.ID != s.pending.playerID {
		return ErrIsNotPlayersTurn
	}

	trick := s.game.CurrentTrick()
	if !s.pending.matches(trick) {
		return ErrStaleMove
	}

	if id, ok := msg.AdditionalData.GetInt("trickId"); ok && id != s.pending.trickID {
		return ErrStaleMove
	}

	if step, ok := msg.AdditionalData.GetInt("step"); ok && step != s.pending.step {
		return ErrStaleMove
	}

	if len(msg.Cards) != 1 || !msg.Cards[0].IsValid() {
		return ErrInvalidCard
	}

	card := msg.Cards[0]
	ok, err := s.game.PlayMove(p, card)
	if err != nil {
		return err
	}

	if !ok {
		s.send(&playable.Response{
			Key:     "invalidMove",
			Data:    &InvalidMoveData{PlayerID: p.ID, Card: card},
			Context: msg.Context,
		})

		return nil
	}

	s.pending = nil
	s.log(msg.Context, playable.CardLogMessage(p.ID, []*deck.Card{card}, "%s played %s", p.Name, card))
	return s.askPlayers(msg.Context)
}

// decide ends the match in favor of the leading team
// The match is recorded once, repeated calls only report the outcome
func (s *Session) decide(ctx string) error {
	team, err := s.scores.GetWinningTeam()
	if err != nil {
		return err
	}

	if !s.game.IsDecided() {
		if err := s.game.ProcessWin(team); err != nil {
			return err
		}

		s.pending = nil
		s.recordMatch(team)
		s.log(ctx, playable.SimpleLogMessage(0, "%s won the match", team))
	}

	s.send(&playable.Response{
		Key: "gameDecided",
		Data: &ScoresData{
			Scores:      s.scores.GetScores(),
			WinningTeam: team,
		},
		Context: ctx,
	})

	return nil
}

func (s *Session) recordMatch(team string) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	m := &record.Match{
		GameID:      s.game.ID,
		Teams:       s.scores.Teams(),
		Scores:      s.scores.GetScores(),
		Players:     s.game.Roster(),
		WinningTeam: team,
		Rounds:      s.game.RoundNo(),
	}

	if err := s.options.Recorder.RecordMatch(ctx, m); err != nil {
		s.logger.WithError(err).Error("could not record match")
	}
}

func (s *Session) abandon(msg *playable.PayloadIn) error {
	s.pending = nil
	if s.game != nil {
		if err := s.game.ClearGame(); err != nil && !errors.Is(err, klaverjas.ErrMatchAlreadyDecided) {
			return err
		}
	}

	s.send(playable.Ack("abandon", msg.Context))
	return nil
}

func (s *Session) state(msg *playable.PayloadIn) error {
	if s.game == nil {
		return ErrNoGame
	}

	s.send(&playable.Response{
		Key: "state",
		Data: &StateData{
			Game:   s.game.GetGameState(),
			Cards:  s.human.GetCards(),
			Scores: s.scores.GetScores(),
			Log:    append([]*playable.LogMessage{}, s.logMessages...),
		},
		Context: msg.Context,
	})

	return nil
}

func stringOr(data playable.AdditionalData, key, defaultValue string) string {
	if val, ok := data.GetString(key); ok && val != "" {
		return val
	}

	return defaultValue
}
