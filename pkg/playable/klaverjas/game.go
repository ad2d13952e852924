package klaverjas

import (
	"klaverjas-server/internal/rng"
	"klaverjas-server/pkg/deck"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// phase is where the current round stands
type phase int

const (
	phaseIdle phase = iota
	phaseFirstDeal
	phaseTrumpChosen
	phasePlaying
)

// CardGame runs the rounds of a match
// It owns the deck and the trick in progress. Scores live in a ScoreKeeper.
type CardGame struct {
	ID string

	options    Options
	players    []*Player
	idToPlayer map[int64]*Player
	teams      []string

	// startingIndex is the seat that leads the current trick
	startingIndex int
	trumpChooser  *Player
	trump         deck.Suit
	deck          *deck.Deck
	phase         phase

	trick         *Trick
	trickResolved bool
	tricksPlayed  int
	roundNo       int

	decided     bool
	winningTeam string

	logger logrus.FieldLogger
	rng    rng.Generator
}

// NewCardGame returns a new game for the players, in seating order
func NewCardGame(logger logrus.FieldLogger, players []*Player, opts Options, gen rng.Generator) (*CardGame, error) {
	if len(players) != PlayerCount {
		return nil, PlayerCountError(len(players))
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	teams, err := teamsOf(players)
	if err != nil {
		return nil, err
	}

	idToPlayer := make(map[int64]*Player)
	for _, p := range players {
		idToPlayer[p.ID] = p
	}

	if gen == nil {
		gen = rng.Crypto{}
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	id := uuid.New().String()
	return &CardGame{
		ID:         id,
		options:    opts,
		players:    append([]*Player{}, players...),
		idToPlayer: idToPlayer,
		teams:      teams,
		trump:      deck.NoSuit,
		logger:     logger.WithField("gameId", id),
		rng:        gen,
	}, nil
}

// teamsOf returns the two team names in order of first appearance
func teamsOf(players []*Player) ([]string, error) {
	counts := make(map[string]int)
	teams := make([]string, 0, 2)
	for _, p := range players {
		if _, found := counts[p.Team]; !found {
			teams = append(teams, p.Team)
		}

		counts[p.Team]++
	}

	if len(teams) != 2 || counts[teams[0]] != 2 || counts[teams[1]] != 2 {
		return nil, ErrInvalidTeams
	}

	return teams, nil
}

// Rules returns the rules of the match
func (g *CardGame) Rules() Rules {
	return g.options.Rules
}

// GetPlayers returns the players in seating order
func (g *CardGame) GetPlayers() []*Player {
	return append([]*Player{}, g.players...)
}

// GetPlayerByID returns the player with the ID
func (g *CardGame) GetPlayerByID(id int64) (*Player, error) {
	p, ok := g.idToPlayer[id]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	return p, nil
}

// Teams returns the two team names
func (g *CardGame) Teams() []string {
	return append([]string{}, g.teams...)
}

// TrumpSuit returns the trump of the current round, or deck.NoSuit
func (g *CardGame) TrumpSuit() deck.Suit {
	return g.trump
}

// TrumpChooser returns the player who picks trump this round
func (g *CardGame) TrumpChooser() *Player {
	return g.trumpChooser
}

// CurrentTrick returns the trick in progress, or nil
func (g *CardGame) CurrentTrick() *Trick {
	return g.trick
}

// RoundNo returns the number of rounds dealt in this match
func (g *CardGame) RoundNo() int {
	return g.roundNo
}

// IsDecided returns true once ProcessWin was called
func (g *CardGame) IsDecided() bool {
	return g.decided
}

// WinningTeam returns the team passed to ProcessWin
func (g *CardGame) WinningTeam() string {
	return g.winningTeam
}

// SetPlayingOrder picks the leader of the round: the configured seat, or a random one
func (g *CardGame) SetPlayingOrder() error {
	if g.decided {
		return ErrMatchAlreadyDecided
	}

	if seat := g.options.LeaderSeat; seat >= 0 {
		g.startingIndex = seat
	} else {
		g.startingIndex = g.rng.Intn(len(g.players))
	}

	g.trumpChooser = g.players[g.startingIndex]
	g.logger.WithField("leader", g.trumpChooser.Name).Debug("playing order set")
	return nil
}

// GetOrder returns the player IDs in playing order, leader first
func (g *CardGame) GetOrder() []int64 {
	ids := make([]int64, len(g.players))
	for step := range g.players {
		ids[step] = g.GetNextPlayer(step).ID
	}

	return ids
}

// GetNextPlayer returns the player that makes move number step of the current trick
func (g *CardGame) GetNextPlayer(step int) *Player {
	n := len(g.players)
	return g.players[((g.startingIndex+step)%n+n)%n]
}

// ChangePlayingOrder makes the winner lead the next trick. The seating order does not change.
func (g *CardGame) ChangePlayingOrder(winner *Player) error {
	if g.decided {
		return ErrMatchAlreadyDecided
	}

	for i, p := range g.players {
		if p == winner {
			g.startingIndex = i
			return nil
		}
	}

	return ErrPlayerNotFound
}

func (g *CardGame) receivers() []deck.Receiver {
	rs := make([]deck.Receiver, len(g.players))
	for step := range g.players {
		rs[step] = g.GetNextPlayer(step)
	}

	return rs
}

// DealFirstCards shuffles a new deck and deals the first cards, enough for the leader to pick trump
func (g *CardGame) DealFirstCards() error {
	if g.decided {
		return ErrMatchAlreadyDecided
	}

	if g.phase != phaseIdle {
		return ErrDealOrder
	}

	if g.trumpChooser == nil {
		if err := g.SetPlayingOrder(); err != nil {
			return err
		}
	}

	// every round gets its own seed from the game's source, so a seeded game replays the same deals
	d := deck.New()
	d.SetSeed(g.rng.Int63())
	d.Shuffle()
	hash := d.HashCode()

	if err := d.DealPartial(g.receivers(), g.options.Rules.FirstDealCount); err != nil {
		return err
	}

	g.deck = d
	g.phase = phaseFirstDeal
	g.roundNo++
	g.logger.WithFields(logrus.Fields{
		"seed":     d.Seed(),
		"deckHash": hash,
		"round":    g.roundNo,
	}).Debug("first cards dealt")
	return nil
}

// ChooseTrump sets the trump suit of the round
func (g *CardGame) ChooseTrump(suit deck.Suit) error {
	if g.decided {
		return ErrMatchAlreadyDecided
	}

	if g.phase != phaseFirstDeal || !suit.IsValid() {
		return ErrInvalidTrump
	}

	g.trump = suit
	g.phase = phaseTrumpChosen
	g.logger.WithField("trump", suit).Debug("trump chosen")
	return nil
}

// DealCards deals the rest of the deck
func (g *CardGame) DealCards() error {
	if g.decided {
		return ErrMatchAlreadyDecided
	}

	if g.trump == deck.NoSuit || g.deck == nil {
		return ErrDealOrder
	}

	if err := g.deck.DealRemainder(g.receivers()); err != nil {
		return err
	}

	g.phase = phasePlaying
	return nil
}

// IsRoundOver returns true when every card of the round was played
func (g *CardGame) IsRoundOver() bool {
	if g.phase != phasePlaying {
		return false
	}

	for _, p := range g.players {
		if p.CardsLeft() > 0 {
			return false
		}
	}

	return g.trick == nil || g.trick.IsComplete()
}

// NewTrick starts the next trick of the round
func (g *CardGame) NewTrick() (*Trick, error) {
	if g.decided {
		return nil, ErrMatchAlreadyDecided
	}

	if g.phase != phasePlaying {
		return nil, ErrDealOrder
	}

	if g.trick != nil && !g.trick.IsComplete() {
		return nil, ErrTrickInProgress
	}

	if g.trick != nil && !g.trickResolved {
		return nil, ErrTrickInProgress
	}

	if g.IsRoundOver() {
		return nil, ErrRoundOver
	}

	g.trick = NewTrick(g.tricksPlayed+1, len(g.players), g.options.Rules)
	g.trickResolved = false
	return g.trick, nil
}

// PlayMove plays the card for the player into the current trick
// An illegal card is not an error: false is returned and nothing changes
func (g *CardGame) PlayMove(p *Player, card *deck.Card) (bool, error) {
	if g.decided {
		return false, ErrMatchAlreadyDecided
	}

	t := g.trick
	if t == nil {
		return false, ErrNoTrick
	}

	if t.IsComplete() {
		return false, ErrTrickComplete
	}

	if g.GetNextPlayer(t.Step()) != p {
		return false, ErrIsNotPlayersTurn
	}

	move := &Move{Player: p, Card: card}
	if !t.ValidateMove(move, g.trump) {
		g.logger.WithField("playerID", p.ID).WithField("card", card).Debug("move rejected")
		return false, nil
	}

	if err := t.AddMove(move); err != nil {
		return false, err
	}

	if err := p.RemoveCard(card); err != nil {
		// ValidateMove checked the hand
		panic(err)
	}

	g.logger.WithField("playerID", p.ID).WithField("card", card).Debug("card played")
	return true, nil
}

// ResolveTrick decides the winner of the completed trick and makes the winner lead the next one
// lastTrick is true if it was the final trick of the round
func (g *CardGame) ResolveTrick() (winner *Move, lastTrick bool, err error) {
	if g.decided {
		return nil, false, ErrMatchAlreadyDecided
	}

	if g.trick == nil {
		return nil, false, ErrNoTrick
	}

	if g.trickResolved {
		return nil, false, ErrTrickResolved
	}

	winner, err = g.trick.DecideWinner(g.trump)
	if err != nil {
		return nil, false, err
	}

	if err := g.ChangePlayingOrder(winner.Player); err != nil {
		return nil, false, err
	}

	g.trickResolved = true
	g.tricksPlayed++
	g.logger.WithField("winner", winner.Player.Name).WithField("card", winner.Card).Debug("trick won")

	return winner, g.IsRoundOver(), nil
}

// ClearGame drops the state of the round. Players and scores are kept.
func (g *CardGame) ClearGame() error {
	if g.decided {
		return ErrMatchAlreadyDecided
	}

	g.clearRound()
	return nil
}

func (g *CardGame) clearRound() {
	g.deck = nil
	g.trick = nil
	g.trickResolved = false
	g.tricksPlayed = 0
	g.trump = deck.NoSuit
	g.trumpChooser = nil
	g.phase = phaseIdle
	for _, p := range g.players {
		p.clearHand()
	}
}

// ProcessWin ends the match in favor of the team
func (g *CardGame) ProcessWin(team string) error {
	if g.decided {
		return ErrMatchAlreadyDecided
	}

	known := false
	for _, t := range g.teams {
		if t == team {
			known = true
		}
	}

	if !known {
		return ErrUnknownTeam
	}

	g.decided = true
	g.winningTeam = team
	g.logger.WithField("team", team).Info("match decided")
	return nil
}

// Reset prepares the game for a brand-new match with the same players
func (g *CardGame) Reset() {
	g.clearRound()
	g.decided = false
	g.winningTeam = ""
	g.roundNo = 0
	g.startingIndex = 0
}
