package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnknownSuit is returned when a suit name cannot be parsed
var ErrUnknownSuit = errors.New("unknown suit")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// NoSuit is used where a suit has not been decided yet (no trump, no led suit)
const NoSuit Suit = ""

// Suits returns the four suits in deck-building order
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// ParseSuit returns the suit matching the name ("hearts") or the short form ("h")
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clubs", "c":
		return Clubs, nil
	case "diamonds", "d":
		return Diamonds, nil
	case "hearts", "h":
		return Hearts, nil
	case "spades", "s":
		return Spades, nil
	}

	return NoSuit, fmt.Errorf("%w: %q", ErrUnknownSuit, s)
}

// IsValid returns true if the suit is one of the four suits
func (s Suit) IsValid() bool {
	switch s {
	case Clubs, Diamonds, Hearts, Spades:
		return true
	}

	return false
}

// Card is an individual playing card
// Cards are never modified after they are created
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// LowestRank is the lowest rank in a 32-card deck
const LowestRank = 7

func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		suit = "?"
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	if c == nil || card == nil {
		return c == card
	}

	return c.Suit == card.Suit && c.Rank == card.Rank
}

// IsValid returns true if the card exists in a 32-card deck
func (c *Card) IsValid() bool {
	return c != nil && c.Suit.IsValid() && c.Rank >= LowestRank && c.Rank <= Ace
}

var cardRx = regexp.MustCompile(`(?i)^([7-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 7 and <= 14 and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	suit, err := ParseSuit(match[2])
	if err != nil {
		// should never be hit due to the regexp
		panic(err)
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 7c,8h,9s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
