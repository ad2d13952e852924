package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"math/rand"

	"klaverjas-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrUnevenDeal is an error when the remaining cards cannot be split evenly
var ErrUnevenDeal = errors.New("remaining cards cannot be dealt evenly")

// Size is the number of cards in a full deck
const Size = 32

// Receiver is anything that can be dealt a card
type Receiver interface {
	AddCard(card *Card)
}

// Deck represents a 32-card playing deck (7 through ace in four suits)
type Deck struct {
	Cards []*Card `json:"cards"`
	seed  int64
	rng   *rand.Rand
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
	}

	d.buildDeck()
	return d
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed)) // nolint:gosec
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, Size)
	for _, suit := range Suits() {
		for rank := LowestRank; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards
// If SetSeed() was not called, a seed is drawn from a crypto source so no two decks share an order
func (d *Deck) Shuffle() {
	// we always want to shuffle from an unshuffled deck
	if len(d.Cards) != Size {
		d.buildDeck()
	}

	if d.rng == nil {
		d.SetSeed(rng.Crypto{}.Int63())
	}

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Seed returns the seed used to shuffle the deck
func (d *Deck) Seed() int64 {
	return d.seed
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// DealPartial gives each receiver count cards from the top of the deck, in order
// Nothing is dealt if the deck cannot cover every receiver
func (d *Deck) DealPartial(receivers []Receiver, count int) error {
	if len(receivers) == 0 || count <= 0 {
		return nil
	}

	if !d.CanDraw(len(receivers) * count) {
		return ErrEndOfDeck
	}

	for _, r := range receivers {
		for i := 0; i < count; i++ {
			card, err := d.Draw()
			if err != nil {
				// should not happen, the size was checked above
				panic(err)
			}

			r.AddCard(card)
		}
	}

	return nil
}

// DealRemainder deals every card left in the deck evenly to the receivers
func (d *Deck) DealRemainder(receivers []Receiver) error {
	n := len(receivers)
	if n == 0 {
		return nil
	}

	left := d.CardsLeft()
	if left < n {
		return ErrEndOfDeck
	}

	if left%n != 0 {
		return ErrUnevenDeal
	}

	return d.DealPartial(receivers, left/n)
}
