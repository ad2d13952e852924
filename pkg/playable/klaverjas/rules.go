package klaverjas

import (
	"fmt"
	"strings"

	"klaverjas-server/pkg/deck"
)

// TrumpPolicy decides what a player may play when they cannot follow the led suit
type TrumpPolicy string

// trump policies
const (
	// TrumpPolicyFree allows any card when the led suit cannot be followed
	TrumpPolicyFree TrumpPolicy = "free"

	// TrumpPolicyMustTrump forces a trump when the led suit cannot be followed and a trump is held
	TrumpPolicyMustTrump TrumpPolicy = "mustTrump"

	// TrumpPolicyMustOvertrump is TrumpPolicyMustTrump, and a played trump must beat the best trump
	// on the table whenever the player holds one that does
	TrumpPolicyMustOvertrump TrumpPolicy = "mustOvertrump"
)

// ParseTrumpPolicy returns the policy for the name, case-insensitive
func ParseTrumpPolicy(s string) (TrumpPolicy, error) {
	for _, p := range []TrumpPolicy{TrumpPolicyFree, TrumpPolicyMustTrump, TrumpPolicyMustOvertrump} {
		if strings.EqualFold(string(p), s) {
			return p, nil
		}
	}

	return "", fmt.Errorf("unknown trump policy: %q", s)
}

// Rules are the card rankings, point values and the trump policy used by a match
type Rules struct {
	PlainOrder     deck.RankOrder
	TrumpOrder     deck.RankOrder
	Points         PointTable
	TrumpPolicy    TrumpPolicy
	FirstDealCount int
}

// DefaultRules returns the Jack/9-high trump rules with the free trump policy
func DefaultRules() Rules {
	return Rules{
		PlainOrder:     deck.PlainOrder,
		TrumpOrder:     deck.TrumpOrder,
		Points:         DefaultPointTable(),
		TrumpPolicy:    TrumpPolicyFree,
		FirstDealCount: 5,
	}
}

// Validate checks the rank orders and the size of the first deal
func (r Rules) Validate() error {
	if err := r.PlainOrder.Validate(); err != nil {
		return fmt.Errorf("plain order: %w", err)
	}

	if err := r.TrumpOrder.Validate(); err != nil {
		return fmt.Errorf("trump order: %w", err)
	}

	if _, err := ParseTrumpPolicy(string(r.TrumpPolicy)); err != nil {
		return err
	}

	perPlayer := deck.Size / PlayerCount
	if r.FirstDealCount < 1 || r.FirstDealCount >= perPlayer {
		return fmt.Errorf("first deal must be between 1 and %d cards, got %d", perPlayer-1, r.FirstDealCount)
	}

	return nil
}

// ComparePlain compares two cards by the plain rank order
// Only meaningful for cards of the same suit
func (r Rules) ComparePlain(a, b *deck.Card) int {
	return r.PlainOrder.Compare(a.Rank, b.Rank)
}

// CompareTrump compares two cards when trump is in play
// A trump beats any other suit, two trumps compare by the trump rank order
func (r Rules) CompareTrump(a, b *deck.Card, trump deck.Suit) int {
	aTrump := trump != deck.NoSuit && a.Suit == trump
	bTrump := trump != deck.NoSuit && b.Suit == trump

	switch {
	case aTrump && bTrump:
		return r.TrumpOrder.Compare(a.Rank, b.Rank)
	case aTrump:
		return 1
	case bTrump:
		return -1
	}

	return r.ComparePlain(a, b)
}

// Beats returns true if challenger takes the trick away from current
// Only cards of the led suit or the trump suit can win a trick
func (r Rules) Beats(challenger, current *deck.Card, led, trump deck.Suit) bool {
	if trump != deck.NoSuit && (challenger.Suit == trump || current.Suit == trump) {
		return r.CompareTrump(challenger, current, trump) > 0
	}

	if challenger.Suit != led {
		return false
	}

	if current.Suit != led {
		return true
	}

	return r.ComparePlain(challenger, current) > 0
}
