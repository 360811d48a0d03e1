package game

import (
	"fmt"

	"github.com/lox/nertz/internal/deck"
)

// FoundationID builds the permanent identifier for a foundation from
// the player who started it and its suit.
func FoundationID(owner int, suit deck.Suit) string {
	return fmt.Sprintf("foundation_%d_%s", owner, suit.Name())
}

// Foundation is a shared suit-pure pile building up from an Ace. It is
// created the instant its Ace is played and never destroyed. The owner
// index is permanently part of the identifier, but any player's
// next-rank card may extend it.
//
// AddCard appends without re-validating rank adjacency: the move
// generator is the sole guarantor that only legal next-rank cards are
// ever offered, and the executor trusts it.
type Foundation struct {
	id    string
	suit  deck.Suit
	owner int
	cards []deck.Card
}

// NewFoundation creates a foundation from its seed card. The card must
// be an Ace; the suit and identifier are fixed from it.
func NewFoundation(card deck.Card, owner int) (*Foundation, error) {
	if !card.IsAce() {
		return nil, fmt.Errorf("foundation must start with an ace, got %s", card)
	}
	return &Foundation{
		id:    FoundationID(owner, card.Suit),
		suit:  card.Suit,
		owner: owner,
		cards: []deck.Card{card},
	}, nil
}

// ID returns the foundation's permanent identifier
func (f *Foundation) ID() string { return f.id }

// Suit returns the foundation's suit
func (f *Foundation) Suit() deck.Suit { return f.suit }

// Owner returns the index of the player whose Ace started the pile
func (f *Foundation) Owner() int { return f.owner }

// Top returns the last card placed. A foundation always holds at least
// its seed Ace, so Top never fails post-construction.
func (f *Foundation) Top() deck.Card {
	return f.cards[len(f.cards)-1]
}

// AddCard appends a card to the pile
func (f *Foundation) AddCard(card deck.Card) {
	f.cards = append(f.cards, card)
}

// Len returns the number of cards on the pile
func (f *Foundation) Len() int { return len(f.cards) }

// Cards returns a copy of the pile contents, Ace first
func (f *Foundation) Cards() []deck.Card {
	out := make([]deck.Card, len(f.cards))
	copy(out, f.cards)
	return out
}
