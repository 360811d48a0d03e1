package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Clubs
	Hearts
	Diamonds
)

// String returns the symbol for a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// Name returns the lowercase word for a suit, used in foundation identifiers
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "spades"
	case Clubs:
		return "clubs"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	default:
		return "unknown"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are always low: foundations build
// A,2,...,K and river stacking uses the same order with no wraparound.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		if r >= Two && r <= Ten {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Next returns the next higher rank. ok is false for King.
func (r Rank) Next() (Rank, bool) {
	if r >= King || r < Ace {
		return 0, false
	}
	return r + 1, true
}

// Index returns the zero-based position of the rank in A..K order.
func (r Rank) Index() int {
	return int(r) - 1
}

const (
	// SuitCount is the number of suits in a deck
	SuitCount = 4
	// RankCount is the number of ranks per suit
	RankCount = 13
	// Size is the number of cards in one player's deck
	Size = SuitCount * RankCount
)

// Card is an immutable playing-card value. Every player races their own
// 52-card deck, so two cards can share suit and rank while being distinct
// values; Owner is part of the card's identity, not an annotation.
type Card struct {
	Suit  Suit
	Rank  Rank
	Owner int
}

// NewCard creates a new card owned by the given player
func NewCard(suit Suit, rank Rank, owner int) Card {
	return Card{Suit: suit, Rank: rank, Owner: owner}
}

// String returns the string representation of a card (e.g., "A♠#0")
func (c Card) String() string {
	return fmt.Sprintf("%s%s#%d", c.Rank, c.Suit, c.Owner)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// Same reports identity equality: suit, rank and owner must all match.
// Pile-membership checks must use this rather than comparing suit and
// rank alone, since structurally equal cards from different decks are
// distinct values.
func (c Card) Same(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank && c.Owner == other.Owner
}

// CanStackOn reports whether c may be placed on dest under the
// solitaire adjacency rule: opposite color, and c exactly one rank
// below dest.
func (c Card) CanStackOn(dest Card) bool {
	if c.IsRed() == dest.IsRed() {
		return false
	}
	next, ok := c.Rank.Next()
	return ok && next == dest.Rank
}
