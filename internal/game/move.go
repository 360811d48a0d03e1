package game

import (
	"fmt"

	"github.com/lox/nertz/internal/deck"
)

// PileKind identifies one of the four pile families a move can touch
type PileKind int

const (
	NertzPile PileKind = iota
	RiverPile
	DeckPile
	FoundationPile
)

// String returns the string representation of a pile kind
func (k PileKind) String() string {
	switch k {
	case NertzPile:
		return "nertz"
	case RiverPile:
		return "river"
	case DeckPile:
		return "deck"
	case FoundationPile:
		return "foundation"
	default:
		return "unknown"
	}
}

// MoveKind classifies a move for priority weighting
type MoveKind int

const (
	NertzToFoundation MoveKind = iota
	NertzToRiver
	RiverToFoundation
	DeckToFoundation
	DeckToRiver
	RiverToRiver
	// DeckFlip represents flipping cards from the deck into the stream
	DeckFlip
)

// String returns the string representation of a move kind
func (k MoveKind) String() string {
	switch k {
	case NertzToFoundation:
		return "NertzToFoundation"
	case NertzToRiver:
		return "NertzToRiver"
	case RiverToFoundation:
		return "RiverToFoundation"
	case DeckToFoundation:
		return "DeckToFoundation"
	case DeckToRiver:
		return "DeckToRiver"
	case RiverToRiver:
		return "RiverToRiver"
	case DeckFlip:
		return "DeckFlip"
	default:
		return "Unknown"
	}
}

// Priority model constants
const (
	// maxDistancePenalty caps how much distance can reduce a move's
	// base weight. Fixed design constant, not derived from the layout.
	maxDistancePenalty = 0.3
	// soleFoundationBonus scales the strategic bonus for nertz cards
	// headed to the only foundation of their suit.
	soleFoundationBonus = 20.0
	defaultBaseWeight   = 0.5
)

// baseWeight returns the priority weight for a move kind. Unlisted
// kinds fall back to defaultBaseWeight.
func baseWeight(kind MoveKind) float64 {
	switch kind {
	case NertzToFoundation:
		return 1.0
	case NertzToRiver:
		return 0.9
	case RiverToFoundation:
		return 0.5
	case DeckToFoundation:
		return 0.4
	case DeckToRiver:
		return 0.3
	case RiverToRiver:
		return 0.3
	case DeckFlip:
		return 0.1
	default:
		return defaultBaseWeight
	}
}

// FoundationSummary is a lightweight snapshot of one foundation, just
// enough for adjacency tests and priority calculation. The engine takes
// one snapshot per turn so every player's generation pass reads the
// same foundation state.
type FoundationSummary struct {
	ID      string
	Suit    deck.Suit
	TopRank deck.Rank
}

// Move describes one candidate state transition plus its computed
// priority. Moves are constructed fresh each turn by the generator,
// consumed by selection, conflict resolution and execution, and then
// discarded.
type Move struct {
	Player   int
	Source   PileKind
	Dest     PileKind
	Kind     MoveKind
	Card     *deck.Card // nil for the deck-flip move
	Distance float64
	Priority float64

	// FoundationID is set when Dest is FoundationPile
	FoundationID string
	// RiverFrom and RiverTo are river slot indexes, -1 when unset
	RiverFrom int
	RiverTo   int
}

// MoveParams carries the inputs to NewMove. RiverFrom and RiverTo
// default to -1 via NoSlot when the move does not touch a river slot.
type MoveParams struct {
	Player       int
	Source       PileKind
	Dest         PileKind
	Kind         MoveKind
	Card         *deck.Card
	Distance     float64
	FoundationID string
	RiverFrom    int
	RiverTo      int
}

// NoSlot marks an unused river slot index
const NoSlot = -1

// NewMove validates the field combination and computes the move's
// priority against the given foundation snapshot.
func NewMove(params MoveParams, foundations []FoundationSummary) (*Move, error) {
	m := &Move{
		Player:       params.Player,
		Source:       params.Source,
		Dest:         params.Dest,
		Kind:         params.Kind,
		Card:         params.Card,
		Distance:     params.Distance,
		FoundationID: params.FoundationID,
		RiverFrom:    params.RiverFrom,
		RiverTo:      params.RiverTo,
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	m.Priority = m.calculatePriority(foundations)
	return m, nil
}

func (m *Move) validate() error {
	if m.Dest == FoundationPile && m.FoundationID == "" {
		return &MoveValidationError{Player: m.Player, Reason: "foundation id required for foundation destination"}
	}
	if m.Source == RiverPile && m.RiverFrom < 0 {
		return &MoveValidationError{Player: m.Player, Reason: "source slot index required for river source"}
	}
	if m.Dest == RiverPile && m.RiverTo < 0 {
		return &MoveValidationError{Player: m.Player, Reason: "destination slot index required for river destination"}
	}
	return nil
}

// calculatePriority derives the heuristic score from the base weight,
// a distance penalty and any strategic bonus.
func (m *Move) calculatePriority(foundations []FoundationSummary) float64 {
	distanceFactor := 1.0 - m.Distance*maxDistancePenalty
	return baseWeight(m.Kind)*distanceFactor + m.strategicBonus(foundations)
}

// strategicBonus rewards nertz cards headed to a foundation when no
// other foundation of the same suit exists. Higher ranks earn more:
// they are harder to unload later while that foundation is the suit's
// sole outlet.
func (m *Move) strategicBonus(foundations []FoundationSummary) float64 {
	if m.Card == nil || m.Source != NertzPile || m.Dest != FoundationPile {
		return 0
	}
	for _, fs := range foundations {
		if fs.Suit == m.Card.Suit && fs.ID != m.FoundationID {
			return 0
		}
	}
	rankWeight := float64(m.Card.Rank.Index()+1) / float64(deck.RankCount)
	return rankWeight * soleFoundationBonus
}

// String returns a compact description for logging
func (m *Move) String() string {
	card := "-"
	if m.Card != nil {
		card = m.Card.String()
	}
	return fmt.Sprintf("p%d %s %s→%s prio=%.2f dist=%.2f", m.Player, card, m.Source, m.Dest, m.Priority, m.Distance)
}
