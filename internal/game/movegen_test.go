package game

import (
	"testing"

	"github.com/lox/nertz/internal/deck"
)

func findMove(moves []*Move, kind MoveKind) *Move {
	for _, m := range moves {
		if m.Kind == kind {
			return m
		}
	}
	return nil
}

func TestFlipAlwaysGenerated(t *testing.T) {
	s := riggedState(deck.Piles{})
	gen := NewMoveGenerator(s, testLogger())

	moves, err := gen.LegalMoves(0, s.FoundationSummaries())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(moves) != 1 {
		t.Fatalf("Expected only the flip move for empty piles, got %d moves", len(moves))
	}
	if moves[0].Kind != DeckFlip {
		t.Errorf("Expected DeckFlip, got %s", moves[0].Kind)
	}
	if moves[0].Card != nil {
		t.Error("Flip move should carry no card")
	}
}

func TestNertzAceCreatesFoundationMove(t *testing.T) {
	ace := deck.NewCard(deck.Spades, deck.Ace, 0)
	s := riggedState(deck.Piles{Nertz: []deck.Card{ace}})
	gen := NewMoveGenerator(s, testLogger())

	moves, err := gen.LegalMoves(0, s.FoundationSummaries())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	move := findMove(moves, NertzToFoundation)
	if move == nil {
		t.Fatal("Expected a nertz-to-foundation move for an Ace")
	}
	if move.FoundationID != "foundation_0_spades" {
		t.Errorf("Expected foundation_0_spades, got %s", move.FoundationID)
	}
	// The target position is reserved during generation
	if _, ok := s.Table.FoundationPosition(move.FoundationID); !ok {
		t.Error("Generating an Ace move should reserve the foundation position")
	}
	if move.Distance <= 0 {
		t.Errorf("Expected positive distance to a center foundation, got %v", move.Distance)
	}
}

func TestNertzPrefersFoundationOverRiver(t *testing.T) {
	two := deck.NewCard(deck.Hearts, deck.Two, 0)
	s := riggedState(deck.Piles{Nertz: []deck.Card{two}})
	seedFoundation(t, s, 0, deck.Hearts, deck.Ace)
	gen := NewMoveGenerator(s, testLogger())

	moves, err := gen.LegalMoves(0, s.FoundationSummaries())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if findMove(moves, NertzToFoundation) == nil {
		t.Error("Expected a nertz-to-foundation move")
	}
	if findMove(moves, NertzToRiver) != nil {
		t.Error("River fallback should not be generated when a foundation accepts the card")
	}
}

func TestNertzFallsBackToEmptyRiverSlot(t *testing.T) {
	nine := deck.NewCard(deck.Clubs, deck.Nine, 0)
	s := riggedState(deck.Piles{Nertz: []deck.Card{nine}})
	gen := NewMoveGenerator(s, testLogger())

	moves, err := gen.LegalMoves(0, s.FoundationSummaries())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	move := findMove(moves, NertzToRiver)
	if move == nil {
		t.Fatal("Expected a nertz-to-river move")
	}
	if move.RiverTo != 0 {
		t.Errorf("Expected first empty slot 0, got %d", move.RiverTo)
	}
}

func TestNertzStacksOnRiverTop(t *testing.T) {
	six := deck.NewCard(deck.Spades, deck.Six, 0)
	five := deck.NewCard(deck.Hearts, deck.Five, 0)
	s := riggedState(deck.Piles{
		Nertz: []deck.Card{five},
		River: [deck.RiverSlots][]deck.Card{0: {six}},
	})
	gen := NewMoveGenerator(s, testLogger())

	moves, err := gen.LegalMoves(0, s.FoundationSummaries())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	move := findMove(moves, NertzToRiver)
	if move == nil {
		t.Fatal("Expected a nertz-to-river move")
	}
	if move.RiverTo != 0 {
		t.Errorf("Expected stacking slot 0, got %d", move.RiverTo)
	}
}

func TestRiverToFoundationPerSlot(t *testing.T) {
	two := deck.NewCard(deck.Spades, deck.Two, 0)
	three := deck.NewCard(deck.Spades, deck.Three, 0)
	s := riggedState(deck.Piles{
		River: [deck.RiverSlots][]deck.Card{0: {two}, 2: {three}},
	})
	seedFoundation(t, s, 0, deck.Spades, deck.Ace)
	gen := NewMoveGenerator(s, testLogger())

	moves, err := gen.LegalMoves(0, s.FoundationSummaries())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Only the two continues the Ace; the three does not match yet
	move := findMove(moves, RiverToFoundation)
	if move == nil {
		t.Fatal("Expected a river-to-foundation move")
	}
	if !move.Card.Same(two) {
		t.Errorf("Expected card %s, got %s", two, move.Card)
	}
	if move.RiverFrom != 0 {
		t.Errorf("Expected source slot 0, got %d", move.RiverFrom)
	}
}

func TestRiverToRiverMovesBottomCard(t *testing.T) {
	five := deck.NewCard(deck.Hearts, deck.Five, 0)
	four := deck.NewCard(deck.Spades, deck.Four, 0)
	six := deck.NewCard(deck.Spades, deck.Six, 0)
	s := riggedState(deck.Piles{
		River: [deck.RiverSlots][]deck.Card{
			0: {five, four}, // bottom five, top four
			1: {six},
		},
	})
	gen := NewMoveGenerator(s, testLogger())

	moves, err := gen.LegalMoves(0, s.FoundationSummaries())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	move := findMove(moves, RiverToRiver)
	if move == nil {
		t.Fatal("Expected a river-to-river move")
	}
	if !move.Card.Same(five) {
		t.Errorf("Expected bottom card %s to move, got %s", five, move.Card)
	}
	if move.RiverFrom != 0 || move.RiverTo != 1 {
		t.Errorf("Expected slot 0 to slot 1, got %d to %d", move.RiverFrom, move.RiverTo)
	}
}

func TestRiverToRiverIgnoresTopCardAdjacency(t *testing.T) {
	nine := deck.NewCard(deck.Hearts, deck.Nine, 0)
	four := deck.NewCard(deck.Spades, deck.Four, 0)
	five := deck.NewCard(deck.Hearts, deck.Five, 0)
	s := riggedState(deck.Piles{
		River: [deck.RiverSlots][]deck.Card{
			0: {nine, four}, // top four would stack on five, bottom nine does not
			1: {five},
		},
	})
	gen := NewMoveGenerator(s, testLogger())

	moves, err := gen.LegalMoves(0, s.FoundationSummaries())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if findMove(moves, RiverToRiver) != nil {
		t.Error("Transfers ride on the bottom card; the top card alone should not qualify")
	}
}

func TestStreamTopPrefersRiverOverFoundation(t *testing.T) {
	two := deck.NewCard(deck.Diamonds, deck.Two, 0)
	s := riggedState(deck.Piles{Stream: []deck.Card{two}})
	seedFoundation(t, s, 0, deck.Diamonds, deck.Ace)
	gen := NewMoveGenerator(s, testLogger())

	moves, err := gen.LegalMoves(0, s.FoundationSummaries())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if findMove(moves, DeckToRiver) == nil {
		t.Error("Expected the stream top to target an open river slot first")
	}
	if findMove(moves, DeckToFoundation) != nil {
		t.Error("Foundation fallback should not fire when a river slot accepts the card")
	}
}

func TestStreamTopFallsBackToFoundation(t *testing.T) {
	two := deck.NewCard(deck.Diamonds, deck.Two, 0)
	blocker := deck.NewCard(deck.Clubs, deck.Nine, 0)
	s := riggedState(deck.Piles{
		Stream: []deck.Card{two},
		River: [deck.RiverSlots][]deck.Card{
			0: {blocker},
			1: {deck.NewCard(deck.Spades, deck.Nine, 0)},
			2: {deck.NewCard(deck.Clubs, deck.Jack, 0)},
			3: {deck.NewCard(deck.Spades, deck.Jack, 0)},
		},
	})
	seedFoundation(t, s, 0, deck.Diamonds, deck.Ace)
	gen := NewMoveGenerator(s, testLogger())

	moves, err := gen.LegalMoves(0, s.FoundationSummaries())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	move := findMove(moves, DeckToFoundation)
	if move == nil {
		t.Fatal("Expected a deck-to-foundation move when no river slot accepts")
	}
	if move.FoundationID != "foundation_0_diamonds" {
		t.Errorf("Expected foundation_0_diamonds, got %s", move.FoundationID)
	}
}
