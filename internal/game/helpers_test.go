package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/nertz/internal/deck"
	"github.com/lox/nertz/internal/randutil"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

// riggedState builds shared state with explicit pile contents per
// player, bypassing dealing.
func riggedState(piles ...deck.Piles) *State {
	s := &State{
		PlayerCount: len(piles),
		Players:     make([]*Player, len(piles)),
		Foundations: make(map[string]*Foundation),
		Table:       NewTable(len(piles), randutil.New(1), testLogger()),
	}
	for i, p := range piles {
		s.Players[i] = &Player{Index: i, Piles: deck.PileSetFromPiles(i, p)}
	}
	return s
}

// seedFoundation registers a placed foundation built up to topRank
func seedFoundation(t *testing.T, s *State, owner int, suit deck.Suit, topRank deck.Rank) *Foundation {
	t.Helper()
	f, err := s.CreateFoundation(deck.NewCard(suit, deck.Ace, owner), owner)
	if err != nil {
		t.Fatalf("seeding foundation: %v", err)
	}
	for rank := deck.Two; rank <= topRank; rank++ {
		f.AddCard(deck.NewCard(suit, rank, owner))
	}
	s.Table.PlaceFoundation(f.ID())
	return f
}

// riggedEngine wraps rigged state in a started engine with a mock clock
func riggedEngine(t *testing.T, s *State) *Engine {
	t.Helper()
	bus := NewEventBus()
	return &Engine{
		cfg:       Config{Players: s.PlayerCount},
		state:     s,
		generator: NewMoveGenerator(s, testLogger()),
		resolver:  NewConflictResolver(testLogger(), bus),
		executor:  NewMoveExecutor(s, testLogger()),
		logger:    testLogger(),
		bus:       bus,
		clock:     quartz.NewMock(t),
		started:   true,
	}
}
