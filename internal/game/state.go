package game

import (
	"sort"

	"github.com/charmbracelet/log"

	"github.com/lox/nertz/internal/deck"
	"github.com/lox/nertz/internal/randutil"
)

// Player holds one player's piles and running score
type Player struct {
	Index int
	Score int
	Piles *deck.PileSet
}

// State is the shared mutable game state: every player's piles, the
// foundations created so far and the spatial layout.
type State struct {
	PlayerCount int
	Players     []*Player
	Foundations map[string]*Foundation
	Table       *Table
}

// NewState deals a starting hand to playerCount players. Each player's
// shuffle and the table's jitter sampling draw from independent
// generators derived from the seed, so deals reproduce exactly.
func NewState(playerCount int, seed int64, logger *log.Logger) *State {
	s := &State{
		PlayerCount: playerCount,
		Players:     make([]*Player, playerCount),
		Foundations: make(map[string]*Foundation),
		Table:       NewTable(playerCount, randutil.Derive(seed, 0), logger),
	}
	for i := 0; i < playerCount; i++ {
		s.Players[i] = &Player{
			Index: i,
			Piles: deck.NewPileSet(i, randutil.Derive(seed, uint64(i)+1)).DealStartingHand(),
		}
	}
	return s
}

// CreateFoundation creates a new foundation from an Ace played by the
// given player and registers it in shared state.
func (s *State) CreateFoundation(card deck.Card, owner int) (*Foundation, error) {
	f, err := NewFoundation(card, owner)
	if err != nil {
		return nil, err
	}
	if _, exists := s.Foundations[f.ID()]; exists {
		return nil, &InvalidPileError{Player: owner, Pile: f.ID(), Reason: "already exists"}
	}
	s.Foundations[f.ID()] = f
	return f, nil
}

// FoundationSummaries returns an immutable snapshot of foundation
// state, sorted by identifier for deterministic iteration. The engine
// takes one snapshot at turn start and every player's generation pass
// reads it, so no player observes another's not-yet-executed move.
func (s *State) FoundationSummaries() []FoundationSummary {
	out := make([]FoundationSummary, 0, len(s.Foundations))
	for _, f := range s.Foundations {
		out = append(out, FoundationSummary{
			ID:      f.ID(),
			Suit:    f.Suit(),
			TopRank: f.Top().Rank,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IsGameOver reports whether any player has emptied their nertz pile,
// the sole game-over trigger.
func (s *State) IsGameOver() bool {
	for _, p := range s.Players {
		if p.Piles.NertzLen() == 0 {
			return true
		}
	}
	return false
}

// winner returns the lowest-indexed player with an empty nertz pile,
// or -1 if the game is still running.
func (s *State) winner() int {
	for _, p := range s.Players {
		if p.Piles.NertzLen() == 0 {
			return p.Index
		}
	}
	return -1
}
