package game

import (
	"sort"

	"github.com/lox/nertz/internal/deck"
)

// Snapshot is a read-only copy of observable game state, built for the
// visualization collaborator. Mutating a snapshot never affects engine
// state.
type Snapshot struct {
	Turn        int
	GameOver    bool
	Players     []PlayerSnapshot
	Foundations []FoundationSnapshot
}

// PlayerSnapshot summarizes one player's piles and position
type PlayerSnapshot struct {
	Index     int
	Score     int
	Position  Point
	NertzTop  *deck.Card
	NertzLen  int
	StreamTop *deck.Card
	StreamLen int
	DeckLen   int
	LakeLen   int
	// River holds each slot's full contents, bottom first
	River [deck.RiverSlots][]deck.Card
}

// FoundationSnapshot summarizes one foundation
type FoundationSnapshot struct {
	ID       string
	Suit     deck.Suit
	Top      deck.Card
	Len      int
	Position Point
}

// Snapshot returns the current observable state. Foundations are sorted
// by identifier.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Turn:     e.turn,
		GameOver: e.state.IsGameOver(),
	}

	for _, p := range e.state.Players {
		ps := PlayerSnapshot{
			Index:     p.Index,
			Score:     p.Score,
			Position:  e.state.Table.PlayerPosition(p.Index),
			NertzLen:  p.Piles.NertzLen(),
			StreamLen: p.Piles.StreamLen(),
			DeckLen:   p.Piles.DeckLen(),
			LakeLen:   p.Piles.LakeLen(),
		}
		if card, ok := p.Piles.TopNertz(); ok {
			ps.NertzTop = &card
		}
		if card, ok := p.Piles.TopStream(); ok {
			ps.StreamTop = &card
		}
		for slot := 0; slot < deck.RiverSlots; slot++ {
			ps.River[slot] = p.Piles.RiverSlot(slot)
		}
		s.Players = append(s.Players, ps)
	}

	for id, f := range e.state.Foundations {
		pos, _ := e.state.Table.FoundationPosition(id)
		s.Foundations = append(s.Foundations, FoundationSnapshot{
			ID:       id,
			Suit:     f.Suit(),
			Top:      f.Top(),
			Len:      f.Len(),
			Position: pos,
		})
	}
	sort.Slice(s.Foundations, func(i, j int) bool { return s.Foundations[i].ID < s.Foundations[j].ID })

	return s
}
