package game

import (
	"github.com/charmbracelet/log"

	"github.com/lox/nertz/internal/deck"
)

// MoveGenerator enumerates all legal moves for one player against the
// current shared state. Generation is read-only over pile state; the
// only shared write is memoized foundation placement, which is
// side-effect-free for already-placed identifiers.
type MoveGenerator struct {
	state  *State
	logger *log.Logger
}

// NewMoveGenerator creates a move generator over the given state
func NewMoveGenerator(state *State, logger *log.Logger) *MoveGenerator {
	return &MoveGenerator{state: state, logger: logger}
}

// LegalMoves returns every legal move for the player, evaluated against
// the given foundation snapshot. Categories are enumerated in a fixed
// order (nertz, river→foundation, river→river, deck/stream); the order
// only affects presentation since selection scans the full list.
func (g *MoveGenerator) LegalMoves(player int, foundations []FoundationSummary) ([]*Move, error) {
	var moves []*Move
	var err error

	if moves, err = g.addNertzMoves(player, foundations, moves); err != nil {
		return nil, err
	}
	if moves, err = g.addRiverToFoundationMoves(player, foundations, moves); err != nil {
		return nil, err
	}
	if moves, err = g.addRiverToRiverMoves(player, foundations, moves); err != nil {
		return nil, err
	}
	if moves, err = g.addDeckMoves(player, foundations, moves); err != nil {
		return nil, err
	}

	return moves, nil
}

// addNertzMoves tries the single top nertz card against foundations
// first, then river slots. At most one move is generated.
func (g *MoveGenerator) addNertzMoves(player int, foundations []FoundationSummary, moves []*Move) ([]*Move, error) {
	card, ok := g.state.Players[player].Piles.TopNertz()
	if !ok {
		return moves, nil
	}

	move, err := g.foundationMove(player, card, NertzPile, NoSlot, foundations)
	if err != nil {
		return nil, err
	}
	if move == nil {
		move, err = g.riverMove(player, card, NertzPile, foundations)
		if err != nil {
			return nil, err
		}
	}
	if move != nil {
		moves = append(moves, move)
	}
	return moves, nil
}

// addRiverToFoundationMoves tries each slot's top card against the
// foundations; at most one move per slot.
func (g *MoveGenerator) addRiverToFoundationMoves(player int, foundations []FoundationSummary, moves []*Move) ([]*Move, error) {
	piles := g.state.Players[player].Piles
	for slot := 0; slot < deck.RiverSlots; slot++ {
		card, ok := piles.TopRiver(slot)
		if !ok {
			continue
		}
		move, err := g.foundationMove(player, card, RiverPile, slot, foundations)
		if err != nil {
			return nil, err
		}
		if move != nil {
			moves = append(moves, move)
		}
	}
	return moves, nil
}

// addRiverToRiverMoves tests every ordered pair of distinct non-empty
// slots. The source slot's bottom card must stack on the destination
// top, since the whole slot rides on its bottom card. Partial-pile
// splits are not modeled.
func (g *MoveGenerator) addRiverToRiverMoves(player int, foundations []FoundationSummary, moves []*Move) ([]*Move, error) {
	piles := g.state.Players[player].Piles
	for i := 0; i < deck.RiverSlots; i++ {
		source, ok := piles.BottomRiver(i)
		if !ok {
			continue
		}
		for j := 0; j < deck.RiverSlots; j++ {
			if i == j {
				continue
			}
			dest, ok := piles.TopRiver(j)
			if !ok {
				continue
			}
			if !source.CanStackOn(dest) {
				continue
			}
			distance := g.riverDistance(player)
			g.logger.Debug("legal river-to-river move", "player", player, "card", source, "from", i, "to", j)
			move, err := NewMove(MoveParams{
				Player:    player,
				Source:    RiverPile,
				Dest:      RiverPile,
				Kind:      RiverToRiver,
				Card:      &source,
				Distance:  distance,
				RiverFrom: i,
				RiverTo:   j,
			}, foundations)
			if err != nil {
				return nil, err
			}
			moves = append(moves, move)
		}
	}
	return moves, nil
}

// addDeckMoves always emits the flip move, then tries the stream's top
// card against river (preferred) and foundations.
func (g *MoveGenerator) addDeckMoves(player int, foundations []FoundationSummary, moves []*Move) ([]*Move, error) {
	flip, err := NewMove(MoveParams{
		Player:    player,
		Source:    DeckPile,
		Dest:      DeckPile,
		Kind:      DeckFlip,
		RiverFrom: NoSlot,
		RiverTo:   NoSlot,
	}, foundations)
	if err != nil {
		return nil, err
	}
	moves = append(moves, flip)

	card, ok := g.state.Players[player].Piles.TopStream()
	if !ok {
		return moves, nil
	}

	move, err := g.riverMove(player, card, DeckPile, foundations)
	if err != nil {
		return nil, err
	}
	if move == nil {
		move, err = g.foundationMove(player, card, DeckPile, NoSlot, foundations)
		if err != nil {
			return nil, err
		}
	}
	if move != nil {
		moves = append(moves, move)
	}
	return moves, nil
}

// riverMove generates a move of the card into the first river slot that
// is empty or whose top card accepts it. Not used for river-to-river
// transfers, which move whole slots.
func (g *MoveGenerator) riverMove(player int, card deck.Card, source PileKind, foundations []FoundationSummary) (*Move, error) {
	kind := NertzToRiver
	if source == DeckPile {
		kind = DeckToRiver
	}
	piles := g.state.Players[player].Piles
	distance := g.riverDistance(player)

	for slot := 0; slot < deck.RiverSlots; slot++ {
		top, occupied := piles.TopRiver(slot)
		if occupied && !card.CanStackOn(top) {
			continue
		}
		return NewMove(MoveParams{
			Player:    player,
			Source:    source,
			Dest:      RiverPile,
			Kind:      kind,
			Card:      &card,
			Distance:  distance,
			RiverFrom: NoSlot,
			RiverTo:   slot,
		}, foundations)
	}
	return nil, nil
}

// foundationMove generates a move of the card onto a foundation. Aces
// always succeed, creating a fresh identifier bound to the player; the
// table position is reserved here so the move can carry its distance.
// Other ranks match the first snapshot foundation of the same suit
// whose top is exactly one rank below.
func (g *MoveGenerator) foundationMove(player int, card deck.Card, source PileKind, riverFrom int, foundations []FoundationSummary) (*Move, error) {
	var kind MoveKind
	switch source {
	case NertzPile:
		kind = NertzToFoundation
	case RiverPile:
		kind = RiverToFoundation
	case DeckPile:
		kind = DeckToFoundation
	default:
		return nil, &InvalidPileError{Player: player, Pile: source.String(), Reason: "unsupported source for foundation move"}
	}

	playerPos := g.state.Table.PlayerPosition(player)

	build := func(id string, pos Point) (*Move, error) {
		return NewMove(MoveParams{
			Player:       player,
			Source:       source,
			Dest:         FoundationPile,
			Kind:         kind,
			Card:         &card,
			Distance:     playerPos.DistanceTo(pos),
			FoundationID: id,
			RiverFrom:    riverFrom,
			RiverTo:      NoSlot,
		}, foundations)
	}

	if card.IsAce() {
		id := FoundationID(player, card.Suit)
		return build(id, g.state.Table.PlaceFoundation(id))
	}

	for _, fs := range foundations {
		if fs.Suit != card.Suit {
			continue
		}
		next, ok := fs.TopRank.Next()
		if !ok || next != card.Rank {
			continue
		}
		pos, ok := g.state.Table.FoundationPosition(fs.ID)
		if !ok {
			return nil, &InvalidPileError{Player: player, Pile: fs.ID, Reason: "no placed position"}
		}
		return build(fs.ID, pos)
	}
	return nil, nil
}

// riverDistance returns the distance from the player to their river
// area. Rivers are co-located with the player, so this is always zero;
// kept as a helper so the spatial model can change without touching
// call sites.
func (g *MoveGenerator) riverDistance(player int) float64 {
	pos := g.state.Table.PlayerPosition(player)
	return pos.DistanceTo(pos)
}
