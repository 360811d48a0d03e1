package game

import (
	"github.com/charmbracelet/log"

	"github.com/lox/nertz/internal/deck"
)

// MoveExecutor mutates pile state to realize a move: destination
// effects first, then source effects. Every source pop verifies that
// the card found is identity-equal to the card the move was computed
// against; a mismatch means the snapshot diverged and the turn pipeline
// is broken, so it fails rather than recovers.
type MoveExecutor struct {
	state  *State
	logger *log.Logger
}

// NewMoveExecutor creates an executor over the given state
func NewMoveExecutor(state *State, logger *log.Logger) *MoveExecutor {
	return &MoveExecutor{state: state, logger: logger}
}

// Execute applies a single move to the game state
func (e *MoveExecutor) Execute(move *Move) error {
	player := e.state.Players[move.Player]

	if move.Kind == DeckFlip {
		player.Piles.FlipIntoStream()
		e.logger.Debug("flipped into stream", "player", move.Player, "stream", player.Piles.StreamLen(), "deck", player.Piles.DeckLen())
		return nil
	}

	e.logger.Info("executing move", "player", move.Player, "card", move.Card, "from", move.Source, "to", move.Dest)

	if err := e.applyDestination(move, player); err != nil {
		return err
	}
	return e.applySource(move, player)
}

func (e *MoveExecutor) applyDestination(move *Move, player *Player) error {
	switch move.Dest {
	case FoundationPile:
		return e.placeOnFoundation(move, player)
	case RiverPile:
		if move.RiverTo < 0 {
			return &MoveValidationError{Player: move.Player, Reason: "destination slot index required for river destination"}
		}
		player.Piles.PushRiver(move.RiverTo, *move.Card)
	}
	// deck and nertz are never destinations in the current ruleset
	return nil
}

// placeOnFoundation creates a new foundation for Aces, otherwise
// extends the referenced foundation. Either way the card is recorded in
// the mover's lake for scoring.
func (e *MoveExecutor) placeOnFoundation(move *Move, player *Player) error {
	if move.Card.IsAce() {
		if _, err := e.state.CreateFoundation(*move.Card, move.Player); err != nil {
			return err
		}
		player.Piles.AppendLake(*move.Card)
		return nil
	}

	foundation, ok := e.state.Foundations[move.FoundationID]
	if !ok {
		return &InvalidPileError{Player: move.Player, Pile: move.FoundationID, Reason: "does not exist"}
	}
	foundation.AddCard(*move.Card)
	player.Piles.AppendLake(*move.Card)
	return nil
}

func (e *MoveExecutor) applySource(move *Move, player *Player) error {
	switch move.Source {
	case NertzPile:
		return e.removeFromNertz(move, player)
	case DeckPile:
		return e.removeFromStream(move, player)
	case RiverPile:
		return e.removeFromRiver(move, player)
	}
	return nil
}

func (e *MoveExecutor) removeFromNertz(move *Move, player *Player) error {
	top, ok := player.Piles.TopNertz()
	if !ok || !top.Same(*move.Card) {
		return mismatch(move, "nertz", top, ok)
	}
	player.Piles.PopNertz()
	return nil
}

func (e *MoveExecutor) removeFromStream(move *Move, player *Player) error {
	top, ok := player.Piles.TopStream()
	if !ok || !top.Same(*move.Card) {
		return mismatch(move, "deck (stream)", top, ok)
	}
	player.Piles.PopStream()
	return nil
}

// removeFromRiver pops the bottom card for river-to-river transfers and
// the top card otherwise, verifying identity either way.
func (e *MoveExecutor) removeFromRiver(move *Move, player *Player) error {
	if move.RiverFrom < 0 {
		return &MoveValidationError{Player: move.Player, Reason: "source slot index required for river source"}
	}

	if move.Dest == RiverPile {
		bottom, ok := player.Piles.BottomRiver(move.RiverFrom)
		if !ok || !bottom.Same(*move.Card) {
			return mismatch(move, "river (bottom)", bottom, ok)
		}
		player.Piles.PopRiverBottom(move.RiverFrom)
		return nil
	}

	top, ok := player.Piles.TopRiver(move.RiverFrom)
	if !ok || !top.Same(*move.Card) {
		return mismatch(move, "river (top)", top, ok)
	}
	player.Piles.PopRiverTop(move.RiverFrom)
	return nil
}

func mismatch(move *Move, pile string, actual deck.Card, found bool) error {
	err := &CardMismatchError{Player: move.Player, Pile: pile, Expected: *move.Card}
	if found {
		err.Actual = &actual
	}
	return err
}
