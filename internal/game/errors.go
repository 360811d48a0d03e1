package game

import (
	"errors"
	"fmt"

	"github.com/lox/nertz/internal/deck"
)

// Lifecycle errors. Both are caller-recoverable conditions, unlike the
// structured errors below which signal turn-pipeline defects.
var (
	ErrGameNotStarted = errors.New("game has not been started")
	ErrGameOver       = errors.New("game is over")
)

// MoveValidationError reports a move constructed with a missing field
// for its pile-kind combination. Always a programming defect in the
// move generator, never recoverable at runtime.
type MoveValidationError struct {
	Player int
	Reason string
}

func (e *MoveValidationError) Error() string {
	return fmt.Sprintf("player %d: invalid move: %s", e.Player, e.Reason)
}

// CardMismatchError reports that the card found at a pile location does
// not match the card a move was computed against. This means shared
// state diverged from the snapshot the move was generated from and is
// fatal to the current turn.
type CardMismatchError struct {
	Player   int
	Pile     string
	Expected deck.Card
	Actual   *deck.Card // nil when the pile was empty
}

func (e *CardMismatchError) Error() string {
	actual := "empty pile"
	if e.Actual != nil {
		actual = e.Actual.String()
	}
	return fmt.Sprintf("player %d: card mismatch at %s: expected %s, got %s",
		e.Player, e.Pile, e.Expected, actual)
}

// InvalidPileError reports a reference to a pile that does not exist in
// shared state, such as a foundation identifier with no foundation.
type InvalidPileError struct {
	Player int
	Pile   string
	Reason string
}

func (e *InvalidPileError) Error() string {
	return fmt.Sprintf("player %d: invalid pile %q: %s", e.Player, e.Pile, e.Reason)
}
