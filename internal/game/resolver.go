package game

import (
	"sort"

	"github.com/charmbracelet/log"
)

// ConflictResolver resolves collisions when multiple players target the
// same foundation in one turn. Non-foundation moves and Ace moves never
// conflict: Aces always create a brand-new identifier.
type ConflictResolver struct {
	logger *log.Logger
	bus    EventBus
}

// NewConflictResolver creates a resolver. The bus may be nil; conflicts
// are then only logged.
func NewConflictResolver(logger *log.Logger, bus EventBus) *ConflictResolver {
	return &ConflictResolver{logger: logger, bus: bus}
}

// Resolve takes each player's single chosen move and returns the moves
// that will actually execute: at most one per foundation identifier,
// any number of non-foundation moves. Output order is deterministic:
// pass-through moves in input order, then one winner per contested
// foundation in first-seen order.
func (r *ConflictResolver) Resolve(chosen []*Move) []*Move {
	executable := make([]*Move, 0, len(chosen))
	groups := make(map[string][]*Move)
	var order []string

	for _, move := range chosen {
		if move.Dest != FoundationPile || move.Card.IsAce() {
			executable = append(executable, move)
			continue
		}
		if _, seen := groups[move.FoundationID]; !seen {
			order = append(order, move.FoundationID)
		}
		groups[move.FoundationID] = append(groups[move.FoundationID], move)
	}

	for _, id := range order {
		executable = append(executable, r.resolveFoundation(id, groups[id]))
	}
	return executable
}

// resolveFoundation picks the winning move for one foundation: highest
// priority, then shortest distance, then lowest player index. Losers
// are discarded and logged, never executed.
func (r *ConflictResolver) resolveFoundation(id string, moves []*Move) *Move {
	if len(moves) == 1 {
		return moves[0]
	}

	sort.SliceStable(moves, func(i, j int) bool {
		a, b := moves[i], moves[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		return a.Player < b.Player
	})

	winner := moves[0]
	discarded := len(moves) - 1
	r.logger.Info("foundation conflict resolved",
		"foundation", id,
		"winner", winner.Player,
		"priority", winner.Priority,
		"distance", winner.Distance,
		"discarded", discarded)
	if r.bus != nil {
		r.bus.Publish(NewConflictEvent(id, winner.Player, discarded))
	}
	return winner
}
