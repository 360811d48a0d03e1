package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Config holds configuration for one game
type Config struct {
	// Players is the number of players; must be at least 1, two or more
	// recommended (the layout math degenerates below that).
	Players int
	// Seed drives every shuffle and jitter draw; games with the same
	// seed replay identically.
	Seed int64
	// Clock measures game duration. Defaults to the real clock; tests
	// inject a mock.
	Clock quartz.Clock
}

// GameResult contains the results of a completed game
type GameResult struct {
	Winner             int
	TurnsPlayed        int
	FinalScores        []int
	FoundationsCreated int
	Duration           time.Duration
}

// Engine orchestrates one turn at a time: generate legal moves for
// every player, select each player's best candidate, resolve
// foundation conflicts, execute the survivors. Turns are synchronous;
// one turn fully completes before the next begins.
type Engine struct {
	cfg       Config
	state     *State
	generator *MoveGenerator
	resolver  *ConflictResolver
	executor  *MoveExecutor
	logger    *log.Logger
	bus       EventBus
	clock     quartz.Clock

	started   bool
	startedAt time.Time
	turn      int
	result    *GameResult
}

// New creates an engine with freshly dealt hands for cfg.Players
// players. The logger is injected into every component; there is no
// global logging state.
func New(cfg Config, logger *log.Logger) (*Engine, error) {
	if cfg.Players < 1 {
		return nil, fmt.Errorf("player count must be at least 1, got %d", cfg.Players)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}

	state := NewState(cfg.Players, cfg.Seed, logger)
	bus := NewEventBus()

	return &Engine{
		cfg:       cfg,
		state:     state,
		generator: NewMoveGenerator(state, logger),
		resolver:  NewConflictResolver(logger, bus),
		executor:  NewMoveExecutor(state, logger),
		logger:    logger,
		bus:       bus,
		clock:     cfg.Clock,
	}, nil
}

// EventBus returns the bus for subscribing to game events
func (e *Engine) EventBus() EventBus {
	return e.bus
}

// Turn returns the number of turns played so far
func (e *Engine) Turn() int {
	return e.turn
}

// IsGameOver reports whether any player's nertz pile is empty
func (e *Engine) IsGameOver() bool {
	return e.state.IsGameOver()
}

// Result returns the final game result once the terminal condition has
// been observed by PlayTurn.
func (e *Engine) Result() (*GameResult, bool) {
	return e.result, e.result != nil
}

// StartNewGame resets the turn counter and marks the game in progress
func (e *Engine) StartNewGame() {
	e.turn = 0
	e.started = true
	e.startedAt = e.clock.Now()
	e.logger.Info("game started", "players", e.cfg.Players, "seed", e.cfg.Seed)
	e.bus.Publish(NewGameStartEvent(e.cfg.Players, e.cfg.Seed))
}

// PlayTurn runs one full turn: generate, select, resolve, execute.
// It returns ErrGameNotStarted before StartNewGame and ErrGameOver once
// any player's nertz pile is empty; final scores are computed the first
// time the terminal condition is seen. There is no rollback: if
// execution fails mid-turn, already-applied moves remain applied.
func (e *Engine) PlayTurn() error {
	if !e.started {
		return ErrGameNotStarted
	}
	if e.state.IsGameOver() {
		e.finishGame()
		return ErrGameOver
	}

	e.turn++
	e.logger.Info("turn start", "turn", e.turn)
	e.bus.Publish(NewTurnStartEvent(e.turn))

	// One foundation snapshot for the whole turn: every player's
	// generation pass reads the same state, so no player observes a
	// sibling's not-yet-executed move.
	foundations := e.state.FoundationSummaries()

	chosen := make([]*Move, 0, e.cfg.Players)
	for player := 0; player < e.cfg.Players; player++ {
		moves, err := e.generator.LegalMoves(player, foundations)
		if err != nil {
			return err
		}
		e.logger.Debug("legal moves", "turn", e.turn, "player", player, "count", len(moves))
		for _, m := range moves {
			e.logger.Debug("legal move", "player", player, "move", m)
		}

		best := selectMove(moves)
		if best == nil {
			continue
		}
		e.logger.Info("chosen move", "turn", e.turn, "player", player, "move", best)
		e.bus.Publish(NewMoveChosenEvent(e.turn, best, len(moves)))
		chosen = append(chosen, best)
	}

	for _, move := range e.resolver.Resolve(chosen) {
		if err := e.executor.Execute(move); err != nil {
			return err
		}
		e.bus.Publish(NewMoveExecutedEvent(e.turn, move))
	}
	return nil
}

// selectMove picks the candidate maximizing priority plus distance.
// Adding the distance back partially undoes the distance penalty inside
// priority; this is a deliberate behavioral choice of the heuristic,
// preserved as is because it changes which move wins every turn.
func selectMove(moves []*Move) *Move {
	var best *Move
	bestScore := 0.0
	for _, m := range moves {
		score := m.Priority + m.Distance
		if best == nil || score > bestScore {
			best = m
			bestScore = score
		}
	}
	return best
}

// finishGame computes final scores exactly once and records the result
func (e *Engine) finishGame() {
	if e.result != nil {
		return
	}
	scores := ComputeScores(e.state, e.logger)
	e.result = &GameResult{
		Winner:             e.state.winner(),
		TurnsPlayed:        e.turn,
		FinalScores:        scores,
		FoundationsCreated: len(e.state.Foundations),
		Duration:           e.clock.Since(e.startedAt),
	}
	e.logger.Info("game over",
		"turns", e.result.TurnsPlayed,
		"winner", e.result.Winner,
		"foundations", e.result.FoundationsCreated,
		"duration", e.result.Duration)
	e.bus.Publish(NewGameOverEvent(e.result))
}
