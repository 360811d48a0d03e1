// Package simulator runs batches of independent games and aggregates
// their results.
package simulator

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/nertz/internal/game"
	"github.com/lox/nertz/internal/statistics"
)

// Simulator runs solitaire game simulations
type Simulator struct {
	config *Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config *Config, logger *log.Logger) *Simulator {
	return &Simulator{config: config, logger: logger}
}

// gameOutcome pairs a finished game's result with its batch index so
// results can be folded into statistics in a fixed order regardless of
// goroutine scheduling.
type gameOutcome struct {
	result  *game.GameResult
	stalled bool
}

// Run executes the configured number of games and returns aggregate
// statistics. Games run concurrently up to the parallel limit; each
// game derives its own seed, so results are identical for a given
// configuration no matter how execution interleaves.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	outcomes := make([]gameOutcome, s.config.Simulation.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Simulation.Parallel)

	for i := 0; i < s.config.Simulation.Games; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			gameSeed := s.config.Simulation.Seed + int64(i)
			outcome, err := s.playGame(i, gameSeed)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i, gameSeed, err)
			}
			outcomes[i] = outcome
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, outcome := range outcomes {
		if outcome.stalled {
			stats.AddStalled()
			continue
		}
		stats.Add(outcome.result)
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playGame runs one game to completion or the turn cutoff
func (s *Simulator) playGame(index int, seed int64) (gameOutcome, error) {
	engine, err := game.New(game.Config{
		Players: s.config.Simulation.Players,
		Seed:    seed,
	}, s.logger.With("game", index))
	if err != nil {
		return gameOutcome{}, err
	}

	engine.StartNewGame()
	for turn := 0; turn <= s.config.Simulation.MaxTurns; turn++ {
		err := engine.PlayTurn()
		if errors.Is(err, game.ErrGameOver) {
			result, ok := engine.Result()
			if !ok {
				return gameOutcome{}, fmt.Errorf("game over without a result")
			}
			return gameOutcome{result: result}, nil
		}
		if err != nil {
			return gameOutcome{}, err
		}
	}

	s.logger.Warn("game stalled", "game", index, "seed", seed,
		"turns", engine.Turn(), "max_turns", s.config.Simulation.MaxTurns)
	return gameOutcome{stalled: true}, nil
}
