// Package statistics aggregates results across simulated games.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/nertz/internal/game"
)

// Statistics tracks aggregate results over a batch of simulated games
type Statistics struct {
	Games   int
	Stalled int // games cut off before any nertz pile emptied

	SumTurns  float64
	SumTurns2 float64   // sum of squares for variance calculation
	Turns     []float64 // all values, for median/percentile calculation

	SumWinnerScore     float64
	FoundationsCreated int
	WinsByPlayer       map[int]int
}

// Add records a completed game's result
func (s *Statistics) Add(result *game.GameResult) {
	turns := float64(result.TurnsPlayed)
	s.Games++
	s.SumTurns += turns
	s.SumTurns2 += turns * turns
	s.Turns = append(s.Turns, turns)

	if result.Winner >= 0 {
		s.SumWinnerScore += float64(result.FinalScores[result.Winner])
		if s.WinsByPlayer == nil {
			s.WinsByPlayer = make(map[int]int)
		}
		s.WinsByPlayer[result.Winner]++
	}
	s.FoundationsCreated += result.FoundationsCreated
}

// AddStalled records a game that hit the turn cutoff without finishing
func (s *Statistics) AddStalled() {
	s.Stalled++
}

// MeanTurns returns the arithmetic mean of turns per completed game
func (s *Statistics) MeanTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumTurns / float64(s.Games)
}

// Variance returns the sample variance of turns per game
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.MeanTurns()
	return (s.SumTurns2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of turns per game
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// MedianTurns returns the median turns per completed game
func (s *Statistics) MedianTurns() float64 {
	if len(s.Turns) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Turns))
	copy(sorted, s.Turns)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the interpolated p-quantile of turns per game
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Turns) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Turns))
	copy(sorted, s.Turns)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// MeanWinnerScore returns the mean final score of winning players
func (s *Statistics) MeanWinnerScore() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumWinnerScore / float64(s.Games)
}

// Validate checks internal consistency before reporting
func (s *Statistics) Validate() error {
	if len(s.Turns) != s.Games {
		return fmt.Errorf("recorded %d turn values for %d games", len(s.Turns), s.Games)
	}
	wins := 0
	for _, n := range s.WinsByPlayer {
		wins += n
	}
	if wins > s.Games {
		return fmt.Errorf("%d wins recorded across %d games", wins, s.Games)
	}
	return nil
}
