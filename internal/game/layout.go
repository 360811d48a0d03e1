package game

import (
	"math"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
)

// Spatial layout constants. Positions live in a normalized unit square;
// players sit on a perimeter circle and foundations cluster near the
// center with jitter.
const (
	playerRadius          = 0.48
	foundationMinDistance = 0.1
	jitterBaseRadius      = 0.05
	jitterGrowth          = 0.01
	placementAttempts     = 100
)

// Point is a position in the normalized 2D layout space
type Point struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance to another point
func (p Point) DistanceTo(q Point) float64 {
	return math.Sqrt((p.X-q.X)*(p.X-q.X) + (p.Y-q.Y)*(p.Y-q.Y))
}

// Table assigns spatial positions to players and foundations. It holds
// no card or pile data; identifiers returned here key into the game
// state. All stored positions are rounded to 4 decimal digits so
// distance comparisons reproduce exactly across recomputation.
type Table struct {
	playerCount int
	rng         *rand.Rand
	logger      *log.Logger
	players     []Point
	foundations map[string]Point
}

// NewTable lays out playerCount positions evenly spaced on a circle of
// radius 0.48 centered at (0.5, 0.5). The generator drives foundation
// jitter sampling.
func NewTable(playerCount int, rng *rand.Rand, logger *log.Logger) *Table {
	t := &Table{
		playerCount: playerCount,
		rng:         rng,
		logger:      logger,
		players:     make([]Point, playerCount),
		foundations: make(map[string]Point),
	}
	step := 2 * math.Pi / float64(playerCount)
	for i := 0; i < playerCount; i++ {
		angle := float64(i) * step
		t.players[i] = Point{
			X: round4(0.5 + playerRadius*math.Cos(angle)),
			Y: round4(0.5 + playerRadius*math.Sin(angle)),
		}
	}
	return t
}

// PlayerPosition returns a player's fixed perimeter position
func (t *Table) PlayerPosition(player int) Point {
	return t.players[player]
}

// FoundationPosition returns the placed position for a foundation
func (t *Table) FoundationPosition(id string) (Point, bool) {
	p, ok := t.foundations[id]
	return p, ok
}

// PlaceFoundation assigns a jittered near-center position to the given
// identifier and returns it. Placement is memoized: repeated calls for
// the same identifier return the stored position, so speculative move
// generation may call it freely.
//
// A candidate is accepted when it is at least foundationMinDistance
// from every existing foundation; the search radius widens per attempt
// and after placementAttempts the last candidate is kept regardless.
func (t *Table) PlaceFoundation(id string) Point {
	if p, ok := t.foundations[id]; ok {
		return p
	}

	var candidate Point
	for attempt := 0; attempt < placementAttempts; attempt++ {
		radius := jitterBaseRadius + float64(attempt)*jitterGrowth
		candidate = Point{
			X: clamp01(0.5 + t.jitter(radius)),
			Y: clamp01(0.5 + t.jitter(radius)),
		}

		tooClose := false
		for _, other := range t.foundations {
			if candidate.DistanceTo(other) < foundationMinDistance {
				tooClose = true
				break
			}
		}
		if !tooClose {
			t.logger.Debug("placed foundation", "id", id, "attempts", attempt+1, "x", candidate.X, "y", candidate.Y)
			candidate = Point{X: round4(candidate.X), Y: round4(candidate.Y)}
			t.foundations[id] = candidate
			return candidate
		}
	}

	t.logger.Warn("could not place foundation without overlap", "id", id, "attempts", placementAttempts)
	candidate = Point{X: round4(candidate.X), Y: round4(candidate.Y)}
	t.foundations[id] = candidate
	return candidate
}

func (t *Table) jitter(radius float64) float64 {
	return t.rng.Float64()*2*radius - radius
}

func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
