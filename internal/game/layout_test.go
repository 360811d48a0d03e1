package game

import (
	"math"
	"testing"

	"github.com/lox/nertz/internal/randutil"
)

func TestPlayerPositionsOnCircle(t *testing.T) {
	table := NewTable(4, randutil.New(1), testLogger())
	center := Point{X: 0.5, Y: 0.5}

	for i := 0; i < 4; i++ {
		pos := table.PlayerPosition(i)
		dist := pos.DistanceTo(center)
		if math.Abs(dist-playerRadius) > 0.001 {
			t.Errorf("Player %d at distance %.4f from center, want %.2f", i, dist, playerRadius)
		}
	}

	// Four players sit at the cardinal points
	p0 := table.PlayerPosition(0)
	if math.Abs(p0.X-0.98) > 0.0001 || math.Abs(p0.Y-0.5) > 0.0001 {
		t.Errorf("Player 0 at (%.4f, %.4f), want (0.98, 0.5)", p0.X, p0.Y)
	}
	p2 := table.PlayerPosition(2)
	if math.Abs(p2.X-0.02) > 0.0001 || math.Abs(p2.Y-0.5) > 0.0001 {
		t.Errorf("Player 2 at (%.4f, %.4f), want (0.02, 0.5)", p2.X, p2.Y)
	}
}

func TestPlayerPositionsEvenlySpaced(t *testing.T) {
	table := NewTable(5, randutil.New(1), testLogger())

	// Adjacent players are equidistant around the circle
	first := table.PlayerPosition(0).DistanceTo(table.PlayerPosition(1))
	for i := 1; i < 5; i++ {
		next := table.PlayerPosition(i).DistanceTo(table.PlayerPosition((i + 1) % 5))
		if math.Abs(next-first) > 0.001 {
			t.Errorf("Spacing %d-%d is %.4f, want %.4f", i, (i+1)%5, next, first)
		}
	}
}

func TestPlaceFoundationIsMemoized(t *testing.T) {
	table := NewTable(2, randutil.New(1), testLogger())

	first := table.PlaceFoundation("foundation_0_spades")
	second := table.PlaceFoundation("foundation_0_spades")

	if first != second {
		t.Errorf("Repeated placement moved the foundation: %v vs %v", first, second)
	}

	pos, ok := table.FoundationPosition("foundation_0_spades")
	if !ok || pos != first {
		t.Error("FoundationPosition should return the placed position")
	}
}

func TestFoundationPositionUnknownID(t *testing.T) {
	table := NewTable(2, randutil.New(1), testLogger())
	if _, ok := table.FoundationPosition("foundation_0_hearts"); ok {
		t.Error("Unplaced foundation should not have a position")
	}
}

func TestPlacedFoundationsKeepMinimumDistance(t *testing.T) {
	table := NewTable(2, randutil.New(1), testLogger())

	ids := []string{
		"foundation_0_spades",
		"foundation_0_hearts",
		"foundation_1_clubs",
		"foundation_1_diamonds",
	}
	for _, id := range ids {
		table.PlaceFoundation(id)
	}

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, _ := table.FoundationPosition(ids[i])
			b, _ := table.FoundationPosition(ids[j])
			// Stored positions are rounded to 4 decimals, allow slack
			if a.DistanceTo(b) < foundationMinDistance-0.001 {
				t.Errorf("%s and %s only %.4f apart", ids[i], ids[j], a.DistanceTo(b))
			}
		}
	}
}

func TestPlacedPositionsAreRounded(t *testing.T) {
	table := NewTable(3, randutil.New(9), testLogger())
	pos := table.PlaceFoundation("foundation_2_clubs")

	if pos.X != round4(pos.X) || pos.Y != round4(pos.Y) {
		t.Errorf("Position (%v, %v) not rounded to 4 decimals", pos.X, pos.Y)
	}
}
