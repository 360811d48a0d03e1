package deck

import "testing"

func TestSuitColors(t *testing.T) {
	if Spades.IsRed() || Clubs.IsRed() {
		t.Error("spades and clubs should be black")
	}
	if !Hearts.IsRed() || !Diamonds.IsRed() {
		t.Error("hearts and diamonds should be red")
	}
}

func TestRankNext(t *testing.T) {
	next, ok := Ace.Next()
	if !ok || next != Two {
		t.Errorf("Expected Ace.Next() = Two, got %s (ok=%v)", next, ok)
	}

	next, ok = Queen.Next()
	if !ok || next != King {
		t.Errorf("Expected Queen.Next() = King, got %s (ok=%v)", next, ok)
	}

	if _, ok := King.Next(); ok {
		t.Error("King should have no next rank")
	}
}

func TestRankIndex(t *testing.T) {
	if Ace.Index() != 0 {
		t.Errorf("Expected Ace index 0, got %d", Ace.Index())
	}
	if King.Index() != 12 {
		t.Errorf("Expected King index 12, got %d", King.Index())
	}
}

func TestCardString(t *testing.T) {
	card := NewCard(Spades, Ace, 0)
	if card.String() != "A♠#0" {
		t.Errorf("Expected A♠#0, got %s", card.String())
	}

	card = NewCard(Diamonds, Ten, 3)
	if card.String() != "10♦#3" {
		t.Errorf("Expected 10♦#3, got %s", card.String())
	}
}

func TestCanStackOn(t *testing.T) {
	tests := []struct {
		name string
		card Card
		dest Card
		want bool
	}{
		{"red on black one lower", NewCard(Hearts, Five, 0), NewCard(Spades, Six, 0), true},
		{"black on red one lower", NewCard(Clubs, Ten, 1), NewCard(Diamonds, Jack, 0), true},
		{"same color", NewCard(Hearts, Five, 0), NewCard(Diamonds, Six, 0), false},
		{"wrong rank gap", NewCard(Hearts, Four, 0), NewCard(Spades, Six, 0), false},
		{"same rank", NewCard(Hearts, Six, 0), NewCard(Spades, Six, 0), false},
		{"king has no parent", NewCard(Hearts, King, 0), NewCard(Spades, Ace, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.CanStackOn(tt.dest); got != tt.want {
				t.Errorf("%s.CanStackOn(%s) = %v, want %v", tt.card, tt.dest, got, tt.want)
			}
		})
	}
}

func TestSameIncludesOwner(t *testing.T) {
	a := NewCard(Spades, Ace, 0)
	b := NewCard(Spades, Ace, 1)

	if a.Same(b) {
		t.Error("cards with different owners should not be the same")
	}
	if !a.Same(NewCard(Spades, Ace, 0)) {
		t.Error("identical cards should be the same")
	}
}
