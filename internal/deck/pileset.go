package deck

import (
	"fmt"
	rand "math/rand/v2"
)

const (
	// RiverSlots is the number of tableau slots per player
	RiverSlots = 4
	// NertzSize is the number of cards dealt to the nertz pile
	NertzSize = 13
	// FlipSize is the number of cards moved per deck flip
	FlipSize = 3
)

// PileSet owns one player's five pile types. Cards only ever move
// between piles; they are never copied, so the multiset of cards across
// deck, stream, river, nertz and lake is always the player's original
// 52 cards. River slots are slices used as deques: the top is the last
// element, whole-pile river transfers pop from the front.
type PileSet struct {
	owner  int
	rng    *rand.Rand
	deck   []Card
	stream []Card
	river  [RiverSlots][]Card
	nertz  []Card
	lake   []Card
}

// NewPileSet creates an undealt pile set for the given player. The
// provided generator controls the shuffle; callers inject a seeded
// *rand.Rand for reproducible deals.
func NewPileSet(owner int, rng *rand.Rand) *PileSet {
	return &PileSet{owner: owner, rng: rng}
}

// Piles describes explicit pile contents for PileSetFromPiles.
type Piles struct {
	Deck   []Card
	Stream []Card
	River  [RiverSlots][]Card
	Nertz  []Card
	Lake   []Card
}

// PileSetFromPiles builds a pile set with exact contents, bypassing
// dealing. Used to construct known positions in tests and tooling.
func PileSetFromPiles(owner int, p Piles) *PileSet {
	ps := &PileSet{owner: owner}
	ps.deck = append(ps.deck, p.Deck...)
	ps.stream = append(ps.stream, p.Stream...)
	for i := range p.River {
		ps.river[i] = append(ps.river[i], p.River[i]...)
	}
	ps.nertz = append(ps.nertz, p.Nertz...)
	ps.lake = append(ps.lake, p.Lake...)
	return ps
}

// Owner returns the owning player's index
func (ps *PileSet) Owner() int {
	return ps.owner
}

// DealStartingHand builds and shuffles a fresh 52-card deck, deals one
// card to each river slot, 13 cards to nertz, and flips the first
// group into the stream.
func (ps *PileSet) DealStartingHand() *PileSet {
	ps.generateDeck()
	ps.shuffle()

	for i := 0; i < RiverSlots; i++ {
		card, _ := ps.dealCard()
		ps.river[i] = []Card{card}
	}
	for i := 0; i < NertzSize; i++ {
		card, _ := ps.dealCard()
		ps.nertz = append(ps.nertz, card)
	}
	ps.FlipIntoStream()

	return ps
}

func (ps *PileSet) generateDeck() {
	ps.deck = make([]Card, 0, Size)
	for suit := Spades; suit <= Diamonds; suit++ {
		for rank := Ace; rank <= King; rank++ {
			ps.deck = append(ps.deck, NewCard(suit, rank, ps.owner))
		}
	}
}

func (ps *PileSet) shuffle() {
	ps.rng.Shuffle(len(ps.deck), func(i, j int) {
		ps.deck[i], ps.deck[j] = ps.deck[j], ps.deck[i]
	})
}

// dealCard removes and returns the top card of the deck
func (ps *PileSet) dealCard() (Card, bool) {
	if len(ps.deck) == 0 {
		return Card{}, false
	}
	card := ps.deck[len(ps.deck)-1]
	ps.deck = ps.deck[:len(ps.deck)-1]
	return card, true
}

// FlipIntoStream moves up to FlipSize cards from the deck to the top of
// the stream. An empty deck is first refilled by recycling the entire
// stream in its existing order. If the deck runs out mid-flip, fewer
// cards are moved; there is no second recycle within one flip.
func (ps *PileSet) FlipIntoStream() {
	if len(ps.deck) == 0 {
		ps.deck = ps.stream
		ps.stream = nil
	}
	for i := 0; i < FlipSize; i++ {
		card, ok := ps.dealCard()
		if !ok {
			return
		}
		ps.stream = append(ps.stream, card)
	}
}

// TopNertz returns the playable (last-dealt) nertz card
func (ps *PileSet) TopNertz() (Card, bool) {
	if len(ps.nertz) == 0 {
		return Card{}, false
	}
	return ps.nertz[len(ps.nertz)-1], true
}

// PopNertz removes and returns the top nertz card
func (ps *PileSet) PopNertz() (Card, bool) {
	if len(ps.nertz) == 0 {
		return Card{}, false
	}
	card := ps.nertz[len(ps.nertz)-1]
	ps.nertz = ps.nertz[:len(ps.nertz)-1]
	return card, true
}

// TopStream returns the playable top card of the stream
func (ps *PileSet) TopStream() (Card, bool) {
	if len(ps.stream) == 0 {
		return Card{}, false
	}
	return ps.stream[len(ps.stream)-1], true
}

// PopStream removes and returns the top card of the stream
func (ps *PileSet) PopStream() (Card, bool) {
	if len(ps.stream) == 0 {
		return Card{}, false
	}
	card := ps.stream[len(ps.stream)-1]
	ps.stream = ps.stream[:len(ps.stream)-1]
	return card, true
}

// TopStreamCards returns the top count cards of the stream in pile
// order. Unlike the other accessors it fails when fewer than count
// cards are present rather than returning a short slice.
func (ps *PileSet) TopStreamCards(count int) ([]Card, error) {
	if len(ps.stream) < count {
		return nil, fmt.Errorf("stream has %d cards, need %d", len(ps.stream), count)
	}
	out := make([]Card, count)
	copy(out, ps.stream[len(ps.stream)-count:])
	return out, nil
}

// TopRiver returns the top (most recently pushed) card of a river slot
func (ps *PileSet) TopRiver(slot int) (Card, bool) {
	s := ps.river[slot]
	if len(s) == 0 {
		return Card{}, false
	}
	return s[len(s)-1], true
}

// BottomRiver returns the bottom card of a river slot. The bottom card
// is what must satisfy adjacency for a river-to-river transfer.
func (ps *PileSet) BottomRiver(slot int) (Card, bool) {
	s := ps.river[slot]
	if len(s) == 0 {
		return Card{}, false
	}
	return s[0], true
}

// PushRiver appends a card to the top of a river slot
func (ps *PileSet) PushRiver(slot int, card Card) {
	ps.river[slot] = append(ps.river[slot], card)
}

// PopRiverTop removes and returns the top card of a river slot
func (ps *PileSet) PopRiverTop(slot int) (Card, bool) {
	s := ps.river[slot]
	if len(s) == 0 {
		return Card{}, false
	}
	card := s[len(s)-1]
	ps.river[slot] = s[:len(s)-1]
	return card, true
}

// PopRiverBottom removes and returns the bottom card of a river slot
func (ps *PileSet) PopRiverBottom(slot int) (Card, bool) {
	s := ps.river[slot]
	if len(s) == 0 {
		return Card{}, false
	}
	card := s[0]
	ps.river[slot] = s[1:]
	return card, true
}

// RiverSlot returns a copy of a river slot's contents, bottom first
func (ps *PileSet) RiverSlot(slot int) []Card {
	out := make([]Card, len(ps.river[slot]))
	copy(out, ps.river[slot])
	return out
}

// AppendLake records a card successfully placed on a foundation
func (ps *PileSet) AppendLake(card Card) {
	ps.lake = append(ps.lake, card)
}

// DeckLen returns the number of cards remaining in the deck
func (ps *PileSet) DeckLen() int { return len(ps.deck) }

// StreamLen returns the number of cards in the stream
func (ps *PileSet) StreamLen() int { return len(ps.stream) }

// NertzLen returns the number of cards left in the nertz pile
func (ps *PileSet) NertzLen() int { return len(ps.nertz) }

// LakeLen returns the number of cards played to foundations
func (ps *PileSet) LakeLen() int { return len(ps.lake) }

// AllCards returns every card currently held across the five piles.
// Cards in the lake mirror this player's foundation plays, so the
// result is always the player's full 52-card deck.
func (ps *PileSet) AllCards() []Card {
	out := make([]Card, 0, Size)
	out = append(out, ps.deck...)
	out = append(out, ps.stream...)
	for i := range ps.river {
		out = append(out, ps.river[i]...)
	}
	out = append(out, ps.nertz...)
	out = append(out, ps.lake...)
	return out
}
