package game

import "testing"

func cards(ranks ...Rank) []Card {
	out := make([]Card, len(ranks))
	for i, r := range ranks {
		out[i] = Card{Suit: Suits[i%len(Suits)], Rank: r}
	}
	return out
}

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		name  string
		cards []Card
		want  int
	}{
		{"empty", nil, 0},
		{"two and nine", cards(Two, Nine), 11},
		{"ace as 11", cards(Ace, Nine), 20},
		{"two aces corrected once", cards(Ace, Ace, Nine), 21},
		{"face cards", cards(King, Queen), 20},
		{"natural", cards(Ace, King), 21},
		{"ace drops to 1", cards(Ace, Nine, Five), 15},
		{"three aces still bust", cards(Ace, Ace, Ace), 23},
		{"bust without ace", cards(Ten, Five, Seven), 22},
		{"two aces", cards(Ace, Ace), 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateScore(tt.cards); got != tt.want {
				t.Errorf("CalculateScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsNatural(t *testing.T) {
	tests := []struct {
		name  string
		cards []Card
		want  bool
	}{
		{"ace king", cards(Ace, King), true},
		{"ten ace", cards(Ten, Ace), true},
		{"three card 21", cards(Seven, Seven, Seven), false},
		{"20", cards(King, Queen), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNatural(tt.cards); got != tt.want {
				t.Errorf("IsNatural() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHand_ValueRecomputed(t *testing.T) {
	h := NewHand(false)
	if h.Value() != 0 {
		t.Fatalf("empty hand value = %d", h.Value())
	}

	h.AddCard(Card{Spades, Ace})
	if h.Value() != 11 {
		t.Errorf("value after ace = %d, want 11", h.Value())
	}

	h.AddCard(Card{Hearts, Nine})
	if h.Value() != 20 {
		t.Errorf("value after nine = %d, want 20", h.Value())
	}

	h.AddCard(Card{Clubs, Five})
	if h.Value() != 15 {
		t.Errorf("value after five = %d, want 15", h.Value())
	}
	if h.IsBust() {
		t.Error("IsBust() on 15")
	}

	h.AddCard(Card{Clubs, King})
	if !h.IsBust() {
		t.Errorf("IsBust() false on %d", h.Value())
	}
}

func TestHand_CardsInDealOrder(t *testing.T) {
	h := NewHand(true)
	in := cards(Four, King, Ace)
	for _, c := range in {
		h.AddCard(c)
	}

	got := h.Cards()
	for i := range in {
		if got[i] != in[i] {
			t.Fatalf("Cards()[%d] = %v, want %v", i, got[i], in[i])
		}
	}

	got[0] = Card{Diamonds, Two}
	if h.Cards()[0] != in[0] {
		t.Error("Cards() exposes the hand's backing slice")
	}

	v := h.View()
	if !v.Dealer || v.Value != 15 || len(v.Cards) != 3 {
		t.Errorf("View() = %+v", v)
	}
}
