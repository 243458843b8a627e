package bot

import (
	"strings"
	"testing"

	"blackjack-solo/internal/game"
)

func TestFormatHand(t *testing.T) {
	dealer := game.HandView{
		Cards:  []game.Card{c(game.Hearts, game.Ace), c(game.Spades, game.Ten)},
		Value:  21,
		Dealer: true,
	}
	player := game.HandView{
		Cards: []game.Card{c(game.Clubs, game.Two), c(game.Diamonds, game.Queen)},
		Value: 12,
	}

	tests := []struct {
		name   string
		hand   game.HandView
		reveal bool
		want   string
	}{
		{"dealer hidden", dealer, false, hiddenCard + " 10♠"},
		{"dealer revealed", dealer, true, "A♥ 10♠ (21)"},
		{"player always shown", player, false, "2♣ Q♦ (12)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatHand(tt.hand, tt.reveal); got != tt.want {
				t.Errorf("formatHand() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderTable_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		deck    []game.Card
		want    string
		notWant string
	}{
		{
			name: "push",
			deck: []game.Card{c(game.Spades, game.Ten), c(game.Hearts, game.Ten), c(game.Clubs, game.Nine), c(game.Diamonds, game.Nine)},
			want: "🤝 Push!",
		},
		{
			name:    "dealer higher",
			deck:    []game.Card{c(game.Spades, game.Ten), c(game.Hearts, game.King), c(game.Clubs, game.Seven), c(game.Diamonds, game.Queen)},
			want:    "🏦 House wins!",
			notWant: "Bust!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck := append(tt.deck, c(game.Clubs, game.Two))
			s := game.NewStateFromDeck(game.NewDeckFrom(deck...))
			snap, err := s.Stand()
			if err != nil {
				t.Fatal(err)
			}

			text := renderTable(snap)
			if !strings.Contains(text, tt.want) {
				t.Errorf("missing %q in:\n%s", tt.want, text)
			}
			if tt.notWant != "" && strings.Contains(text, tt.notWant) {
				t.Errorf("unexpected %q in:\n%s", tt.notWant, text)
			}
			if strings.Contains(text, hiddenCard) {
				t.Errorf("dealer still hidden after stand:\n%s", text)
			}
		})
	}
}

func TestRenderTable_BothOn21(t *testing.T) {
	s := game.NewStateFromDeck(game.NewDeckFrom(
		c(game.Spades, game.Five), c(game.Hearts, game.Ace),
		c(game.Clubs, game.Six), c(game.Diamonds, game.King),
		c(game.Hearts, game.Ten), c(game.Clubs, game.Two),
	))

	text := renderTable(s.Snapshot())
	if !strings.Contains(text, "BLACKJACK for the dealer.") || strings.Contains(text, hiddenCard) {
		t.Errorf("dealer natural not revealed:\n%s", text)
	}

	snap, err := s.Hit()
	if err != nil {
		t.Fatal(err)
	}
	text = renderTable(snap)
	if !strings.Contains(text, "both on 21") {
		t.Errorf("three-card 21 against a natural:\n%s", text)
	}
	if strings.Contains(text, "Push!") {
		t.Errorf("round shown as over:\n%s", text)
	}
}
