package game

type Hand struct {
	cards  []Card
	dealer bool
}

func NewHand(dealer bool) *Hand {
	return &Hand{
		cards:  make([]Card, 0, 10),
		dealer: dealer,
	}
}

func (h *Hand) AddCard(c Card) {
	h.cards = append(h.cards, c)
}

// Cards returns the cards in the order they were dealt.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

func (h *Hand) IsDealer() bool {
	return h.dealer
}

// Value is recomputed from the cards on every call.
func (h *Hand) Value() int {
	return CalculateScore(h.cards)
}

func (h *Hand) IsBust() bool {
	return IsBust(h.cards)
}

func (h *Hand) Is21() bool {
	return h.Value() == 21
}

// HandView is a read-only copy of a hand for rendering.
type HandView struct {
	Cards  []Card
	Value  int
	Dealer bool
}

func (h *Hand) View() HandView {
	return HandView{
		Cards:  h.Cards(),
		Value:  h.Value(),
		Dealer: h.dealer,
	}
}
