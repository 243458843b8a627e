package game

import "math/rand"

const DeckSize = 52

type Deck struct {
	cards []Card
}

// NewDeck returns the full unshuffled deck, suit by suit, ace to king.
func NewDeck() *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
	}

	for _, s := range Suits {
		for _, r := range Ranks {
			d.cards = append(d.cards, Card{Suit: s, Rank: r})
		}
	}

	return d
}

// NewDeckFrom builds a stacked deck; the first card given is dealt first.
func NewDeckFrom(cards ...Card) *Deck {
	d := &Deck{
		cards: make([]Card, len(cards)),
	}
	copy(d.cards, cards)
	return d
}

// Shuffle does nothing once one card or fewer is left.
func (d *Deck) Shuffle() {
	if len(d.cards) <= 1 {
		return
	}

	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal takes the front card. The last card of a deck is never dealt:
// ok is false whenever one card or fewer remains.
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) <= 1 {
		return Card{}, false
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in deal order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
