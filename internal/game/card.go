package game

import "fmt"

type Suit int

const (
	Spades Suit = iota
	Clubs
	Hearts
	Diamonds
)

var Suits = []Suit{Spades, Clubs, Hearts, Diamonds}

var suitNames = [...]string{"Spades", "Clubs", "Hearts", "Diamonds"}

var suitSymbols = [...]string{"♠", "♣", "♥", "♦"}

func (s Suit) String() string {
	if s < Spades || s > Diamonds {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Symbol returns the unicode pip for the suit.
func (s Suit) Symbol() string {
	if s < Spades || s > Diamonds {
		return "?"
	}
	return suitSymbols[s]
}

type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var rankNames = [...]string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

func (r Rank) String() string {
	if r < Ace || r > King {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Points is the blackjack value of the rank before any ace correction.
func (r Rank) Points() int {
	switch {
	case r == Ace:
		return 11
	case r >= Jack:
		return 10
	default:
		return int(r)
	}
}

// Card is a single playing card. Two cards are equal when suit and rank match.
type Card struct {
	Suit Suit
	Rank Rank
}

func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the card label, e.g. "4 of Spades".
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// AssetKey is the lookup key for the card face, e.g. "Spades4".
func (c Card) AssetKey() string {
	return c.Suit.String() + c.Rank.String()
}

// Short renders the card compactly for chat output, e.g. "10♥".
func (c Card) Short() string {
	return c.Rank.String() + c.Suit.Symbol()
}
