package game

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an action is not allowed in the
// current phase. The round is left untouched.
var ErrInvalidTransition = errors.New("invalid transition")

type Phase int

const (
	PhaseDealing Phase = iota
	PhasePlayerTurn
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseDealing:
		return "dealing"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseResolved:
		return "resolved"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

type Winner int

const (
	WinnerNone Winner = iota
	WinnerPlayer
	WinnerDealer
	WinnerPush
)

func (w Winner) String() string {
	switch w {
	case WinnerNone:
		return "none"
	case WinnerPlayer:
		return "player"
	case WinnerDealer:
		return "dealer"
	case WinnerPush:
		return "push"
	}
	return fmt.Sprintf("Winner(%d)", int(w))
}

// Blackjack tells who is sitting on 21 right now. It is informational
// and never ends a round by itself.
type Blackjack int

const (
	BlackjackNone Blackjack = iota
	BlackjackPlayer
	BlackjackDealer
	BlackjackBoth
)

func (b Blackjack) String() string {
	switch b {
	case BlackjackNone:
		return "none"
	case BlackjackPlayer:
		return "player"
	case BlackjackDealer:
		return "dealer"
	case BlackjackBoth:
		return "both"
	}
	return fmt.Sprintf("Blackjack(%d)", int(b))
}

// Leader maps the signal to the side it favours; both means push.
func (b Blackjack) Leader() Winner {
	switch b {
	case BlackjackPlayer:
		return WinnerPlayer
	case BlackjackDealer:
		return WinnerDealer
	case BlackjackBoth:
		return WinnerPush
	}
	return WinnerNone
}

// State is one round: a deck, the player's hand and the dealer's hand.
// A round is never reused; start a new one with NewState.
type State struct {
	deck   *Deck
	player *Hand
	dealer *Hand
	phase  Phase
	winner Winner
}

// NewState shuffles a fresh deck and deals the opening hands.
func NewState() *State {
	d := NewDeck()
	d.Shuffle()
	return NewStateFromDeck(d)
}

// NewStateFromDeck deals the opening hands from d as it is:
// player, dealer, player, dealer.
func NewStateFromDeck(d *Deck) *State {
	s := &State{
		deck:   d,
		player: NewHand(false),
		dealer: NewHand(true),
		phase:  PhaseDealing,
	}

	for i := 0; i < 2; i++ {
		s.dealTo(s.player)
		s.dealTo(s.dealer)
	}

	s.phase = PhasePlayerTurn
	return s
}

func (s *State) dealTo(h *Hand) bool {
	card, ok := s.deck.Deal()
	if !ok {
		return false
	}
	h.AddCard(card)
	return true
}

func (s *State) resolve(w Winner) {
	s.winner = w
	s.phase = PhaseResolved
}

func (s *State) Phase() Phase {
	return s.phase
}

func (s *State) Winner() Winner {
	return s.winner
}

func (s *State) IsActive() bool {
	return s.phase == PhasePlayerTurn
}

// DeckRemaining is the number of cards left undealt.
func (s *State) DeckRemaining() int {
	return s.deck.Remaining()
}

func (s *State) PlayerIsOver() bool {
	return s.player.IsBust()
}

// SomeoneHasBlackjack reports which hands currently total 21.
func (s *State) SomeoneHasBlackjack() Blackjack {
	player := s.player.Is21()
	dealer := s.dealer.Is21()

	switch {
	case player && dealer:
		return BlackjackBoth
	case player:
		return BlackjackPlayer
	case dealer:
		return BlackjackDealer
	}
	return BlackjackNone
}

// Hit deals one card to the player. Reaching 21 while the dealer is not
// on 21 wins; going over loses. If the deck will not deal, nothing changes.
func (s *State) Hit() (Snapshot, error) {
	if s.phase != PhasePlayerTurn {
		return s.Snapshot(), fmt.Errorf("hit in phase %s: %w", s.phase, ErrInvalidTransition)
	}

	if !s.dealTo(s.player) {
		return s.Snapshot(), nil
	}

	if s.SomeoneHasBlackjack() == BlackjackPlayer {
		s.resolve(WinnerPlayer)
	} else if s.player.IsBust() {
		s.resolve(WinnerDealer)
	}

	return s.Snapshot(), nil
}

// Stand ends the player's turn and compares totals. The dealer keeps the
// cards it was dealt and does not draw.
func (s *State) Stand() (Snapshot, error) {
	if s.phase != PhasePlayerTurn {
		return s.Snapshot(), fmt.Errorf("stand in phase %s: %w", s.phase, ErrInvalidTransition)
	}

	playerScore := s.player.Value()
	dealerScore := s.dealer.Value()

	switch {
	case playerScore == dealerScore:
		s.resolve(WinnerPush)
	case playerScore > dealerScore:
		s.resolve(WinnerPlayer)
	default:
		s.resolve(WinnerDealer)
	}

	return s.Snapshot(), nil
}

// PlayerScoreText is the player's total as shown under the table.
func (s *State) PlayerScoreText() string {
	return scoreText(s.player.Value())
}

func scoreText(v int) string {
	return fmt.Sprintf("Your hand: %d", v)
}

// Snapshot is everything a view needs to draw the table.
type Snapshot struct {
	Phase  Phase
	Player HandView
	Dealer HandView
	Winner Winner
	// Blackjack is the current 21 signal, computed whatever the phase.
	Blackjack Blackjack
	// BlackjackReveal is set while the round is open and someone holds 21.
	// The dealer's hole card is shown early in that case.
	BlackjackReveal bool
}

func (s *State) Snapshot() Snapshot {
	bj := s.SomeoneHasBlackjack()
	return Snapshot{
		Phase:           s.phase,
		Player:          s.player.View(),
		Dealer:          s.dealer.View(),
		Winner:          s.winner,
		Blackjack:       bj,
		BlackjackReveal: s.winner == WinnerNone && bj != BlackjackNone,
	}
}

func (s Snapshot) Resolved() bool {
	return s.Phase == PhaseResolved
}

func (s Snapshot) PlayerScoreText() string {
	return scoreText(s.Player.Value)
}

// RevealDealer reports whether the dealer's first card should be face up.
func (s Snapshot) RevealDealer() bool {
	return s.Resolved() || s.BlackjackReveal
}

// Outcome is the winner, or during a blackjack reveal the side in front.
func (s Snapshot) Outcome() Winner {
	if s.Winner != WinnerNone {
		return s.Winner
	}
	if s.BlackjackReveal {
		return s.Blackjack.Leader()
	}
	return WinnerNone
}
