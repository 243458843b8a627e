package bot

import (
	"fmt"
	"strings"

	"blackjack-solo/internal/game"
)

const hiddenCard = "🂠"

// formatHand renders cards in deal order. A dealer hand keeps its first
// card face down and its total hidden unless reveal is set.
func formatHand(h game.HandView, reveal bool) string {
	parts := make([]string, 0, len(h.Cards))
	for i, c := range h.Cards {
		if h.Dealer && !reveal && i == 0 {
			parts = append(parts, hiddenCard)
			continue
		}
		parts = append(parts, c.Short())
	}

	out := strings.Join(parts, " ")
	if !h.Dealer || reveal {
		out += fmt.Sprintf(" (%d)", h.Value)
	}
	return out
}

func outcomeText(w game.Winner) string {
	switch w {
	case game.WinnerPlayer:
		return "🎉 You win!"
	case game.WinnerPush:
		return "🤝 Push!"
	case game.WinnerDealer:
		return "🏦 House wins!"
	}
	return ""
}

func blackjackText(snap game.Snapshot) string {
	switch snap.Blackjack {
	case game.BlackjackPlayer:
		return "🎰 BLACKJACK! You have 21."
	case game.BlackjackDealer:
		return "🎰 BLACKJACK for the dealer."
	case game.BlackjackBoth:
		if game.IsNatural(snap.Player.Cards) {
			return "🎰 BLACKJACK on both sides."
		}
		return "🎯 You and the dealer are both on 21."
	}
	return ""
}

func renderTable(snap game.Snapshot) string {
	reveal := snap.RevealDealer()

	var sb strings.Builder
	fmt.Fprintf(&sb, "🃏 Dealer: %s\n", formatHand(snap.Dealer, reveal))
	fmt.Fprintf(&sb, "🎴 You: %s\n\n", formatHand(snap.Player, true))
	sb.WriteString(snap.PlayerScoreText())

	switch {
	case snap.Resolved():
		if snap.Winner == game.WinnerDealer && snap.Player.Value > 21 {
			sb.WriteString("\n\n💥 Bust!")
		}
		sb.WriteString("\n\n" + outcomeText(snap.Winner))
	case snap.BlackjackReveal:
		sb.WriteString("\n\n" + blackjackText(snap))
		sb.WriteString("\nHit or stand to finish the round.")
	}

	return sb.String()
}
