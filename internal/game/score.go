package game

// CalculateScore totals a hand. Every ace starts at 11; if the total
// goes over 21 and there is at least one ace, 10 comes off once,
// no matter how many aces there are. The result can still be over 21.
func CalculateScore(cards []Card) int {
	score := 0
	hasAce := false

	for _, c := range cards {
		score += c.Rank.Points()
		if c.Rank == Ace {
			hasAce = true
		}
	}

	if score > 21 && hasAce {
		score -= 10
	}

	return score
}

func IsBust(cards []Card) bool {
	return CalculateScore(cards) > 21
}

// IsNatural reports a two-card 21.
func IsNatural(cards []Card) bool {
	return len(cards) == 2 && CalculateScore(cards) == 21
}
