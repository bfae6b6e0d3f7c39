package blackjack

import "terminal-blackjack/pkg/deck"

// Blackjack is the best possible hand total
const Blackjack = 21

// Value returns the best total for the hand
// Every ace starts at 11 and is demoted to 1, one at a time, while the hand would otherwise bust.
func Value(hand deck.Hand) int {
	total, _ := value(hand)
	return total
}

// value returns the total and the number of aces still counted as 11
func value(hand deck.Hand) (int, int) {
	total := 0
	aces := 0
	for _, card := range hand {
		total += card.BaseValue()
		if card.IsAce() {
			aces++
		}
	}

	for total > Blackjack && aces > 0 {
		total -= 10
		aces--
	}

	return total, aces
}

// IsBusted returns true if the hand is over 21
func IsBusted(hand deck.Hand) bool {
	return Value(hand) > Blackjack
}

// IsNatural returns true if the hand is a two-card 21
func IsNatural(hand deck.Hand) bool {
	return len(hand) == 2 && Value(hand) == Blackjack
}

// IsSoft returns true if at least one ace is being counted as 11
func IsSoft(hand deck.Hand) bool {
	_, aces := value(hand)
	return aces > 0
}
