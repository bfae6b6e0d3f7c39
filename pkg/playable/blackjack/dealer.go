package blackjack

import "terminal-blackjack/pkg/deck"

// dealerStandsOn is the lowest total the dealer will stand on, soft or hard
const dealerStandsOn = 17

// DealerShouldHit is the dealer's entire strategy: draw on 16 or less, stand on 17 or more
func DealerShouldHit(hand deck.Hand) bool {
	return Value(hand) < dealerStandsOn
}
