package blackjack

import "math"

// ChipAccount is a chip balance along with the bet for the current round
type ChipAccount struct {
	Chips int `json:"chips"`
	Bet   int `json:"bet"`
}

// PlaceBet moves amount from the balance into the bet
// Returns false, without changing anything, if the balance is too small.
// Zero and negative amounts are rejected by the round before they reach the account.
func (c *ChipAccount) PlaceBet(amount int) bool {
	if amount > c.Chips {
		return false
	}

	c.Chips -= amount
	c.Bet = amount
	return true
}

// Win returns the bet plus winnings of bet * multiplier, rounded down
func (c *ChipAccount) Win(multiplier float64) {
	c.Chips += c.Bet + int(math.Floor(float64(c.Bet)*multiplier))
	c.Bet = 0
}

// Push returns the bet
func (c *ChipAccount) Push() {
	c.Chips += c.Bet
	c.Bet = 0
}

// Lose clears the bet; the chips left the balance when the bet was placed
func (c *ChipAccount) Lose() {
	c.Bet = 0
}
