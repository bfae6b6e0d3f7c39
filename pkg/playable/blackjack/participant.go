package blackjack

import (
	"fmt"
	"terminal-blackjack/pkg/deck"
)

// Role determines what a participant is allowed to do at the table
type Role int

// Role constants
const (
	RolePlayer Role = iota
	RoleDealer
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleDealer:
		return "dealer"
	}

	panic(fmt.Sprintf("unknown role: %d", r))
}

// Participant is someone holding a hand at the table
// The dealer's account is never used
type Participant struct {
	Name    string      `json:"name"`
	Role    Role        `json:"role"`
	Hand    deck.Hand   `json:"hand"`
	Account ChipAccount `json:"account"`
}

// NewPlayer returns a new player with a starting balance
func NewPlayer(name string, chips int) *Participant {
	return &Participant{
		Name: name,
		Role: RolePlayer,
		Hand: deck.Hand{},
		Account: ChipAccount{
			Chips: chips,
		},
	}
}

// NewDealer returns the house
func NewDealer() *Participant {
	return &Participant{
		Name: "Dealer",
		Role: RoleDealer,
		Hand: deck.Hand{},
	}
}

// CanBet returns true if the participant is allowed to wager chips
func (p *Participant) CanBet() bool {
	return p.Role == RolePlayer
}

// Value returns the best total of the participant's hand
func (p *Participant) Value() int {
	return Value(p.Hand)
}

// IsBusted returns true if the participant's hand is over 21
func (p *Participant) IsBusted() bool {
	return IsBusted(p.Hand)
}

// ShouldHit returns the dealer policy decision for the participant's hand
// Only meaningful for the dealer
func (p *Participant) ShouldHit() bool {
	return DealerShouldHit(p.Hand)
}

// reset clears the hand and the bet marker before a new round
func (p *Participant) reset() {
	p.Hand.Clear()
	p.Account.Bet = 0
}
