package blackjack

import (
	"errors"
	"fmt"
	"strings"
)

// NaturalRule decides what happens when the player is dealt a two-card 21
type NaturalRule int

// NaturalRule constants
const (
	// NaturalPlaysOut treats a natural like any other hand: the dealer plays and totals are compared
	NaturalPlaysOut NaturalRule = iota

	// NaturalThreeToTwo pays a natural 3:2 right after the deal, or pushes if the dealer also has one
	NaturalThreeToTwo
)

// String returns the rule name
func (n NaturalRule) String() string {
	switch n {
	case NaturalPlaysOut:
		return "plays-out"
	case NaturalThreeToTwo:
		return "three-to-two"
	}

	panic(fmt.Sprintf("unknown natural rule: %d", n))
}

// NaturalRuleFromString returns the NaturalRule based on the string
func NaturalRuleFromString(s string) (NaturalRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plays-out":
		return NaturalPlaysOut, nil
	case "three-to-two", "3:2":
		return NaturalThreeToTwo, nil
	}

	return -1, fmt.Errorf("unknown natural rule: %s", s)
}

// naturalPayout is the winnings multiplier for a natural under NaturalThreeToTwo
const naturalPayout = 1.5

// Options contains options for playing Blackjack
type Options struct {
	DeckCount      int
	AllowSurrender bool
	AllowDouble    bool
	NaturalRule    NaturalRule
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		DeckCount:      6,
		AllowSurrender: true,
		AllowDouble:    false,
		NaturalRule:    NaturalPlaysOut,
	}
}

// Validate returns an error if the options cannot be played
func (o Options) Validate() error {
	if o.DeckCount < 1 {
		return errors.New("deck count must be at least 1")
	}

	if o.NaturalRule != NaturalPlaysOut && o.NaturalRule != NaturalThreeToTwo {
		return fmt.Errorf("unknown natural rule: %d", o.NaturalRule)
	}

	return nil
}
