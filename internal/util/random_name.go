package util

import (
	"fmt"
	"terminal-blackjack/internal/rng"
)

var adjectives = []string{
	"Lucky", "Bold", "Cautious", "Sly", "Steady", "Reckless", "Quiet", "Grinning", "Sharp", "Patient", "Daring",
	"Red", "Black", "Golden", "Silver", "Velvet", "Smiling", "Cool", "Grand", "High", "Low",
}

var nicknames = []string{
	"Ace", "Jack", "Queen", "King", "Dealer", "Shark", "Whale", "Rounder", "Gambler", "Hustler", "Pit Boss",
	"Croupier", "Highroller", "Card Sharp", "Joker",
}

// random is swapped out by tests
var random rng.Generator = rng.Crypto{}

// GetRandomName returns a random name by combining an adjective with a card-table nickname
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	nicknamesIndex := random.Intn(len(nicknames))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], nicknames[nicknamesIndex])
}
