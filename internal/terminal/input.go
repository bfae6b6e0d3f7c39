package terminal

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"terminal-blackjack/pkg/playable/blackjack"
)

// Bet asks for a wager until a whole number is entered
// Range checks are left to the round so its errors reach the player.
func (c *Console) Bet(ctx context.Context, chips int) (int, error) {
	for {
		answer, err := c.ReadLine(ctx, fmt.Sprintf("Bet (you have %s)", FormatChips(chips)))
		if err != nil {
			return 0, err
		}

		amount, err := strconv.Atoi(strings.TrimPrefix(strings.ReplaceAll(answer, ",", ""), "$"))
		if err != nil {
			c.Println("Please enter a whole number of chips")
			continue
		}

		return amount, nil
	}
}

// Action asks for one of the legal actions by name or shortcut
func (c *Console) Action(ctx context.Context, legal []blackjack.Action) (blackjack.Action, error) {
	for {
		answer, err := c.ReadLine(ctx, ActionPrompt(legal))
		if err != nil {
			return 0, err
		}

		action, err := blackjack.ActionFromString(answer)
		if err != nil {
			c.Println(err.Error())
			continue
		}

		return action, nil
	}
}

// ActionPrompt lists the actions with their shortcuts, e.g. "[h] Hit / [s] Stand"
func ActionPrompt(legal []blackjack.Action) string {
	parts := make([]string, len(legal))
	for i, action := range legal {
		parts[i] = fmt.Sprintf("[%s] %s", action.Key(), action)
	}

	return strings.Join(parts, " / ")
}
