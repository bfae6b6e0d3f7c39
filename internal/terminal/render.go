package terminal

import (
	"fmt"
	"fortio.org/terminal/ansipixels"
	"github.com/dustin/go-humanize"
	"regexp"
	"strconv"
	"strings"
	"terminal-blackjack/pkg/deck"
	"terminal-blackjack/pkg/playable"
	"terminal-blackjack/pkg/playable/blackjack"
)

var moneyRx = regexp.MustCompile(`\$\{(-?\d+)\}`)

// FormatChips formats a chip count like $1,500
func FormatChips(chips int) string {
	return "$" + humanize.Comma(int64(chips))
}

// FormatLog renders a log message, expanding ${n} amounts
func FormatLog(lm *playable.LogMessage) string {
	return moneyRx.ReplaceAllStringFunc(lm.String(), func(match string) string {
		n, err := strconv.Atoi(moneyRx.FindStringSubmatch(match)[1])
		if err != nil {
			return match
		}

		return FormatChips(n)
	})
}

// RoundChanged draws the table
func (c *Console) RoundChanged(state *blackjack.TableState) {
	// only draw the table once cards are out, dealer draws are covered by the log
	switch state.State {
	case blackjack.RoundStateBetting, blackjack.RoundStateDealing, blackjack.RoundStateDealerTurn:
		return
	}

	c.Println(RenderTable(state, c.Width(), c.colored()))
}

// Notice shows a message to the player
func (c *Console) Notice(message string) {
	c.Println("! " + message)
}

// Log prints the round's log messages
func (c *Console) Log(messages []*playable.LogMessage) {
	for _, lm := range messages {
		c.Println("  " + FormatLog(lm))
	}
}

// RenderTable returns the table as text
// With colored set, cards are drawn as white faces with red or black suits.
func RenderTable(state *blackjack.TableState, width int, colored bool) string {
	rule := strings.Repeat("─", width)
	var b strings.Builder
	b.WriteString(rule + "\n")

	dealerValue := strconv.Itoa(state.DealerValue)
	if state.HideHoleCard {
		dealerValue += " + ?"
	}
	fmt.Fprintf(&b, "%-10s %s (%s)\n", "Dealer", renderHand(state.DealerHand, state.HideHoleCard, colored), dealerValue)

	playerValue := strconv.Itoa(state.PlayerValue)
	if state.PlayerSoft {
		playerValue = "soft " + playerValue
	}
	fmt.Fprintf(&b, "%-10s %s (%s)\n", state.PlayerName, renderHand(state.PlayerHand, false, colored), playerValue)

	fmt.Fprintf(&b, "Chips: %s   Bet: %s   Cards left: %s\n",
		FormatChips(state.Chips), FormatChips(state.Bet), humanize.Comma(int64(state.CardsRemaining)))

	if state.Message != "" {
		fmt.Fprintf(&b, "%s  %s\n", state.Status, state.Message)
	} else {
		b.WriteString(state.Status + "\n")
	}

	b.WriteString(rule)
	return b.String()
}

func renderHand(hand deck.Hand, hideHoleCard, colored bool) string {
	if hideHoleCard && len(hand) > 1 {
		hand = hand[:1]
	}

	cards := make([]string, 0, len(hand)+1)
	for _, card := range hand {
		cards = append(cards, renderCard(card, colored))
	}

	if hideHoleCard {
		if colored {
			cards = append(cards, ansipixels.WhiteBG+ansipixels.Black+"░░"+ansipixels.Reset)
		} else {
			cards = append(cards, "??")
		}
	}

	return strings.Join(cards, " ")
}

func renderCard(card *deck.Card, colored bool) string {
	if !colored {
		return card.String()
	}

	ink := ansipixels.Black
	if card.Suit == deck.Hearts || card.Suit == deck.Diamonds {
		ink = ansipixels.Red
	}

	return ansipixels.WhiteBG + ink + card.String() + ansipixels.Reset
}
