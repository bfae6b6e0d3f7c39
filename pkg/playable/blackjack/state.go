package blackjack

import (
	"strconv"
	"terminal-blackjack/pkg/deck"
)

// TableState is everything a presenter needs to draw the table
type TableState struct {
	State RoundState `json:"state"`

	DealerHand deck.Hand `json:"dealerHand"`
	// HideHoleCard is true while the dealer's second card should be shown face down
	HideHoleCard bool `json:"hideHoleCard"`
	// DealerValue only counts the visible cards
	DealerValue int `json:"dealerValue"`

	PlayerName  string    `json:"playerName"`
	PlayerHand  deck.Hand `json:"playerHand"`
	PlayerValue int       `json:"playerValue"`
	PlayerSoft  bool      `json:"playerSoft"`

	Chips int `json:"chips"`
	Bet   int `json:"bet"`

	Status  string `json:"status"`
	Result  Result `json:"result,omitempty"`
	Net     int    `json:"net"`
	Message string `json:"message,omitempty"`

	Actions        []Action `json:"actions"`
	CardsRemaining int      `json:"cardsRemaining"`
}

// TableState returns a snapshot of the round
// Hands are copied, so the snapshot is safe to keep after the round moves on.
func (r *Round) TableState() *TableState {
	hide := r.State == RoundStateDealing || r.State == RoundStatePlayerTurn
	dealerVisible := r.dealer.Hand
	if hide && len(dealerVisible) > 1 {
		dealerVisible = dealerVisible[:1]
	}

	actions := r.getActions()
	if actions == nil {
		actions = []Action{}
	}

	ts := &TableState{
		State:          r.State,
		DealerHand:     r.dealer.Hand.Clone(),
		HideHoleCard:   hide,
		DealerValue:    Value(dealerVisible),
		PlayerName:     r.player.Name,
		PlayerHand:     r.player.Hand.Clone(),
		PlayerValue:    r.player.Value(),
		PlayerSoft:     IsSoft(r.player.Hand),
		Chips:          r.player.Account.Chips,
		Bet:            r.player.Account.Bet,
		Status:         r.status(),
		Actions:        actions,
		CardsRemaining: r.shoe.CardsLeft(),
	}

	if r.State == RoundStateComplete {
		ts.Result = r.Result
		ts.Net = r.Net
		ts.Message = formatNet(r.Net)
	}

	return ts
}

func (r *Round) status() string {
	switch r.State {
	case RoundStateBetting:
		return "Place your bet"
	case RoundStateDealing:
		return "Dealing"
	case RoundStatePlayerTurn:
		return "Your move"
	case RoundStateDealerTurn:
		return "Dealer..."
	case RoundStateSettlement:
		return "Settling"
	case RoundStateComplete:
		return r.Result.Label()
	}

	return ""
}

func formatNet(net int) string {
	switch {
	case net > 0:
		return "+$" + strconv.Itoa(net)
	case net < 0:
		return "-$" + strconv.Itoa(-net)
	}

	return "$0"
}
