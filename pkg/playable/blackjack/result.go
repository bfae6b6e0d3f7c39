package blackjack

// Result is how a round ended
type Result string

// Result constants
const (
	ResultNone            Result = ""
	ResultPlayerBust      Result = "player-bust"
	ResultSurrender       Result = "surrender"
	ResultDealerBust      Result = "dealer-bust"
	ResultDealerWins      Result = "dealer-wins"
	ResultPlayerWins      Result = "player-wins"
	ResultPush            Result = "push"
	ResultPlayerBlackjack Result = "player-blackjack"
)

// Label returns the end-of-round status shown to the player
func (r Result) Label() string {
	switch r {
	case ResultPlayerBust:
		return "BUSTED!"
	case ResultSurrender:
		return "Surrendered"
	case ResultDealerBust, ResultPlayerWins:
		return "You Win!"
	case ResultDealerWins:
		return "Dealer Wins"
	case ResultPush:
		return "Push (Tie)"
	case ResultPlayerBlackjack:
		return "Blackjack!"
	}

	return ""
}

// IsWin returns true if the player was paid
func (r Result) IsWin() bool {
	return r == ResultDealerBust || r == ResultPlayerWins || r == ResultPlayerBlackjack
}

// compareHands decides a round that reached the dealer's turn
func compareHands(player, dealer int) Result {
	switch {
	case dealer > Blackjack:
		return ResultDealerBust
	case dealer > player:
		return ResultDealerWins
	case dealer < player:
		return ResultPlayerWins
	}

	return ResultPush
}
