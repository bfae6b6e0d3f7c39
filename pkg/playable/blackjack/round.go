package blackjack

import (
	"fmt"
	"terminal-blackjack/pkg/deck"
	"terminal-blackjack/pkg/playable"
)

// RoundState is the state of the current round
type RoundState string

// RoundState constants
const (
	// RoundStateBetting is before the bet is placed and before any cards have been dealt
	RoundStateBetting RoundState = "betting"

	// RoundStateDealing means the initial two cards each are being dealt
	RoundStateDealing RoundState = "dealing"

	// RoundStatePlayerTurn means we are waiting for the player to act
	RoundStatePlayerTurn RoundState = "player-turn"

	// RoundStateDealerTurn means the dealer is drawing cards
	RoundStateDealerTurn RoundState = "dealer-turn"

	// RoundStateSettlement means the hands are being compared and chips paid out
	RoundStateSettlement RoundState = "settlement"

	// RoundStateComplete means the round has been settled
	RoundStateComplete RoundState = "complete"
)

// Observer is notified after every state transition
type Observer interface {
	RoundChanged(state *TableState)
}

// Round is a single hand of Blackjack between one player and the dealer
type Round struct {
	State  RoundState
	Result Result

	// Net is the change to the player's balance once the round is settled
	Net int

	options  Options
	shoe     *deck.Shoe
	player   *Participant
	dealer   *Participant
	observer Observer

	actionCount   int
	startingChips int
	settled       bool
	logs          []*playable.LogMessage
}

// NewRound returns a new Round object
// Both hands are cleared and the player's bet marker is reset.
func NewRound(opts Options, shoe *deck.Shoe, player, dealer *Participant) *Round {
	if !player.CanBet() {
		panic("player must have the player role")
	}

	if dealer.Role != RoleDealer {
		panic("dealer must have the dealer role")
	}

	player.reset()
	dealer.reset()

	return &Round{
		State:   RoundStateBetting,
		options: opts,
		shoe:    shoe,
		player:  player,
		dealer:  dealer,

		startingChips: player.Account.Chips,
	}
}

// SetObserver registers the observer that receives the table state after every transition
func (r *Round) SetObserver(o Observer) {
	r.observer = o
}

// PlaceBet takes the player's bet and deals the initial cards
// A rejected bet leaves the round and the player's chips untouched.
func (r *Round) PlaceBet(amount int) error {
	if r.State == RoundStateComplete {
		return ErrRoundOver
	}

	if r.State != RoundStateBetting {
		return fmt.Errorf("cannot place a bet from state: %s", r.State)
	}

	if amount <= 0 {
		return ErrInvalidBet
	}

	if !r.player.Account.PlaceBet(amount) {
		return ErrInsufficientChips
	}

	r.log(r.player.Name, "{} bet ${%d}", amount)
	return r.deal()
}

// deal must only be called from PlaceBet()
func (r *Round) deal() error {
	r.setState(RoundStateDealing)

	for i := 0; i < 2; i++ {
		r.player.Hand.AddCard(r.shoe.Draw())
		r.dealer.Hand.AddCard(r.shoe.Draw())
	}

	r.log(r.player.Name, "{} was dealt %s (%d)", r.player.Hand, r.player.Value())

	if r.options.NaturalRule == NaturalThreeToTwo && IsNatural(r.player.Hand) {
		r.State = RoundStateSettlement
		if IsNatural(r.dealer.Hand) {
			r.log(r.dealer.Name, "{} also has blackjack")
			return r.settle(ResultPush)
		}

		return r.settle(ResultPlayerBlackjack)
	}

	r.setState(RoundStatePlayerTurn)
	return nil
}

// Actions returns the actions the player may take right now
func (r *Round) Actions() []Action {
	return r.getActions()
}

// Act applies the player's action
// Standing, or doubling without busting, plays the dealer's turn and settles the round before returning.
func (r *Round) Act(action Action) error {
	if r.State == RoundStateComplete {
		return ErrRoundOver
	}

	if r.State != RoundStatePlayerTurn {
		return fmt.Errorf("cannot %s from state: %s", action, r.State)
	}

	if !r.canTakeAction(action) {
		if action == ActionDouble && r.options.AllowDouble && r.isFirstAction() {
			return ErrInsufficientChipsForDouble
		}

		return fmt.Errorf("%w: %s", ErrIllegalAction, action)
	}

	r.actionCount++

	switch action {
	case ActionHit:
		return r.hit()
	case ActionStand:
		r.log(r.player.Name, "{} stands on %d", r.player.Value())
		return r.playDealer()
	case ActionDouble:
		return r.double()
	case ActionSurrender:
		return r.surrender()
	}

	panic(fmt.Sprintf("unhandled action: %d", action))
}

func (r *Round) hit() error {
	card := r.shoe.Draw()
	r.player.Hand.AddCard(card)
	r.logCard(r.player.Name, card, "{} hits (%d)", r.player.Value())

	if r.player.IsBusted() {
		r.State = RoundStateSettlement
		return r.settle(ResultPlayerBust)
	}

	r.notify()
	return nil
}

func (r *Round) double() error {
	account := &r.player.Account
	account.Chips -= account.Bet
	account.Bet *= 2

	card := r.shoe.Draw()
	r.player.Hand.AddCard(card)
	r.logCard(r.player.Name, card, "{} doubles down to ${%d} (%d)", account.Bet, r.player.Value())

	if r.player.IsBusted() {
		r.State = RoundStateSettlement
		return r.settle(ResultPlayerBust)
	}

	return r.playDealer()
}

// surrender gives back half the bet, rounded down, and ends the round
func (r *Round) surrender() error {
	r.log(r.player.Name, "{} surrenders")
	r.State = RoundStateSettlement
	return r.settle(ResultSurrender)
}

// playDealer draws for the dealer until the policy says stand, then compares hands
func (r *Round) playDealer() error {
	r.setState(RoundStateDealerTurn)

	for r.dealer.ShouldHit() {
		card := r.shoe.Draw()
		r.dealer.Hand.AddCard(card)
		r.logCard(r.dealer.Name, card, "{} draws (%d)", r.dealer.Value())
		r.notify()
	}

	r.State = RoundStateSettlement
	return r.settle(compareHands(r.player.Value(), r.dealer.Value()))
}

// settle applies the result to the player's chips
// It is the only place chips change after the bet, and it runs at most once per round.
func (r *Round) settle(result Result) error {
	if r.settled {
		return ErrAlreadySettled
	}

	r.settled = true
	account := &r.player.Account

	switch result {
	case ResultPlayerBust, ResultDealerWins:
		account.Lose()
	case ResultSurrender:
		account.Chips += account.Bet / 2
		account.Bet = 0
	case ResultDealerBust, ResultPlayerWins:
		account.Win(1)
	case ResultPlayerBlackjack:
		account.Win(naturalPayout)
	case ResultPush:
		account.Push()
	default:
		panic(fmt.Sprintf("cannot settle result: %q", result))
	}

	r.Result = result
	r.Net = account.Chips - r.startingChips

	r.log(r.player.Name, "{} %s ${%d}", resultVerb(r.Net), abs(r.Net))
	r.setState(RoundStateComplete)
	return nil
}

func resultVerb(net int) string {
	switch {
	case net > 0:
		return "won"
	case net < 0:
		return "lost"
	}

	return "pushed"
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

func (r *Round) isFirstAction() bool {
	return r.actionCount == 0
}

// IsOver returns true once the round has been settled
func (r *Round) IsOver() bool {
	return r.State == RoundStateComplete
}

// Player returns the player participant
func (r *Round) Player() *Participant {
	return r.player
}

// Dealer returns the dealer participant
func (r *Round) Dealer() *Participant {
	return r.dealer
}

// DrainLog returns the log messages since the last call
func (r *Round) DrainLog() []*playable.LogMessage {
	logs := r.logs
	r.logs = nil
	return logs
}

func (r *Round) setState(state RoundState) {
	r.State = state
	r.notify()
}

func (r *Round) notify() {
	if r.observer != nil {
		r.observer.RoundChanged(r.TableState())
	}
}

func (r *Round) log(subject string, format string, a ...interface{}) {
	r.logs = append(r.logs, playable.SimpleLogMessage(subject, format, a...))
}

func (r *Round) logCard(subject string, card *deck.Card, format string, a ...interface{}) {
	r.logs = append(r.logs, playable.CardLogMessage(subject, card, format, a...))
}
