// Package session runs consecutive rounds of Blackjack for one player and keeps their balance saved
package session

import (
	"context"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"strings"
	"terminal-blackjack/internal/rng"
	"terminal-blackjack/pkg/bankroll"
	"terminal-blackjack/pkg/deck"
	"terminal-blackjack/pkg/playable"
	"terminal-blackjack/pkg/playable/blackjack"
)

// StartingBalance is the number of chips a new player receives
const StartingBalance = 500

// ErrNotSaved is returned when the balance could not be persisted
// The in-memory balance is still correct when this is returned.
var ErrNotSaved = errors.New("balance was not saved")

// ErrNotStarted is returned when a round is requested before a player has joined
var ErrNotStarted = errors.New("session has not been started")

// Presenter renders the table
type Presenter interface {
	blackjack.Observer

	// Notice shows a short message, such as why a bet was rejected
	Notice(message string)

	// Log shows the round's log messages
	Log(messages []*playable.LogMessage)
}

// Input supplies the player's decisions
type Input interface {
	// Bet asks for a wager; chips is the current balance
	Bet(ctx context.Context, chips int) (int, error)

	// Action asks the player to choose one of the legal actions
	Action(ctx context.Context, legal []blackjack.Action) (blackjack.Action, error)
}

// Options configures a Session
type Options struct {
	Game            blackjack.Options
	StartingBalance int
}

// DefaultOptions returns the default session options
func DefaultOptions() Options {
	return Options{
		Game:            blackjack.DefaultOptions(),
		StartingBalance: StartingBalance,
	}
}

// Session owns the shoe and both participants for the life of the program
type Session struct {
	options   Options
	store     bankroll.Store
	presenter Presenter
	input     Input
	logger    logrus.FieldLogger

	shoe     *deck.Shoe
	player   *blackjack.Participant
	dealer   *blackjack.Participant
	identity string
}

// New returns a new Session
// The shoe is built once here and reused by every round.
func New(opts Options, store bankroll.Store, presenter Presenter, input Input, logger logrus.FieldLogger, gen rng.Generator) (*Session, error) {
	if err := opts.Game.Validate(); err != nil {
		return nil, err
	}

	if opts.StartingBalance < 1 {
		return nil, fmt.Errorf("starting balance must be at least 1, got %d", opts.StartingBalance)
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Session{
		options:   opts,
		store:     store,
		presenter: presenter,
		input:     input,
		logger:    logger,
		shoe:      deck.NewShoe(opts.Game.DeckCount, gen),
		dealer:    blackjack.NewDealer(),
	}, nil
}

// Start joins the player with the given identity
// A player that has never been saved receives the starting balance. isNew reports that case.
func (s *Session) Start(ctx context.Context, identity string) (bool, error) {
	identity = strings.TrimSpace(identity)
	if bankroll.Normalize(identity) == "" {
		return false, bankroll.ErrEmptyIdentity
	}

	chips, found, err := s.store.LoadBalance(ctx, identity)
	if err != nil {
		return false, err
	}

	s.identity = identity
	s.player = blackjack.NewPlayer(identity, chips)
	logger := s.logger.WithField("player", bankroll.Key(identity))

	if !found {
		s.player.Account.Chips = s.options.StartingBalance
		logger.WithField("chips", s.player.Account.Chips).Info("new player")
		if err := s.save(ctx); err != nil {
			return true, err
		}
	} else {
		logger.WithField("chips", chips).Info("welcome back")
	}

	if err := s.store.SetLastPlayer(ctx, identity); err != nil {
		logger.WithError(err).Warn("could not remember the last player")
	}

	return !found, nil
}

// Resume starts the session as the last player, if the store remembers one with a saved balance
func (s *Session) Resume(ctx context.Context) (string, bool, error) {
	identity, err := s.store.LastPlayer(ctx)
	if err != nil || identity == "" {
		return "", false, err
	}

	if _, found, err := s.store.LoadBalance(ctx, identity); err != nil || !found {
		return "", false, err
	}

	if _, err := s.Start(ctx, identity); err != nil {
		return "", false, err
	}

	return identity, true, nil
}

// PlayRound plays one complete round
// Invalid bets and illegal actions are shown to the player and asked again. If the input fails before the
// bet is placed the round is abandoned with the balance unchanged. If it fails during the player's turn the
// player stands so the round can still be settled.
func (s *Session) PlayRound(ctx context.Context) (blackjack.Result, error) {
	if s.player == nil {
		return blackjack.ResultNone, ErrNotStarted
	}

	round := blackjack.NewRound(s.options.Game, s.shoe, s.player, s.dealer)
	round.SetObserver(s.presenter)
	s.presenter.RoundChanged(round.TableState())

	if err := s.placeBet(ctx, round); err != nil {
		return blackjack.ResultNone, err
	}

	var inputErr error
	for !round.IsOver() {
		action, err := s.input.Action(ctx, round.Actions())
		if err != nil {
			inputErr = err
			s.logger.WithError(err).Warn("input failed, standing")
			action = blackjack.ActionStand
		}

		if err := round.Act(action); err != nil {
			if inputErr != nil {
				return round.Result, err
			}

			s.presenter.Notice(err.Error())
			continue
		}

		s.flushLog(round)
	}

	s.flushLog(round)
	s.logger.WithFields(logrus.Fields{
		"result": round.Result,
		"net":    round.Net,
		"chips":  s.player.Account.Chips,
	}).Info("round settled")

	if err := s.save(ctx); err != nil {
		return round.Result, err
	}

	return round.Result, inputErr
}

func (s *Session) placeBet(ctx context.Context, round *blackjack.Round) error {
	for {
		amount, err := s.input.Bet(ctx, s.player.Account.Chips)
		if err != nil {
			return err
		}

		err = round.PlaceBet(amount)
		if err == nil {
			s.flushLog(round)
			return nil
		}

		var userErr blackjack.UserError
		if !errors.As(err, &userErr) {
			return err
		}

		s.presenter.Notice(userErr.Error())
	}
}

func (s *Session) flushLog(round *blackjack.Round) {
	logs := round.DrainLog()
	if len(logs) == 0 {
		return
	}

	for _, lm := range logs {
		s.logger.Debug(lm.String())
	}

	s.presenter.Log(logs)
}

// AwardChips adds chips to the balance and saves it
func (s *Session) AwardChips(ctx context.Context, amount int) error {
	if s.player == nil {
		return ErrNotStarted
	}

	if amount <= 0 {
		return fmt.Errorf("award must be positive, got %d", amount)
	}

	s.player.Account.Chips += amount
	s.logger.WithFields(logrus.Fields{
		"amount": amount,
		"chips":  s.player.Account.Chips,
	}).Info("awarded chips")

	return s.save(ctx)
}

// IsBroke returns true if the player has no chips left
func (s *Session) IsBroke() bool {
	return s.player != nil && s.player.Account.Chips <= 0
}

// Chips returns the current balance
func (s *Session) Chips() int {
	if s.player == nil {
		return 0
	}

	return s.player.Account.Chips
}

// Identity returns the identity passed to Start
func (s *Session) Identity() string {
	return s.identity
}

// CardsLeft returns the number of cards left in the shoe
func (s *Session) CardsLeft() int {
	return s.shoe.CardsLeft()
}

// End saves the balance one last time
func (s *Session) End(ctx context.Context) error {
	if s.player == nil {
		return nil
	}

	return s.save(ctx)
}

func (s *Session) save(ctx context.Context) error {
	if err := s.store.SaveBalance(ctx, s.identity, s.player.Account.Chips); err != nil {
		s.logger.WithError(err).WithField("chips", s.player.Account.Chips).Warn("could not save balance")
		return fmt.Errorf("%w: %v", ErrNotSaved, err)
	}

	return nil
}
