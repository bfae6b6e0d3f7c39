package blackjack

import "errors"

// UserError is an error that is safe to show to the player
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// ErrInvalidBet is returned when the bet is zero or negative
var ErrInvalidBet = UserError("bet must be at least 1 chip")

// ErrInsufficientChips is returned when the bet exceeds the player's chips
var ErrInsufficientChips = UserError("not enough chips")

// ErrInsufficientChipsForDouble is returned when the player cannot match their bet to double down
var ErrInsufficientChipsForDouble = UserError("not enough chips to double down")

// ErrIllegalAction is returned when the action is not available at this point of the round
var ErrIllegalAction = errors.New("action is not allowed")

// ErrRoundOver is returned when an action is attempted on a finished round
var ErrRoundOver = errors.New("round is over")

// ErrAlreadySettled is returned if a settlement is attempted twice for the same round
var ErrAlreadySettled = errors.New("round has already been settled")
