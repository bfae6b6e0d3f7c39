package blackjack

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Action is an action the player can take during their turn
type Action int

// MarshalJSON encodes the JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
		Key  string `json:"key"`
	}{
		ID:   int(a),
		Name: a.String(),
		Key:  a.Key(),
	})
}

// Action constants
const (
	ActionHit Action = iota
	ActionStand
	ActionDouble
	ActionSurrender
)

func (a Action) String() string {
	switch a {
	case ActionHit:
		return "Hit"
	case ActionStand:
		return "Stand"
	case ActionDouble:
		return "Double"
	case ActionSurrender:
		return "Surrender"
	}

	panic(fmt.Sprintf("invalid action: %d", a))
}

// Key returns the single-letter shortcut for the action
func (a Action) Key() string {
	switch a {
	case ActionHit:
		return "h"
	case ActionStand:
		return "s"
	case ActionDouble:
		return "d"
	case ActionSurrender:
		return "u"
	}

	panic(fmt.Sprintf("invalid action: %d", a))
}

// ActionFromString returns an action from its name or shortcut
func ActionFromString(action string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "h", "hit":
		return ActionHit, nil
	case "s", "stand":
		return ActionStand, nil
	case "d", "double":
		return ActionDouble, nil
	case "u", "surrender":
		return ActionSurrender, nil
	}

	return -1, fmt.Errorf("invalid action: %s", action)
}

// getActions returns the actions available to the player
func (r *Round) getActions() []Action {
	if r.State != RoundStatePlayerTurn {
		return nil
	}

	actions := []Action{ActionHit, ActionStand}
	if !r.isFirstAction() {
		return actions
	}

	if r.options.AllowDouble && r.player.Account.Chips >= r.player.Account.Bet {
		actions = append(actions, ActionDouble)
	}

	if r.options.AllowSurrender {
		actions = append(actions, ActionSurrender)
	}

	return actions
}

func (r *Round) canTakeAction(action Action) bool {
	for _, a := range r.getActions() {
		if a == action {
			return true
		}
	}

	return false
}
