package blackjack

import (
	"github.com/bmizerany/assert"
	"testing"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("alice", 500)
	assert.Equal(t, RolePlayer, p.Role)
	assert.Equal(t, 500, p.Account.Chips)
	assert.Equal(t, 0, len(p.Hand))
	assert.Equal(t, true, p.CanBet())
}

func TestNewDealer(t *testing.T) {
	d := NewDealer()
	assert.Equal(t, RoleDealer, d.Role)
	assert.Equal(t, 0, d.Account.Chips)
	assert.Equal(t, false, d.CanBet())
	assert.Equal(t, "dealer", d.Role.String())
}
