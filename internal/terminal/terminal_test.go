package terminal

import (
	"bytes"
	"context"
	"errors"
	"fortio.org/terminal/ansipixels"
	"github.com/stretchr/testify/assert"
	"io"
	"os/user"
	"strings"
	"terminal-blackjack/internal/util"
	"terminal-blackjack/pkg/deck"
	"terminal-blackjack/pkg/playable"
	"terminal-blackjack/pkg/playable/blackjack"
	"testing"
	"time"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out), out
}

func TestConsole_ReadLine(t *testing.T) {
	a := assert.New(t)
	c, out := newTestConsole("  hello \nlast")

	line, err := c.ReadLine(context.Background(), "Name")
	a.NoError(err)
	a.Equal("hello", line)
	a.Equal("Name: ", out.String())

	line, err = c.ReadLine(context.Background(), "")
	a.NoError(err)
	a.Equal("last", line)

	_, err = c.ReadLine(context.Background(), "")
	a.Equal(io.EOF, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.ReadLine(ctx, "")
	a.Equal(context.Canceled, err)
}

func TestConsole_ReadLine_cancelWhileWaiting(t *testing.T) {
	a := assert.New(t)

	r, w := io.Pipe()
	defer w.Close()
	c := New(r, &bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.ReadLine(ctx, "Bet")
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		a.Equal(context.Canceled, err)
	case <-time.After(time.Second):
		t.Fatal("ReadLine did not return after the context was cancelled")
	}

	// a line typed after the interrupt is not handed to a cancelled prompt
	go func() { _, _ = w.Write([]byte("h\n")) }()
	_, err := c.ReadLine(ctx, "")
	a.Equal(context.Canceled, err)

	line, err := c.ReadLine(context.Background(), "")
	a.NoError(err)
	a.Equal("h", line)
}

func TestConsole_notInteractive(t *testing.T) {
	a := assert.New(t)
	c, out := newTestConsole("")
	a.False(c.IsInteractive())
	a.Equal(defaultWidth, c.Width())
	c.Clear()
	a.Empty(out.String())
}

func TestConsole_Choose(t *testing.T) {
	a := assert.New(t)
	c, out := newTestConsole("0\nabc\n2\n")

	i, err := c.Choose(context.Background(), "Menu", []string{"Play", "Exit"})
	a.NoError(err)
	a.Equal(1, i)
	a.Contains(out.String(), "  1) Play\n  2) Exit\n")
	a.Equal(2, strings.Count(out.String(), "Please enter a number from 1 to 2"))

	_, err = c.Choose(context.Background(), "", nil)
	a.Equal(ErrNoChoice, err)
}

func TestConsole_Confirm(t *testing.T) {
	a := assert.New(t)
	c, _ := newTestConsole("Yes\n\nn\n")

	for _, expected := range []bool{true, false, false} {
		ok, err := c.Confirm(context.Background(), "Sure?")
		a.NoError(err)
		a.Equal(expected, ok)
	}
}

func TestConsole_Bet(t *testing.T) {
	a := assert.New(t)
	c, out := newTestConsole("lots\n$1,500\n-5\n")

	amount, err := c.Bet(context.Background(), 2000)
	a.NoError(err)
	a.Equal(1500, amount)
	a.Contains(out.String(), "Bet (you have $2,000): ")
	a.Contains(out.String(), "Please enter a whole number of chips")

	// negative amounts are the round's problem
	amount, err = c.Bet(context.Background(), 2000)
	a.NoError(err)
	a.Equal(-5, amount)

	_, err = c.Bet(context.Background(), 2000)
	a.Equal(io.EOF, err)
}

func TestConsole_Action(t *testing.T) {
	a := assert.New(t)
	c, out := newTestConsole("x\nS\nsurrender\n")
	legal := []blackjack.Action{blackjack.ActionHit, blackjack.ActionStand}

	action, err := c.Action(context.Background(), legal)
	a.NoError(err)
	a.Equal(blackjack.ActionStand, action)
	a.Contains(out.String(), "[h] Hit / [s] Stand: ")
	a.Contains(out.String(), "invalid action: x")

	// legality is checked by the round
	action, err = c.Action(context.Background(), legal)
	a.NoError(err)
	a.Equal(blackjack.ActionSurrender, action)
}

func TestFormatLog(t *testing.T) {
	a := assert.New(t)
	a.Equal("$1,234,567", FormatChips(1234567))
	a.Equal("alice won $2,500", FormatLog(playable.SimpleLogMessage("alice", "{} won ${%d}", 2500)))
	a.Equal("no money here", FormatLog(playable.SimpleLogMessage("", "no money here")))
}

func TestRenderTable(t *testing.T) {
	a := assert.New(t)

	state := &blackjack.TableState{
		State:          blackjack.RoundStatePlayerTurn,
		DealerHand:     deck.CardsFromString("14s,10d"),
		HideHoleCard:   true,
		DealerValue:    11,
		PlayerName:     "alice",
		PlayerHand:     deck.CardsFromString("14h,6c"),
		PlayerValue:    17,
		PlayerSoft:     true,
		Chips:          1400,
		Bet:            100,
		Status:         "Your move",
		CardsRemaining: 308,
	}

	out := RenderTable(state, 10, false)
	a.Equal(strings.Join([]string{
		"──────────",
		"Dealer     A♠ ?? (11 + ?)",
		"alice      A♡ 6♣ (soft 17)",
		"Chips: $1,400   Bet: $100   Cards left: 308",
		"Your move",
		"──────────",
	}, "\n"), out)

	state.HideHoleCard = false
	state.DealerValue = 21
	state.Status = "Dealer wins"
	state.Message = "-$100"
	out = RenderTable(state, 10, false)
	a.Contains(out, "Dealer     A♠ 10♢ (21)\n")
	a.Contains(out, "Dealer wins  -$100\n")

	out = RenderTable(state, 10, true)
	a.Contains(out, ansipixels.WhiteBG+ansipixels.Black+"A♠"+ansipixels.Reset)
	a.Contains(out, ansipixels.WhiteBG+ansipixels.Red+"10♢"+ansipixels.Reset)
	a.Contains(out, ansipixels.WhiteBG+ansipixels.Red+"A♡"+ansipixels.Reset)

	state.HideHoleCard = true
	out = RenderTable(state, 10, true)
	a.NotContains(out, "10♢")
	a.Contains(out, ansipixels.WhiteBG+ansipixels.Black+"░░"+ansipixels.Reset)
}

func TestConsole_presenter(t *testing.T) {
	a := assert.New(t)
	c, out := newTestConsole("")

	c.RoundChanged(&blackjack.TableState{State: blackjack.RoundStateBetting})
	a.Empty(out.String())

	c.Notice("not enough chips")
	c.Log([]*playable.LogMessage{playable.SimpleLogMessage("alice", "{} bet ${%d}", 100)})
	a.Equal("! not enough chips\n  alice bet $100\n", out.String())
}

func TestUsername(t *testing.T) {
	a := assert.New(t)
	defer func() { lookupUser = user.Current }()

	lookupUser = func() (*user.User, error) {
		return &user.User{Username: `CORP\alice`}, nil
	}
	a.Equal("alice", Username())

	lookupUser = func() (*user.User, error) {
		return nil, errors.New("no user")
	}
	defer util.SetEnv("USER", "bob")()
	a.Equal("bob", Username())

	defer util.SetEnv("USER", "")()
	defer util.SetEnv("USERNAME", "")()
	a.NotEmpty(Username())
}
