package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"github.com/sirupsen/logrus"
	"io"
	"os"
	"os/signal"
	"strings"
	"terminal-blackjack/internal/config"
	"terminal-blackjack/internal/rng"
	"terminal-blackjack/internal/terminal"
	"terminal-blackjack/pkg/bankroll"
	"terminal-blackjack/pkg/playable/blackjack"
	"terminal-blackjack/pkg/session"
)

// Version is the game version
var Version = "v0.0.0-dev"

var (
	name  = flag.String("name", "", "play as this player instead of the last one")
	decks = flag.Int("decks", 0, "number of decks in the shoe (overrides the configuration)")
	reset = flag.Bool("reset", false, "delete every saved balance before starting")
)

func main() {
	flag.Parse()
	setupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config.Instance()
	opts, err := cfg.BlackjackOptions()
	if err != nil {
		logrus.WithError(err).Fatal("invalid game configuration")
	}

	if *decks > 0 {
		opts.DeckCount = *decks
	}

	store, err := bankroll.Open(ctx, cfg.BankrollOptions())
	if err != nil {
		logrus.WithError(err).Fatal("could not open the bankroll store")
	}
	defer store.Close()

	console := terminal.NewStdio()
	if *reset {
		if ok, err := console.Confirm(ctx, "Delete every saved balance?"); err == nil && ok {
			if err := store.Reset(ctx); err != nil {
				logrus.WithError(err).Fatal("could not reset the bankroll store")
			}

			console.Println("All balances deleted.")
		}
	}

	sess, err := session.New(session.Options{
		Game:            opts,
		StartingBalance: cfg.Game.StartingBalance,
	}, store, console, console, logrus.StandardLogger(), rng.Crypto{})
	if err != nil {
		logrus.WithError(err).Fatal("could not create the session")
	}

	console.Clear()
	console.Println(fmt.Sprintf("Terminal Blackjack %s (%d decks)", Version, opts.DeckCount))

	if err := join(ctx, console, sess); err != nil {
		if isQuit(err) {
			return
		}

		logrus.WithError(err).Fatal("could not start the session")
	}

	g := &game{
		console: console,
		session: sess,
		trivia:  newTriviaRunner(console, sess, cfg),
	}

	g.run(ctx)

	if err := sess.End(context.Background()); err != nil {
		console.Notice(err.Error())
	}

	console.Println(fmt.Sprintf("Goodbye, %s. You leave with %s.", sess.Identity(), terminal.FormatChips(sess.Chips())))
}

// join starts the session as the -name player, the last player, or whoever the user says they are
func join(ctx context.Context, console *terminal.Console, sess *session.Session) error {
	identity := strings.TrimSpace(*name)
	if identity == "" {
		resumed, ok, err := sess.Resume(ctx)
		if err != nil {
			logrus.WithError(err).Warn("could not resume the last session")
		}

		if ok {
			console.Println(fmt.Sprintf("Welcome back, %s! You have %s.", resumed, terminal.FormatChips(sess.Chips())))
			return nil
		}
	}

	for identity == "" {
		suggested := terminal.Username()
		answer, err := console.ReadLine(ctx, fmt.Sprintf("Player name [%s]", suggested))
		if err != nil {
			return err
		}

		identity = answer
		if identity == "" {
			identity = suggested
		}
	}

	isNew, err := sess.Start(ctx, identity)
	if err != nil && !errors.Is(err, session.ErrNotSaved) {
		return err
	}

	if isNew {
		console.Println(fmt.Sprintf("Welcome, %s! Here are %s to get you started.", identity, terminal.FormatChips(sess.Chips())))
	} else {
		console.Println(fmt.Sprintf("Welcome back, %s! You have %s.", identity, terminal.FormatChips(sess.Chips())))
	}

	return nil
}

type game struct {
	console *terminal.Console
	session *session.Session
	trivia  *triviaRunner
}

func (g *game) run(ctx context.Context) {
	for {
		choice, err := g.console.Choose(ctx, fmt.Sprintf("\nChips: %s", terminal.FormatChips(g.session.Chips())), []string{
			"Play a round",
			"Earn chips (trivia)",
			"Exit",
		})
		if err != nil {
			return
		}

		switch choice {
		case 0:
			if g.session.IsBroke() {
				g.console.Notice("You're out of chips. Earn some with trivia first.")
				continue
			}

			if err := g.playRound(ctx); err != nil {
				return
			}
		case 1:
			if err := g.trivia.play(ctx); err != nil {
				if isQuit(err) {
					return
				}

				g.console.Notice(err.Error())
			}
		case 2:
			return
		}
	}
}

// playRound returns an error only when the game should stop
func (g *game) playRound(ctx context.Context) error {
	g.console.Clear()
	result, err := g.session.PlayRound(ctx)
	switch {
	case err == nil:
	case errors.Is(err, session.ErrNotSaved):
		g.console.Notice(err.Error())
	default:
		return err
	}

	if result != blackjack.ResultNone && g.session.IsBroke() {
		g.console.Println("Game over. You're out of chips.")
	}

	return nil
}

func isQuit(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
