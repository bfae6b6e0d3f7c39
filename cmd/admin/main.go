package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"os"
	"strconv"
	"strings"
	"terminal-blackjack/internal/config"
	"terminal-blackjack/pkg/bankroll"
)

var command = flag.String("c", "balance", "specifies the command (balance, grant, reset)")

func main() {
	flag.Parse()

	ctx := context.Background()
	store, err := bankroll.Open(ctx, config.Instance().BankrollOptions())
	if err != nil {
		logrus.WithError(err).Fatal("could not open the bankroll store")
	}
	defer store.Close()

	switch *command {
	case "balance":
		identity := getIdentity()
		chips, found, err := store.LoadBalance(ctx, identity)
		if err != nil {
			logrus.WithError(err).Fatal("could not load balance")
		}

		if !found {
			fmt.Printf("%s has never played\n", identity)
			return
		}

		fmt.Printf("%s (%s) has $%s\n", identity, bankroll.Key(identity), humanize.Comma(int64(chips)))

	case "grant":
		identity := getIdentity()
		chips := getChips()
		if err := store.SaveBalance(ctx, identity, chips); err != nil {
			logrus.WithError(err).Fatal("could not save balance")
		}

		fmt.Printf("%s now has $%s\n", identity, humanize.Comma(int64(chips)))

	case "reset":
		confirm, err := getInput("Delete every saved balance (y/N)")
		if err != nil {
			logrus.WithError(err).Fatal("could not get answer")
		}

		if confirm == "" || strings.ToLower(confirm)[0] != 'y' {
			return
		}

		if err := store.Reset(ctx); err != nil {
			logrus.WithError(err).Fatal("could not reset the store")
		}

		fmt.Println("All balances deleted")

	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

func getIdentity() string {
	for {
		identity, err := getInput("Player")
		if err != nil {
			logrus.WithError(err).Fatal("could not read player")
		}

		if bankroll.Normalize(identity) == "" {
			_, _ = fmt.Fprintln(os.Stderr, bankroll.ErrEmptyIdentity)
			continue
		}

		return identity
	}
}

func getChips() int {
	for {
		str, err := getInput("Chips")
		if err != nil {
			logrus.WithError(err).Fatal("could not read chips")
		}

		chips, err := strconv.Atoi(strings.ReplaceAll(str, ",", ""))
		if err != nil || chips < 0 {
			_, _ = fmt.Fprintln(os.Stderr, "chips must be a whole number of zero or more")
			continue
		}

		return chips
	}
}

var reader = bufio.NewReader(os.Stdin)

func getInput(question string) (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Printf("%s: ", question)
	}

	str, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	str = strings.TrimRight(str, "\r\n")

	return str, nil
}
