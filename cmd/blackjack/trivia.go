package main

import (
	"context"
	"fmt"
	"terminal-blackjack/internal/config"
	"terminal-blackjack/internal/rng"
	"terminal-blackjack/internal/terminal"
	"terminal-blackjack/pkg/session"
	"terminal-blackjack/pkg/trivia"
)

const generalTopic = "General knowledge"

// maxHistory matches the most questions the picker will skip
const maxHistory = 5

type triviaRunner struct {
	console *terminal.Console
	session *session.Session
	picker  *trivia.Picker

	dir           string
	generalReward int
	customReward  int

	// history holds the recently asked question indexes per topic
	history map[string][]int
}

func newTriviaRunner(console *terminal.Console, sess *session.Session, cfg config.Config) *triviaRunner {
	return &triviaRunner{
		console:       console,
		session:       sess,
		picker:        trivia.NewPicker(rng.Crypto{}),
		dir:           cfg.Trivia.CustomDir,
		generalReward: cfg.Trivia.GeneralReward,
		customReward:  cfg.Trivia.CustomReward,
		history:       make(map[string][]int),
	}
}

func (t *triviaRunner) play(ctx context.Context) error {
	topics, err := trivia.Topics(t.dir)
	if err != nil {
		return err
	}

	options := []string{fmt.Sprintf("%s (+%d chips)", generalTopic, t.generalReward)}
	for _, topic := range topics {
		options = append(options, fmt.Sprintf("%s (+%d chips)", topic.Name, t.customReward))
	}
	options = append(options, "Back")

	choice, err := t.console.Choose(ctx, "\nPick a topic", options)
	if err != nil || choice == len(options)-1 {
		return err
	}

	topicName, questions, reward := generalTopic, trivia.General(), t.generalReward
	if choice > 0 {
		topic := topics[choice-1]
		topicName, reward = topic.Name, t.customReward
		if questions, err = trivia.LoadQuestions(topic.Path); err != nil {
			return err
		}
	}

	q, index, ok := t.picker.Next(questions, t.history[topicName])
	if !ok {
		return trivia.ErrNoQuestions
	}
	t.history[topicName] = append(t.history[topicName], index)
	if len(t.history[topicName]) > maxHistory {
		t.history[topicName] = t.history[topicName][1:]
	}

	answer, err := t.console.Choose(ctx, "\n"+q.Question, q.Options)
	if err != nil {
		return err
	}

	if !q.IsCorrect(answer) {
		t.console.Println(fmt.Sprintf("Wrong! The answer was %s.", q.Options[q.CorrectIndex]))
		return nil
	}

	if err := t.session.AwardChips(ctx, reward); err != nil {
		return err
	}

	t.console.Println(fmt.Sprintf("Correct! You earned %s and now have %s.",
		terminal.FormatChips(reward), terminal.FormatChips(t.session.Chips())))
	return nil
}
