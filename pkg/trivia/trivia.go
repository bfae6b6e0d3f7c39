// Package trivia is the question bank players answer to earn extra chips
package trivia

import (
	"errors"
	"terminal-blackjack/internal/rng"
)

// ErrNoQuestions is returned when a topic has nothing to ask
var ErrNoQuestions = errors.New("no questions found")

// maxHistory caps how many recent questions are held back from being asked again
const maxHistory = 5

// Question is a multiple-choice question
type Question struct {
	Question     string   `json:"question" yaml:"question"`
	Options      []string `json:"options" yaml:"options"`
	CorrectIndex int      `json:"correct_index" yaml:"correct_index"`
}

// IsCorrect returns true if choice is the index of the right answer
func (q Question) IsCorrect(choice int) bool {
	return choice == q.CorrectIndex
}

// Valid returns true if the question can be asked
func (q Question) Valid() bool {
	return q.Question != "" && len(q.Options) > 1 && q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options)
}

// Picker chooses the next question
type Picker struct {
	gen rng.Generator
}

// NewPicker returns a picker; a nil generator uses crypto/rand
func NewPicker(gen rng.Generator) *Picker {
	if gen == nil {
		gen = rng.Crypto{}
	}

	return &Picker{gen: gen}
}

// Next returns a random question that isn't among the most recently asked
// The last min(len/2, 5) indexes in history are skipped. ok is false if there are no questions.
func (p *Picker) Next(questions []Question, history []int) (q Question, index int, ok bool) {
	total := len(questions)
	if total == 0 {
		return Question{}, -1, false
	}

	recent := total / 2
	if recent > maxHistory {
		recent = maxHistory
	}

	if len(history) > recent {
		history = history[len(history)-recent:]
	}

	skip := make(map[int]bool, len(history))
	for _, i := range history {
		skip[i] = true
	}

	available := make([]int, 0, total)
	for i := 0; i < total; i++ {
		if !skip[i] {
			available = append(available, i)
		}
	}

	if len(available) == 0 {
		for i := 0; i < total; i++ {
			available = append(available, i)
		}
	}

	index = available[p.gen.Intn(len(available))]
	return questions[index], index, true
}

// General returns the built-in questions
func General() []Question {
	return []Question{
		{
			Question:     "What fits in a minute, twice in a moment, but never in a 1000 years?",
			Options:      []string{"The letter M", "Time", "Sand", "Water"},
			CorrectIndex: 0,
		},
		{
			Question:     "Which planet is known as the Red Planet?",
			Options:      []string{"Venus", "Mars", "Jupiter", "Saturn"},
			CorrectIndex: 1,
		},
		{
			Question:     "What is the capital of France?",
			Options:      []string{"London", "Berlin", "Madrid", "Paris"},
			CorrectIndex: 3,
		},
		{
			Question:     "Who painted the Mona Lisa?",
			Options:      []string{"Van Gogh", "Picasso", "Da Vinci", "Rembrandt"},
			CorrectIndex: 2,
		},
		{
			Question:     "What acts as the powerhouse of the cell?",
			Options:      []string{"Nucleus", "Mitochondria", "Ribosome", "Lysosome"},
			CorrectIndex: 1,
		},
		{
			Question:     "Which element has the chemical symbol 'O'?",
			Options:      []string{"Gold", "Silver", "Oxygen", "Iron"},
			CorrectIndex: 2,
		},
		{
			Question:     "How many continents are there?",
			Options:      []string{"5", "6", "7", "8"},
			CorrectIndex: 2,
		},
		{
			Question:     "In blackjack, what is an ace worth when 11 would bust the hand?",
			Options:      []string{"0", "1", "10", "21"},
			CorrectIndex: 1,
		},
	}
}
