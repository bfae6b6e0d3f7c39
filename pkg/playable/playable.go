package playable

import (
	"fmt"
	"github.com/google/uuid"
	"terminal-blackjack/pkg/deck"
	"time"
)

// LogMessage is the format a game should send log messages in
// If Subject is empty, assume it's a general statement, otherwise the message will be rendered like "{subject} did X, Y, Z"
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Subject string       `json:"subject,omitempty"`
	Cards   []*deck.Card `json:"cards"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

// String replaces the {} placeholder with the subject
func (l *LogMessage) String() string {
	if l.Subject == "" {
		return l.Message
	}

	return replacePlaceholder(l.Message, l.Subject)
}

func replacePlaceholder(message, subject string) string {
	for i := 0; i+1 < len(message); i++ {
		if message[i] == '{' && message[i+1] == '}' {
			return message[:i] + subject + message[i+2:]
		}
	}

	return message
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(subject string, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Subject: subject,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// CardLogMessage returns a new LogMessage that references a single card
func CardLogMessage(subject string, card *deck.Card, format string, a ...interface{}) *LogMessage {
	lm := SimpleLogMessage(subject, format, a...)
	if card != nil {
		lm.Cards = []*deck.Card{card}
	}

	return lm
}
