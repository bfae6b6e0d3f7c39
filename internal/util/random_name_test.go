package util

import (
	"github.com/stretchr/testify/assert"
	"strings"
	"terminal-blackjack/internal/rng"
	"testing"
)

func TestGetRandomName(t *testing.T) {
	orig := random
	defer func() { random = orig }()

	random = rng.NewSeeded(0)
	first := GetRandomName()

	random = rng.NewSeeded(0)
	assert.Equal(t, first, GetRandomName())

	parts := strings.SplitN(first, " ", 2)
	assert.Len(t, parts, 2)
	assert.Contains(t, adjectives, parts[0])
	assert.Contains(t, nicknames, parts[1])
}
