package config

import (
	"github.com/stretchr/testify/assert"
	"os"
	"terminal-blackjack/internal/util"
	"terminal-blackjack/pkg/playable/blackjack"
	"testing"
)

func TestInstance(t *testing.T) {
	defer util.SetEnv("BJ_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("BJ_ENV_FILE", "testdata/test.env")()
	defer util.SetEnv("BJ_STORAGE_DRIVER", "file")()
	defer func() {
		_ = os.Unsetenv("BJ_GAME_STARTING_BALANCE")
		config = Config{}
	}()

	a := assert.New(t)
	config = Config{}
	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal(2, cfg.Game.DeckCount)
	a.True(cfg.Game.AllowDouble)
	a.True(cfg.Game.AllowSurrender, "default survives a partial file")
	a.Equal("file", cfg.Storage.Driver, "environment overrides the file")
	a.Equal("/tmp/blackjack-test", cfg.Storage.DataDir)
	a.Equal(1000, cfg.Game.StartingBalance, "loaded from the .env file")
	a.Equal(3, cfg.Trivia.GeneralReward)
	a.Equal(25, cfg.Trivia.CustomReward)

	// ensure that it's only loaded once
	_ = os.Setenv("BJ_GAME_DECK_COUNT", "8")
	defer os.Unsetenv("BJ_GAME_DECK_COUNT")
	// ensure we aren't using a pointer
	cfg.Game.DeckCount = 99
	cfg = Instance()
	a.Equal(2, cfg.Game.DeckCount)

	opts, err := cfg.BlackjackOptions()
	a.NoError(err)
	a.Equal(blackjack.Options{
		DeckCount:      2,
		AllowSurrender: true,
		AllowDouble:    true,
		NaturalRule:    blackjack.NaturalThreeToTwo,
	}, opts)
}

func TestDefaults(t *testing.T) {
	defer util.SetEnv("BJ_CONFIG_FILE", "testdata/missing.yaml")()
	defer util.SetEnv("BJ_ENV_FILE", "testdata/missing.env")()
	defer func() { config = Config{} }()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(6, cfg.Game.DeckCount)
	a.Equal(500, cfg.Game.StartingBalance)
	a.Equal("file", cfg.Storage.Driver)
	a.Equal("./sql", cfg.Storage.MigrationsPath)

	opts, err := cfg.BlackjackOptions()
	a.NoError(err)
	a.Equal(blackjack.DefaultOptions(), opts)

	cfg.Game.NaturalRule = "even-money"
	_, err = cfg.BlackjackOptions()
	a.EqualError(err, "unknown natural rule: even-money")

	cfg.Game.NaturalRule = ""
	cfg.Game.DeckCount = 0
	_, err = cfg.BlackjackOptions()
	a.EqualError(err, "deck count must be at least 1")

	b := cfg.BankrollOptions()
	a.Equal(cfg.Storage.DataDir, b.DataDir)
}
