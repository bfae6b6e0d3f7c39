package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"os"
	"path/filepath"
	"terminal-blackjack/internal/util"
	"terminal-blackjack/pkg/bankroll"
	"terminal-blackjack/pkg/playable/blackjack"
)

// Config provides configuration for Terminal Blackjack
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
	Game struct {
		DeckCount       int    `yaml:"deckCount" envconfig:"deck_count"`
		StartingBalance int    `yaml:"startingBalance" envconfig:"starting_balance"`
		AllowSurrender  bool   `yaml:"allowSurrender" envconfig:"allow_surrender"`
		AllowDouble     bool   `yaml:"allowDouble" envconfig:"allow_double"`
		NaturalRule     string `yaml:"naturalRule" envconfig:"natural_rule"`
	} `yaml:"game"`
	Storage struct {
		Driver         string `yaml:"driver" envconfig:"driver"`
		DataDir        string `yaml:"dataDir" envconfig:"data_dir"`
		PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
		MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	} `yaml:"storage"`
	Trivia struct {
		CustomDir     string `yaml:"customDir" envconfig:"custom_dir"`
		GeneralReward int    `yaml:"generalReward" envconfig:"general_reward"`
		CustomReward  int    `yaml:"customReward" envconfig:"custom_reward"`
	} `yaml:"trivia"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var cfg Config
	cfg.Log.Level = "warning"
	cfg.Log.Format = "text"

	opts := blackjack.DefaultOptions()
	cfg.Game.DeckCount = opts.DeckCount
	cfg.Game.StartingBalance = 500
	cfg.Game.AllowSurrender = opts.AllowSurrender
	cfg.Game.AllowDouble = opts.AllowDouble
	cfg.Game.NaturalRule = opts.NaturalRule.String()

	cfg.Storage.Driver = bankroll.DriverFile
	cfg.Storage.DataDir = defaultDataDir()
	cfg.Storage.MigrationsPath = "./sql"

	cfg.Trivia.CustomDir = "questions"
	cfg.Trivia.GeneralReward = 3
	cfg.Trivia.CustomReward = 10

	return cfg
}

// Load will load the configuration
// Defaults are overlaid by the YAML file (if present), then by a .env file (if present), then by BJ_* variables.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := godotenv.Load(util.Getenv("BJ_ENV_FILE", ".env")); err != nil && !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("bj", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// BlackjackOptions converts the game section into round options
func (c Config) BlackjackOptions() (blackjack.Options, error) {
	rule, err := blackjack.NaturalRuleFromString(c.Game.NaturalRule)
	if err != nil {
		return blackjack.Options{}, err
	}

	opts := blackjack.Options{
		DeckCount:      c.Game.DeckCount,
		AllowSurrender: c.Game.AllowSurrender,
		AllowDouble:    c.Game.AllowDouble,
		NaturalRule:    rule,
	}

	return opts, opts.Validate()
}

// BankrollOptions converts the storage section into store options
func (c Config) BankrollOptions() bankroll.Options {
	return bankroll.Options{
		Driver:         c.Storage.Driver,
		DataDir:        c.Storage.DataDir,
		DSN:            c.Storage.PGDSN,
		MigrationsPath: c.Storage.MigrationsPath,
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".terminal_blackjack"
	}

	return filepath.Join(home, ".terminal_blackjack")
}
