// Package bankroll persists a player's chip balance between sessions
package bankroll

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Driver constants
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ErrEmptyIdentity is returned when the player identity is blank
var ErrEmptyIdentity = errors.New("player identity cannot be empty")

// Store loads and saves balances keyed by player identity
// Identities are case-insensitive and ignore surrounding whitespace.
type Store interface {
	// LoadBalance returns the saved balance; found is false if the player has never been saved
	LoadBalance(ctx context.Context, identity string) (chips int, found bool, err error)

	// SaveBalance stores the balance, clamping negative values to zero
	SaveBalance(ctx context.Context, identity string, chips int) error

	// LastPlayer returns the identity of the most recent session, or "" if there isn't one
	LastPlayer(ctx context.Context) (string, error)

	// SetLastPlayer remembers the identity for the next session
	SetLastPlayer(ctx context.Context, identity string) error

	// Reset deletes every balance and the remembered session
	Reset(ctx context.Context) error

	Close() error
}

// Options selects and configures a Store
type Options struct {
	Driver         string
	DataDir        string
	DSN            string
	MigrationsPath string
}

// Open returns the store for the configured driver
func Open(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(opts.Driver) {
	case "", DriverFile:
		return NewFileStore(opts.DataDir)
	case DriverSQLite:
		return NewSQLiteStore(ctx, opts.DataDir)
	case DriverPostgres:
		return NewPostgresStore(ctx, opts.DSN, opts.MigrationsPath)
	}

	return nil, fmt.Errorf("unknown storage driver: %s", opts.Driver)
}

// Key returns the storage key for an identity
func Key(identity string) string {
	sum := sha256.Sum256([]byte(Normalize(identity)))
	return hex.EncodeToString(sum[:])[:16]
}

// Normalize lower-cases and trims an identity
func Normalize(identity string) string {
	return strings.ToLower(strings.TrimSpace(identity))
}

func checkIdentity(identity string) error {
	if Normalize(identity) == "" {
		return ErrEmptyIdentity
	}

	return nil
}

func clamp(chips int) int {
	if chips < 0 {
		return 0
	}

	return chips
}
