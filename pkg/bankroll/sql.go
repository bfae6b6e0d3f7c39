package bankroll

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"terminal-blackjack/pkg/db"
)

// queries holds the dialect-specific statements for sqlStore
type queries struct {
	load       string
	save       string
	lastPlayer string
	setLast    string
	reset      []string
}

// sqlStore is a Store backed by database/sql
type sqlStore struct {
	db *sql.DB
	q  queries
}

type balanceRow struct {
	name  string
	chips int
}

func getBalanceByRow(row db.Scanner) (*balanceRow, error) {
	var b balanceRow
	if err := row.Scan(&b.name, &b.chips); err != nil {
		return nil, err
	}

	return &b, nil
}

// LoadBalance returns the saved balance
func (s *sqlStore) LoadBalance(ctx context.Context, identity string) (int, bool, error) {
	if err := checkIdentity(identity); err != nil {
		return 0, false, err
	}

	b, err := getBalanceByRow(s.db.QueryRowContext(ctx, s.q.load, Key(identity)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}

		return 0, false, err
	}

	return b.chips, true, nil
}

// SaveBalance stores the balance
func (s *sqlStore) SaveBalance(ctx context.Context, identity string, chips int) error {
	if err := checkIdentity(identity); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, s.q.save, Key(identity), strings.TrimSpace(identity), clamp(chips))
	return err
}

// LastPlayer returns the identity of the most recent session
func (s *sqlStore) LastPlayer(ctx context.Context) (string, error) {
	var name string
	if err := s.db.QueryRowContext(ctx, s.q.lastPlayer).Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", err
	}

	return name, nil
}

// SetLastPlayer remembers the identity for the next session
func (s *sqlStore) SetLastPlayer(ctx context.Context, identity string) error {
	_, err := s.db.ExecContext(ctx, s.q.setLast, strings.TrimSpace(identity))
	return err
}

// Reset deletes every balance and the remembered session
func (s *sqlStore) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, query := range s.q.reset {
		if _, err := tx.ExecContext(ctx, query); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// Close closes the database handle
func (s *sqlStore) Close() error {
	return s.db.Close()
}
