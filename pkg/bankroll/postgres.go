package bankroll

import (
	"context"
	"terminal-blackjack/pkg/db"
)

// PostgresStore keeps balances in postgres
// The schema is managed by the migrations in ./sql
type PostgresStore struct {
	*sqlStore
}

// NewPostgresStore connects to dsn and runs the migrations if migrationsPath is set
func NewPostgresStore(ctx context.Context, dsn, migrationsPath string) (*PostgresStore, error) {
	dbh, err := db.Open(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if migrationsPath != "" {
		if err := db.Migrate(dbh, migrationsPath); err != nil {
			_ = dbh.Close()
			return nil, err
		}
	}

	return &PostgresStore{
		sqlStore: &sqlStore{
			db: dbh,
			q: queries{
				load: `SELECT display_name, chips FROM balances WHERE player_key = $1`,
				save: `
INSERT INTO balances (player_key, display_name, chips)
VALUES ($1, $2, $3)
ON CONFLICT (player_key) DO UPDATE
SET display_name = EXCLUDED.display_name,
    chips = EXCLUDED.chips,
    updated = (NOW() AT TIME ZONE 'utc')`,
				lastPlayer: `SELECT player_name FROM last_session WHERE id = 1`,
				setLast: `
INSERT INTO last_session (id, player_name) VALUES (1, $1)
ON CONFLICT (id) DO UPDATE SET player_name = EXCLUDED.player_name`,
				reset: []string{`DELETE FROM balances`, `DELETE FROM last_session`},
			},
		},
	}, nil
}
