package bankroll

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // needed
)

const sqliteFile = "blackjack.db"

// SQLiteStore keeps balances in a local sqlite database
type SQLiteStore struct {
	*sqlStore
}

// NewSQLiteStore opens (or creates) blackjack.db in dataDir
// Use ":memory:" for a throwaway database.
func NewSQLiteStore(ctx context.Context, dataDir string) (*SQLiteStore, error) {
	dbPath := strings.TrimSpace(dataDir)
	if dbPath != ":memory:" {
		if err := os.MkdirAll(dbPath, 0o755); err != nil {
			return nil, err
		}

		dbPath = filepath.Join(dbPath, sqliteFile)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSQLiteSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{
		sqlStore: &sqlStore{
			db: db,
			q: queries{
				load: `SELECT display_name, chips FROM balances WHERE player_key = ?`,
				save: `
INSERT INTO balances (player_key, display_name, chips, updated)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (player_key) DO UPDATE
SET display_name = excluded.display_name,
    chips = excluded.chips,
    updated = CURRENT_TIMESTAMP`,
				lastPlayer: `SELECT player_name FROM last_session WHERE id = 1`,
				setLast: `
INSERT INTO last_session (id, player_name) VALUES (1, ?)
ON CONFLICT (id) DO UPDATE SET player_name = excluded.player_name`,
				reset: []string{`DELETE FROM balances`, `DELETE FROM last_session`},
			},
		},
	}, nil
}

func ensureSQLiteSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS balances (
    player_key   TEXT PRIMARY KEY,
    display_name TEXT NOT NULL,
    chips        INTEGER NOT NULL CHECK (chips >= 0),
    created      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS last_session (
    id          INTEGER PRIMARY KEY CHECK (id = 1),
    player_name TEXT NOT NULL
);`

	_, err := db.ExecContext(ctx, schema)
	return err
}
