package main

import (
	"context"
	"database/sql"
	"github.com/sirupsen/logrus"
	"terminal-blackjack/internal/config"
	"terminal-blackjack/pkg/db"
	"time"
)

func main() {
	cfg := config.Instance()
	dbh := waitForDB(cfg.Storage.PGDSN)
	defer dbh.Close()

	if err := db.Migrate(dbh, cfg.Storage.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}
}

func waitForDB(dsn string) *sql.DB {
	timeout := time.NewTimer(time.Second * 10)
	for {
		select {
		case <-timeout.C:
			logrus.Fatal("could not connect to database")
		default:
			dbh, err := db.Open(context.Background(), dsn)
			if err == nil {
				return dbh
			}

			logrus.WithError(err).Debug("waiting for database")
			time.Sleep(time.Millisecond * 500)
		}
	}
}
