package bankroll

import (
	"context"
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
)

var cbg = context.Background()

func TestKey(t *testing.T) {
	a := assert.New(t)

	a.Equal(Key("Alice"), Key("  alice "))
	a.Equal(Key("Alice"), Key("ALICE"))
	a.NotEqual(Key("Alice"), Key("Bob"))
	a.Len(Key("Alice"), 16)
	a.Equal("alice", Normalize("\tAlice\n"))
}

// testStore runs the behavior every Store must share
func testStore(t *testing.T, s Store) {
	t.Helper()
	a := assert.New(t)

	chips, found, err := s.LoadBalance(cbg, "Alice")
	a.NoError(err)
	a.False(found)
	a.Equal(0, chips)

	a.NoError(s.SaveBalance(cbg, "Alice", 750))
	chips, found, err = s.LoadBalance(cbg, "  alice ")
	a.NoError(err)
	a.True(found)
	a.Equal(750, chips)

	// overwrite
	a.NoError(s.SaveBalance(cbg, "ALICE", 10))
	chips, _, _ = s.LoadBalance(cbg, "Alice")
	a.Equal(10, chips)

	// negative balances are never persisted
	a.NoError(s.SaveBalance(cbg, "Bob", -25))
	chips, found, err = s.LoadBalance(cbg, "bob")
	a.NoError(err)
	a.True(found)
	a.Equal(0, chips)

	a.Equal(ErrEmptyIdentity, s.SaveBalance(cbg, "   ", 5))
	_, _, err = s.LoadBalance(cbg, "")
	a.Equal(ErrEmptyIdentity, err)

	last, err := s.LastPlayer(cbg)
	a.NoError(err)
	a.Equal("", last)

	a.NoError(s.SetLastPlayer(cbg, " Alice "))
	a.NoError(s.SetLastPlayer(cbg, "Bob"))
	last, err = s.LastPlayer(cbg)
	a.NoError(err)
	a.Equal("Bob", last)

	a.NoError(s.Reset(cbg))
	_, found, err = s.LoadBalance(cbg, "Alice")
	a.NoError(err)
	a.False(found)
	last, _ = s.LastPlayer(cbg)
	a.Equal("", last)
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "data"))
	assert.NoError(t, err)
	defer s.Close()

	testStore(t, s)
}

func TestFileStore_corruptFile(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	a.NoError(os.WriteFile(filepath.Join(dir, playersFile), []byte("{not json"), 0o644))

	s, err := NewFileStore(dir)
	a.NoError(err)

	_, found, err := s.LoadBalance(cbg, "Alice")
	a.NoError(err)
	a.False(found)

	// the next save replaces the corrupt file
	a.NoError(s.SaveBalance(cbg, "Alice", 500))
	chips, found, err := s.LoadBalance(cbg, "alice")
	a.NoError(err)
	a.True(found)
	a.Equal(500, chips)
}

func TestFileStore_persistsAcrossInstances(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()

	s1, _ := NewFileStore(dir)
	a.NoError(s1.SaveBalance(cbg, "Alice", 123))

	s2, _ := NewFileStore(dir)
	chips, found, err := s2.LoadBalance(cbg, "alice")
	a.NoError(err)
	a.True(found)
	a.Equal(123, chips)

	_, err = NewFileStore(" ")
	a.Error(err)
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(cbg, t.TempDir())
	if !assert.NoError(t, err) {
		return
	}
	defer s.Close()

	testStore(t, s)
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("BJ_TEST_PG_DSN")
	if dsn == "" {
		t.Skip("BJ_TEST_PG_DSN is not set")
	}

	s, err := NewPostgresStore(cbg, dsn, "../../sql")
	if !assert.NoError(t, err) {
		return
	}
	defer s.Close()

	assert.NoError(t, s.Reset(cbg))
	testStore(t, s)
}

func TestOpen(t *testing.T) {
	a := assert.New(t)

	s, err := Open(cbg, Options{DataDir: t.TempDir()})
	a.NoError(err)
	a.IsType(&FileStore{}, s)

	s, err = Open(cbg, Options{Driver: "SQLite", DataDir: t.TempDir()})
	a.NoError(err)
	a.IsType(&SQLiteStore{}, s)
	a.NoError(s.Close())

	_, err = Open(cbg, Options{Driver: "redis"})
	a.EqualError(err, "unknown storage driver: redis")
}
