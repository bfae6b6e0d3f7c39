package bankroll

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/sirupsen/logrus"
	"os"
	"path/filepath"
	"strings"
)

const (
	playersFile = "players.json"
	sessionFile = "session.json"
)

type playerRecord struct {
	Name  string `json:"name"`
	Chips int    `json:"chips"`
}

type sessionRecord struct {
	LastPlayer string `json:"lastPlayer"`
}

// FileStore keeps balances in a JSON file inside a data directory
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir, creating it if needed
func NewFileStore(dir string) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("empty data directory")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &FileStore{dir: dir}, nil
}

// LoadBalance returns the saved balance
func (f *FileStore) LoadBalance(ctx context.Context, identity string) (int, bool, error) {
	if err := checkIdentity(identity); err != nil {
		return 0, false, err
	}

	players, err := f.loadPlayers()
	if err != nil {
		return 0, false, err
	}

	record, ok := players[Key(identity)]
	if !ok {
		return 0, false, nil
	}

	return record.Chips, true, nil
}

// SaveBalance stores the balance
func (f *FileStore) SaveBalance(ctx context.Context, identity string, chips int) error {
	if err := checkIdentity(identity); err != nil {
		return err
	}

	players, err := f.loadPlayers()
	if err != nil {
		return err
	}

	players[Key(identity)] = playerRecord{
		Name:  strings.TrimSpace(identity),
		Chips: clamp(chips),
	}

	return f.write(playersFile, players)
}

// LastPlayer returns the identity of the most recent session
func (f *FileStore) LastPlayer(ctx context.Context) (string, error) {
	var session sessionRecord
	if err := f.read(sessionFile, &session); err != nil {
		return "", err
	}

	return session.LastPlayer, nil
}

// SetLastPlayer remembers the identity for the next session
func (f *FileStore) SetLastPlayer(ctx context.Context, identity string) error {
	return f.write(sessionFile, sessionRecord{LastPlayer: strings.TrimSpace(identity)})
}

// Reset removes the players and session files
func (f *FileStore) Reset(ctx context.Context) error {
	for _, name := range []string{playersFile, sessionFile} {
		if err := os.Remove(filepath.Join(f.dir, name)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// Close is a no-op
func (f *FileStore) Close() error {
	return nil
}

func (f *FileStore) loadPlayers() (map[string]playerRecord, error) {
	players := make(map[string]playerRecord)
	if err := f.read(playersFile, &players); err != nil {
		return nil, err
	}

	return players, nil
}

// read decodes the file into v
// A missing file leaves v untouched. A corrupt file is logged and treated as empty.
func (f *FileStore) read(name string, v interface{}) error {
	path := filepath.Join(f.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		logrus.WithError(err).WithField("path", path).Warn("ignoring unreadable data file")
	}

	return nil
}

// write replaces the file atomically
func (f *FileStore) write(name string, v interface{}) error {
	tmp, err := os.CreateTemp(f.dir, name+".*.tmp")
	if err != nil {
		return err
	}

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), filepath.Join(f.dir, name))
}
