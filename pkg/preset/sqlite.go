package preset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/stackquote/stackquote/pkg/models"
)

// SQLiteStore keeps the preset list in a key/value table of a SQLite database.
type SQLiteStore struct {
	db  *sql.DB
	key string
}

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv_store (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// NewSQLiteStore opens (or creates) the database at dbPath and runs auto-migration.
// An empty key selects DefaultKey. Use ":memory:" for an in-memory database.
func NewSQLiteStore(dbPath, key string) (*SQLiteStore, error) {
	if key == "" {
		key = DefaultKey
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open preset db: %w", err)
	}
	// A single connection keeps ":memory:" databases consistent across queries.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createKVTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate preset db: %w", err)
	}
	return &SQLiteStore{db: db, key: key}, nil
}

// Load implements Store.
func (s *SQLiteStore) Load(ctx context.Context) ([]models.Project, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, s.key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return []models.Project{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load presets: %w", err)
	}
	return decode(data)
}

// Save implements Store.
func (s *SQLiteStore) Save(ctx context.Context, presets []models.Project) error {
	data, err := encode(presets)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)`,
		s.key, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save presets: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
