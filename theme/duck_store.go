package theme

import (
	"database/sql"
	"errors"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// Preferences persists theme selections per visitor in DuckDB so a choice
// survives a lost cookie.
type Preferences struct {
	db *sql.DB
}

// OpenPreferences opens (or creates) the DuckDB database at path and ensures the schema.
// An empty path opens an in-memory database.
func OpenPreferences(path string) (*Preferences, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, serr.Wrap(err, "failed to open preferences database")
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, serr.Wrap(err, "failed to migrate preferences database")
	}

	logger.Info("Theme preferences database ready", "path", path)
	return &Preferences{db: db}, nil
}

func migrate(db *sql.DB) error {
	tableSQL := `
	CREATE TABLE IF NOT EXISTS theme_preferences (
		visitor_id VARCHAR(40) PRIMARY KEY,
		value VARCHAR(32) NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := db.Exec(tableSQL); err != nil {
		return serr.Wrap(err, "failed to create theme_preferences table")
	}
	return nil
}

// Close closes the database
func (p *Preferences) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	return p.db.Close()
}

// ForVisitor returns a Store bound to one visitor id
func (p *Preferences) ForVisitor(visitorID string) Store {
	return visitorStore{db: p.db, visitorID: visitorID}
}

type visitorStore struct {
	db        *sql.DB
	visitorID string
}

func (v visitorStore) Load() (string, error) {
	var value string
	err := v.db.QueryRow(
		"SELECT value FROM theme_preferences WHERE visitor_id = ?", v.visitorID,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", serr.Wrap(err, "failed to load theme preference")
	}
	return value, nil
}

func (v visitorStore) Save(value string) error {
	_, err := v.db.Exec(`
		INSERT INTO theme_preferences (visitor_id, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (visitor_id) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		v.visitorID, value,
	)
	if err != nil {
		return serr.Wrap(err, "failed to save theme preference")
	}
	return nil
}
