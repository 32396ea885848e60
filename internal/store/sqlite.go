package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS configuration (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS history (
			template_id INTEGER PRIMARY KEY,
			payload TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS field_state (
			template_id INTEGER PRIMARY KEY,
			payload TEXT
		);`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to init schema: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Configuration Implementation

func (s *SQLiteStore) SetConfig(key, value string) error {
	query := `INSERT INTO configuration (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	_, err := s.db.Exec(query, key, value)
	return err
}

func (s *SQLiteStore) GetConfig(key string) (string, error) {
	query := `SELECT value FROM configuration WHERE key = ?`
	row := s.db.QueryRow(query, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", nil // unset keys read as empty
		}
		return "", err
	}
	return value, nil
}

// History Implementation

func (s *SQLiteStore) SaveHistory(templateID int, payload []byte) error {
	query := `INSERT INTO history (template_id, payload) VALUES (?, ?) ON CONFLICT(template_id) DO UPDATE SET payload = excluded.payload`
	_, err := s.db.Exec(query, templateID, string(payload))
	return err
}

func (s *SQLiteStore) LoadHistory(templateID int) ([]byte, error) {
	query := `SELECT payload FROM history WHERE template_id = ?`
	row := s.db.QueryRow(query, templateID)
	var payload string
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return []byte(payload), nil
}

func (s *SQLiteStore) LoadAllHistory() (map[int][]byte, error) {
	rows, err := s.db.Query(`SELECT template_id, payload FROM history`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	all := make(map[int][]byte)
	for rows.Next() {
		var id int
		var payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, err
		}
		all[id] = []byte(payload)
	}
	return all, rows.Err()
}

func (s *SQLiteStore) DeleteHistory(templateID int) error {
	_, err := s.db.Exec(`DELETE FROM history WHERE template_id = ?`, templateID)
	return err
}

// Field State Implementation

func (s *SQLiteStore) SaveFieldState(templateID int, payload []byte) error {
	query := `INSERT INTO field_state (template_id, payload) VALUES (?, ?) ON CONFLICT(template_id) DO UPDATE SET payload = excluded.payload`
	_, err := s.db.Exec(query, templateID, string(payload))
	return err
}

func (s *SQLiteStore) LoadFieldState(templateID int) ([]byte, error) {
	query := `SELECT payload FROM field_state WHERE template_id = ?`
	row := s.db.QueryRow(query, templateID)
	var payload string
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return []byte(payload), nil
}
