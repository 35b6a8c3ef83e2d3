// Package storage provides SQLite-based persistence for save slots and
// catch-up telemetry. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNoSave is returned when a slot has never been written.
var ErrNoSave = errors.New("storage: no save in slot")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SlotInfo describes one save slot without its payload.
type SlotInfo struct {
	Slot    string
	Version int
	Size    int
	SavedAt time.Time
}

// ReplayRecord is one catch-up run logged by a shell.
type ReplayRecord struct {
	ID        int64
	Slot      string
	Elapsed   time.Duration
	Simulated time.Duration
	Steps     int64
	Capped    bool
	Death     string // empty when the pet survived
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			version INTEGER NOT NULL,
			data BLOB NOT NULL,
			saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			slot TEXT NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			simulated_ms INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			capped INTEGER NOT NULL DEFAULT 0,
			death TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_slot ON replays(slot, id DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// PutSave writes data into slot, replacing what was there.
func (s *Store) PutSave(slot string, version int, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO saves (slot, version, data, saved_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
		   version = excluded.version,
		   data = excluded.data,
		   saved_at = excluded.saved_at`,
		slot, version, data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save slot %s: %w", slot, err)
	}
	return nil
}

// GetSave reads the payload in slot. It returns ErrNoSave for an empty slot.
func (s *Store) GetSave(slot string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM saves WHERE slot = ?", slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load slot %s: %w", slot, err)
	}
	return data, nil
}

// DeleteSave empties slot and drops its replay history.
func (s *Store) DeleteSave(slot string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM saves WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete slot %s: %w", slot, err)
	}
	if _, err := tx.Exec("DELETE FROM replays WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot clear replays of %s: %w", slot, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// Slots lists every written slot, most recently saved first.
func (s *Store) Slots() ([]SlotInfo, error) {
	rows, err := s.db.Query(
		`SELECT slot, version, length(data), saved_at
		 FROM saves
		 ORDER BY saved_at DESC, slot`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query slots: %w", err)
	}
	defer rows.Close()

	var slots []SlotInfo
	for rows.Next() {
		var info SlotInfo
		var savedAt any
		if err := rows.Scan(&info.Slot, &info.Version, &info.Size, &savedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.SavedAt = parseTime(savedAt)
		slots = append(slots, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return slots, nil
}

// RecordReplay logs one catch-up run. Returns the ID of the inserted record.
func (s *Store) RecordReplay(r ReplayRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO replays (slot, elapsed_ms, simulated_ms, steps, capped, death)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Slot,
		r.Elapsed.Milliseconds(),
		r.Simulated.Milliseconds(),
		r.Steps,
		r.Capped,
		r.Death,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record replay: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentReplays retrieves the latest catch-up runs of slot, newest first.
func (s *Store) RecentReplays(slot string, limit int) ([]ReplayRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, slot, elapsed_ms, simulated_ms, steps, capped, death, created_at
		 FROM replays
		 WHERE slot = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		slot, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var records []ReplayRecord
	for rows.Next() {
		var r ReplayRecord
		var elapsedMS, simulatedMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Slot, &elapsedMS, &simulatedMS, &r.Steps, &r.Capped, &r.Death, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		r.Simulated = time.Duration(simulatedMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
