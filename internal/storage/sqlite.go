// Package storage provides SQLite-based persistence for generated layouts,
// so seeded runs can be archived and replayed. Uses the pure-Go
// modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the generation archive.
type Store struct {
	db *sql.DB
}

// Generation is one archived layout generation record. The checksum is the
// layout digest; replaying the same preset, loop and seed must reproduce it.
type Generation struct {
	ID             int64
	PresetID       string
	LevelIndex     int
	LoopCount      int
	Seed           uint64
	BrickCount     int
	BreakableCount int
	Checksum       uint64
	CreatedAt      time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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
		CREATE TABLE IF NOT EXISTS generations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			preset_id TEXT NOT NULL,
			level_index INTEGER NOT NULL,
			loop_count INTEGER NOT NULL,
			seed TEXT NOT NULL,
			brick_count INTEGER NOT NULL,
			breakable_count INTEGER NOT NULL,
			checksum TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_generations_preset ON generations(preset_id);
		CREATE INDEX IF NOT EXISTS idx_generations_recent ON generations(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveGeneration archives one generation record and returns its row ID.
// Seed and checksum are stored as decimal strings: SQLite integers are
// signed 64-bit and would mangle large uint64 values.
func (s *Store) SaveGeneration(g Generation) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO generations (preset_id, level_index, loop_count, seed, brick_count, breakable_count, checksum)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.PresetID, g.LevelIndex, g.LoopCount, fmt.Sprintf("%d", g.Seed),
		g.BrickCount, g.BreakableCount, fmt.Sprintf("%d", g.Checksum),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save generation: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns the newest archived generations, up to limit.
func (s *Store) Recent(limit int) ([]Generation, error) {
	rows, err := s.db.Query(
		`SELECT id, preset_id, level_index, loop_count, seed, brick_count, breakable_count, checksum, created_at
		 FROM generations ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query generations: %w", err)
	}
	defer rows.Close()
	return scanGenerations(rows)
}

// ByPreset returns archived generations for one preset, newest first.
func (s *Store) ByPreset(presetID string, limit int) ([]Generation, error) {
	rows, err := s.db.Query(
		`SELECT id, preset_id, level_index, loop_count, seed, brick_count, breakable_count, checksum, created_at
		 FROM generations WHERE preset_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`, presetID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query generations: %w", err)
	}
	defer rows.Close()
	return scanGenerations(rows)
}

func scanGenerations(rows *sql.Rows) ([]Generation, error) {
	var out []Generation
	for rows.Next() {
		var g Generation
		var seed, checksum string
		if err := rows.Scan(&g.ID, &g.PresetID, &g.LevelIndex, &g.LoopCount, &seed,
			&g.BrickCount, &g.BreakableCount, &checksum, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan generation: %w", err)
		}
		var err error
		if g.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return nil, fmt.Errorf("storage: invalid seed %q: %w", seed, err)
		}
		if g.Checksum, err = strconv.ParseUint(checksum, 10, 64); err != nil {
			return nil, fmt.Errorf("storage: invalid checksum %q: %w", checksum, err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
