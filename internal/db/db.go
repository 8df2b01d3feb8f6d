// Package db provides the SQLite plant backend.
package db

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jacksmith/plantpal/internal/logging"
	"github.com/jacksmith/plantpal/internal/model"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store persists plants in a SQLite database.
type Store struct {
	conn   *sql.DB
	path   string
	logger zerolog.Logger
}

// Open opens (creating if needed) the database at path and applies migrations.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if err := runMigrations(conn); err != nil {
		if cerr := conn.Close(); cerr != nil {
			return nil, fmt.Errorf("failed to run migrations: %w (also failed to close db: %v)", err, cerr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{
		conn:   conn,
		path:   path,
		logger: logging.Component(logger, "sqlite").With().Str("path", path).Logger(),
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Load returns all plants ordered by position.
func (s *Store) Load() ([]model.Plant, error) {
	rows, err := s.conn.Query(`
		SELECT id, name, water, sun, image, last_watered
		FROM plants
		ORDER BY position
	`)
	if err != nil {
		return nil, &model.StorageError{Op: "load", Path: s.path, Err: err}
	}
	defer rows.Close()

	var plants []model.Plant
	for rows.Next() {
		var (
			p       model.Plant
			sun     string
			watered string
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.WaterIntervalDays, &sun, &p.ImagePath, &watered); err != nil {
			return nil, &model.StorageError{Op: "load", Path: s.path, Err: err}
		}

		p.Sunlight = model.Sunlight(sun)
		p.LastWatered, err = time.Parse(model.DateLayout, watered)
		if err != nil {
			return nil, &model.StorageError{Op: "load", Path: s.path, Err: fmt.Errorf("plant %s: bad last_watered %q", p.ID, watered)}
		}
		plants = append(plants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &model.StorageError{Op: "load", Path: s.path, Err: err}
	}

	s.logger.Debug().Int("plants", len(plants)).Msg("loaded plants")
	return plants, nil
}

// Save replaces all stored plants in a single transaction.
func (s *Store) Save(plants []model.Plant) error {
	if err := s.save(plants); err != nil {
		return &model.StorageError{Op: "save", Path: s.path, Err: err}
	}
	s.logger.Debug().Int("plants", len(plants)).Msg("saved plants")
	return nil
}

func (s *Store) save(plants []model.Plant) error {
	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM plants"); err != nil {
		return fmt.Errorf("failed to clear plants: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO plants (id, position, name, water, sun, image, last_watered)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range plants {
		_, err := stmt.Exec(p.ID, i, p.Name, p.WaterIntervalDays, string(p.Sunlight), p.ImagePath,
			model.Day(p.LastWatered).Format(model.DateLayout))
		if err != nil {
			return fmt.Errorf("failed to insert plant %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func runMigrations(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	// Up migrations keyed by version, parsed from names like "000001_create_plants.up.sql"
	ups := make(map[int]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		ups[version] = name
	}

	versions := make([]int, 0, len(ups))
	for v := range ups {
		versions = append(versions, v)
	}
	sort.Ints(versions)

	for _, version := range versions {
		var applied int
		if err := conn.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE version = ?", version).Scan(&applied); err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if applied > 0 {
			continue
		}

		data, err := fs.ReadFile(migrationsFS, "migrations/"+ups[version])
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", ups[version], err)
		}
		if _, err := conn.Exec(string(data)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", ups[version], err)
		}
		if _, err := conn.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("failed to record migration: %w", err)
		}
	}

	return nil
}
