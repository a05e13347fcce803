// Package database provides SQLite storage for finished simulations: one row
// per game, its seats and the event history of the run.
package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// MemoryPath opens a store that lives only as long as the DB value.
const MemoryPath = ":memory:"

const pragmas = "_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

// ErrSchemaTooNew is returned when the file was written by a newer build.
var ErrSchemaTooNew = errors.New("run store schema is newer than this build")

// DB is a run store. The schema version lives in SQLite's user_version
// header, so a store copied between machines carries its version along.
type DB struct {
	conn *sqlx.DB
	path string
}

// New opens the run store at dbPath and brings its schema up to date. The
// file and its directory are created on first use.
func New(dbPath string) (*DB, error) {
	if dbPath != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create run store directory: %w", err)
		}
	}

	// Connect pings, so a bad path fails here rather than on first write
	conn, err := sqlx.Connect("sqlite", dbPath+"?"+pragmas)
	if err != nil {
		return nil, fmt.Errorf("failed to open run store %s: %w", dbPath, err)
	}
	// A single connection also keeps an in-memory store alive between calls
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	db := &DB{conn: conn, path: dbPath}
	if err := db.upgrade(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to upgrade run store %s: %w", dbPath, err)
	}
	return db, nil
}

// Path returns where the store lives.
func (db *DB) Path() string {
	return db.path
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// SchemaVersion returns the id of the last migration applied to the store.
func (db *DB) SchemaVersion() (int, error) {
	var v int
	err := db.conn.Get(&v, "PRAGMA user_version")
	return v, err
}

// upgrade applies every migration newer than the store's version, each in
// its own transaction together with the version bump.
func (db *DB) upgrade() error {
	current, err := db.SchemaVersion()
	if err != nil {
		return err
	}
	latest := migrations[len(migrations)-1].id
	if current > latest {
		return fmt.Errorf("%w: version %d, this build knows %d", ErrSchemaTooNew, current, latest)
	}

	for _, m := range migrations {
		if m.id <= current {
			continue
		}
		if err := db.apply(m); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.id, m.name, err)
		}
		log.Debug().
			Str("path", db.path).
			Int("version", m.id).
			Str("migration", m.name).
			Msg("run store migrated")
	}
	return nil
}

func (db *DB) apply(m migration) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(m.sql); err != nil {
		return err
	}
	// PRAGMA statements take no bound parameters
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.id)); err != nil {
		return err
	}
	return tx.Commit()
}
