package booking

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Database is a SQLite file holding every collection as rows of
// (collection, id, body). It is the alternative to one JSON file per
// collection.
type Database struct {
	db     *sql.DB
	path   string
	logger *log.Logger
}

// NewDatabase opens (or creates) the SQLite database at dbPath and applies
// schema migrations.
func NewDatabase(dbPath string, logger *log.Logger) (*Database, error) {
	// Ensure directory exists so first-run succeeds.
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Database{db: db, path: dbPath, logger: loggerOrDefault(logger)}, nil
}

// Close closes the DB.
func (d *Database) Close() error {
	return d.db.Close()
}

// Store returns the record store for one collection.
func (d *Database) Store(collection string) *SQLiteStore {
	return &SQLiteStore{db: d, collection: collection}
}

// ---------------------------------------------------------------------------
// Schema migration
// ---------------------------------------------------------------------------

const schemaVersion = 1

func applyMigrations(db *sql.DB) error {
	// WAL improves write concurrency.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return fmt.Errorf("enable WAL: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);`); err != nil {
		return err
	}

	var current int
	_ = db.QueryRow(`SELECT value FROM meta WHERE key='schema_version';`).Scan(&current)
	if current >= schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`CREATE TABLE IF NOT EXISTS records (
            collection TEXT NOT NULL,
            id TEXT NOT NULL,
            body TEXT NOT NULL,
            PRIMARY KEY (collection, id)
        );`); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	if _, err := tx.Exec(`INSERT INTO meta(key,value) VALUES('schema_version',?)
            ON CONFLICT(key) DO UPDATE SET value=excluded.value;`, schemaVersion); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}

	return tx.Commit()
}

// ---------------------------------------------------------------------------
// Collection store
// ---------------------------------------------------------------------------

// SQLiteStore is a RecordStore over one collection of a Database.
type SQLiteStore struct {
	db         *Database
	collection string
}

func (s *SQLiteStore) Path() string {
	return s.db.path + "#" + s.collection
}

func (s *SQLiteStore) Load() Records {
	logger := s.db.logger
	rows, err := s.db.db.Query(`SELECT id, body FROM records WHERE collection=? ORDER BY id`, s.collection)
	if err != nil {
		warnf(logger, "Could not load %s: %v. Using empty.", s.Path(), err)
		return Records{}
	}
	defer rows.Close()

	records := Records{}
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			warnf(logger, "Could not load %s: %v. Using empty.", s.Path(), err)
			return Records{}
		}
		if !json.Valid([]byte(body)) {
			warnf(logger, "Skipping unparsable record %q in %s.", id, s.Path())
			continue
		}
		records[id] = compact([]byte(body))
	}
	if err := rows.Err(); err != nil {
		warnf(logger, "Could not load %s: %v. Using empty.", s.Path(), err)
		return Records{}
	}
	return records
}

// Save replaces the whole collection in one transaction.
func (s *SQLiteStore) Save(records Records) error {
	if err := s.replace(records); err != nil {
		warnf(s.db.logger, "Could not save %s: %v.", s.Path(), err)
		return fmt.Errorf("%w: %s: %v", ErrPersistence, s.Path(), err)
	}
	return nil
}

func (s *SQLiteStore) replace(records Records) error {
	tx, err := s.db.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM records WHERE collection=?`, s.collection); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO records(collection,id,body) VALUES(?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, id := range records.IDs() {
		body := records[id]
		if !json.Valid(body) {
			return fmt.Errorf("record %q is not valid JSON", id)
		}
		if _, err := stmt.Exec(s.collection, id, string(compact(body))); err != nil {
			return err
		}
	}
	return tx.Commit()
}
