package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

type Config struct {
	// DataDir holds hotels.json, customers.json and reservations.json.
	DataDir string
	Backend Backend
	// DBPath is the SQLite file; empty means DataDir/hotels.db.
	DBPath string
}

// Load reads the given .env files (default ".env"; missing files are fine)
// and then the HOTEL_* environment variables. Variables already set in the
// environment win over .env values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		DataDir: getenv("HOTEL_DATA_DIR", "data"),
		Backend: Backend(strings.ToLower(getenv("HOTEL_BACKEND", string(BackendJSON)))),
		DBPath:  getenv("HOTEL_DB_PATH", ""),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("invalid HOTEL_BACKEND %q (want %q or %q)", c.Backend, BackendJSON, BackendSQLite)
	}
	if c.DataDir == "" {
		return fmt.Errorf("HOTEL_DATA_DIR must not be empty")
	}
	return nil
}

func (c Config) HotelsPath() string       { return filepath.Join(c.DataDir, "hotels.json") }
func (c Config) CustomersPath() string    { return filepath.Join(c.DataDir, "customers.json") }
func (c Config) ReservationsPath() string { return filepath.Join(c.DataDir, "reservations.json") }

func (c Config) DatabasePath() string {
	if c.DBPath != "" {
		return c.DBPath
	}
	return filepath.Join(c.DataDir, "hotels.db")
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}
