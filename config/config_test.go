package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HOTEL_DATA_DIR", "HOTEL_BACKEND", "HOTEL_DB_PATH"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Config{DataDir: "data", Backend: BackendJSON}, cfg)
	assert.Equal(t, filepath.Join("data", "hotels.json"), cfg.HotelsPath())
	assert.Equal(t, filepath.Join("data", "customers.json"), cfg.CustomersPath())
	assert.Equal(t, filepath.Join("data", "reservations.json"), cfg.ReservationsPath())
	assert.Equal(t, filepath.Join("data", "hotels.db"), cfg.DatabasePath())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOTEL_DATA_DIR", "/srv/hotels")
	t.Setenv("HOTEL_BACKEND", " SQLite ")
	t.Setenv("HOTEL_DB_PATH", "/srv/db/hotels.sqlite")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "/srv/hotels", cfg.DataDir)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "/srv/db/hotels.sqlite", cfg.DatabasePath())
}

func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv sets variables only when unset, so drop the empty ones.
	for _, k := range []string{"HOTEL_DATA_DIR", "HOTEL_BACKEND"} {
		require.NoError(t, os.Unsetenv(k))
	}

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("HOTEL_DATA_DIR=from-file\nHOTEL_BACKEND=sqlite\n"), 0o644))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.DataDir)
	assert.Equal(t, BackendSQLite, cfg.Backend)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOTEL_DATA_DIR", "from-env")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("HOTEL_DATA_DIR=from-file\n"), 0o644))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.DataDir)
}

func TestLoad_InvalidBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOTEL_BACKEND", "csv")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "invalid HOTEL_BACKEND")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Config{DataDir: "d", Backend: BackendJSON}.Validate())
	assert.Error(t, Config{DataDir: "", Backend: BackendJSON}.Validate())
	assert.Error(t, Config{DataDir: "d", Backend: ""}.Validate())
}
