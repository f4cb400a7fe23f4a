package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DB_HOST", "DB_PORT", "SERVER_PORT", "SHUTDOWN_TIMEOUT", "SEED_FILE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.SeedFile)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverSQLite)
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SHUTDOWN_TIMEOUT", "12")

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/x.db", cfg.SQLitePath)
	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, 12*time.Second, cfg.ShutdownTimeout)
}

func TestGetDuration(t *testing.T) {
	t.Setenv("X_TIMEOUT", "1500ms")
	assert.Equal(t, 1500*time.Millisecond, getDuration("X_TIMEOUT", time.Second))

	t.Setenv("X_TIMEOUT", "nonsense")
	assert.Equal(t, time.Second, getDuration("X_TIMEOUT", time.Second))

	t.Setenv("X_TIMEOUT", "-3")
	assert.Equal(t, time.Second, getDuration("X_TIMEOUT", time.Second))
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBPort: "5433", DBUser: "u", DBPassword: "p", DBName: "trivia", DBSSLMode: "disable"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=trivia sslmode=disable", cfg.DSN())
}
