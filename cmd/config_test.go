package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"smartlogi/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := cmd.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "@every 1m", cfg.StatusReportSchedule)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := cmd.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Contains(t, cfg.DSN(), "host=db.internal")
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("JWT_SECRET="+testSecret+"\nDB_NAME=parcels\n"), 0o600))
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	t.Setenv("DB_NAME", "")
	require.NoError(t, os.Unsetenv("DB_NAME"))

	cfg, err := cmd.LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, "parcels", cfg.DBName)
	assert.Equal(t, testSecret, cfg.JWTSecret)
}

func TestLoadConfig_MissingEnvFileIsIgnored(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	assert.NoError(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{"JWT_SECRET": ""}},
		{name: "short secret", env: map[string]string{"JWT_SECRET": "short"}},
		{name: "bad port", env: map[string]string{"JWT_SECRET": testSecret, "HTTP_PORT": "http"}},
		{name: "bad log level", env: map[string]string{"JWT_SECRET": testSecret, "LOG_LEVEL": "verbose"}},
		{name: "bad ssl mode", env: map[string]string{"JWT_SECRET": testSecret, "DB_SSLMODE": "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := cmd.LoadConfig("")

			assert.Error(t, err)
		})
	}
}
