// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "NAMES_FILE", "LOG_FORMAT"}

// clearEnv blanks every variable ParseFlags reads, restoring them after the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, Config{
		Port:         3318,
		DatabaseType: "sqlite",
		DatabaseURL:  "file:names.db",
		LogFormat:    LogFormatAuto,
	}, cfg)
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("NAMES_FILE", "names.yaml")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "postgres", cfg.DatabaseType)
	assert.Equal(t, "postgres://test", cfg.DatabaseURL)
	assert.Equal(t, "names.yaml", cfg.NamesFile)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("NAMES_FILE", "env.json")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-names", "cli.json", "-log-format", "text"})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "cli.json", cfg.NamesFile)
	assert.Equal(t, "file:test.db", cfg.DatabaseURL)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad port env", map[string]string{"PORT": "abc"}, nil},
		{"unknown database type", nil, []string{"-t", "mysql"}},
		{"postgres without url", map[string]string{"DATABASE_TYPE": "postgres"}, nil},
		{"bad log format", nil, []string{"-log-format", "xml"}},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestParseFlags_DotEnv(t *testing.T) {
	clearEnv(t)
	// .env only fills unset variables
	os.Unsetenv("NAMES_FILE")
	t.Cleanup(func() { os.Unsetenv("NAMES_FILE") })

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NAMES_FILE=dotenv.yaml\nLOG_FORMAT=json\n"), 0644))
	t.Chdir(dir)

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, "dotenv.yaml", cfg.NamesFile)
	// LOG_FORMAT was already set (blank) by clearEnv, so .env does not override it
	assert.Equal(t, LogFormatAuto, cfg.LogFormat)
}
