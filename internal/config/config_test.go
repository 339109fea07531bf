package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs Load from an empty directory so a stray .env is not picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 150, cfg.Editor.MaxLength)
	assert.Equal(t, 1, cfg.Editor.MinRows)
	assert.Equal(t, 5, cfg.Editor.MaxRows)
	assert.NotEmpty(t, cfg.PrefsPath)
	assert.Empty(t, cfg.Language)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "notetab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: development
log_level: debug
language: fa
window:
  width: 900
editor:
  max_rows: 8
`), 0o644))
	t.Setenv("NOTETAB_LOG_LEVEL", "warn")
	t.Setenv("NOTETAB_WINDOW_HEIGHT", "640")

	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "fa", cfg.Language)
	assert.Equal(t, 900, cfg.Window.Width)
	assert.Equal(t, 640, cfg.Window.Height)
	assert.Equal(t, 8, cfg.Editor.MaxRows)
	assert.Equal(t, "notetab", cfg.Window.Title, "unset keys keep defaults")
}

func TestLoadEnvFile(t *testing.T) {
	dir := isolate(t)
	envPath := filepath.Join(dir, "custom.env")
	require.NoError(t, os.WriteFile(envPath, []byte("NOTETAB_LANGUAGE=fa\nNOTETAB_MAX_LENGTH=40\n"), 0o644))
	t.Setenv("NOTETAB_LANGUAGE", "")
	t.Setenv("NOTETAB_MAX_LENGTH", "")
	os.Unsetenv("NOTETAB_LANGUAGE")
	os.Unsetenv("NOTETAB_MAX_LENGTH")

	cfg, err := Load(LoadOptions{EnvFile: envPath})
	require.NoError(t, err)
	assert.Equal(t, "fa", cfg.Language)
	assert.Equal(t, 40, cfg.Editor.MaxLength)
}

func TestLoadMissingEnvFileFails(t *testing.T) {
	dir := isolate(t)
	_, err := Load(LoadOptions{EnvFile: filepath.Join(dir, "nope.env")})
	require.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad language":     "language: de\n",
		"rows inverted":    "editor:\n  min_rows: 4\n  max_rows: 2\n",
		"tiny window":      "window:\n  width: 10\n",
		"missing font":     "fonts:\n  persian_path: /definitely/not/here.ttf\n",
		"unknown env name": "environment: staging\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "c.yaml")
			require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
			_, err := Load(LoadOptions{Path: path})
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadBadIntegerEnv(t *testing.T) {
	isolate(t)
	t.Setenv("NOTETAB_WINDOW_WIDTH", "wide")
	_, err := Load(LoadOptions{})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoadMissingFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(LoadOptions{Path: filepath.Join(dir, "absent.yaml")})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}
