package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points config lookups at an empty temp home and clears TADA_* vars.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, k := range []string{"TADA_DARK", "TADA_LOG_FILE", "TADA_LOG_LEVEL", "TADA_CHAR_LIMIT"} {
		t.Setenv(k, "")
	}
	return home
}

func load(t *testing.T, args ...string) (*Config, []string, error) {
	t.Helper()
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	return Load(fs, args)
}

func TestDefaults(t *testing.T) {
	isolate(t)
	cfg, rest, err := load(t)
	require.NoError(t, err)
	assert.False(t, cfg.Dark)
	assert.Equal(t, DefaultCharLimit, cfg.CharLimit)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Empty(t, cfg.File)
	assert.Empty(t, rest)
}

func TestLoadConfigFile(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "tada")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "config.toml")
	content := []byte(`dark = true
char_limit = 80

[log]
file = "/tmp/tada.log"
level = "debug"
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, _, err := load(t)
	require.NoError(t, err)
	assert.True(t, cfg.Dark)
	assert.Equal(t, 80, cfg.CharLimit)
	assert.Equal(t, "/tmp/tada.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, path, cfg.File)
}

func TestExplicitConfigMissing(t *testing.T) {
	isolate(t)
	_, _, err := load(t, "-config", filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestInvalidConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("dark = = true"), 0o644))
	_, _, err := load(t, "-config", path)
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TADA_DARK", "yes")
	t.Setenv("TADA_LOG_LEVEL", "warn")
	t.Setenv("TADA_CHAR_LIMIT", "42")

	cfg, _, err := load(t)
	require.NoError(t, err)
	assert.True(t, cfg.Dark)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 42, cfg.CharLimit)
}

func TestFlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TADA_DARK", "true")
	t.Setenv("TADA_LOG_LEVEL", "warn")

	cfg, rest, err := load(t, "-dark=false", "-log-level", "error", "run")
	require.NoError(t, err)
	assert.False(t, cfg.Dark)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, []string{"run"}, rest)
}

func TestValidate(t *testing.T) {
	isolate(t)
	_, _, err := load(t, "-log-level", "loud")
	assert.Error(t, err)

	_, _, err = load(t, "-char-limit", "-1")
	assert.Error(t, err)
}

func TestBoolFromString(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"true", true},
		{" YES ", true},
		{"on", true},
		{"0", false},
		{"off", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, boolFromString(tt.in), "boolFromString(%q)", tt.in)
	}
}
