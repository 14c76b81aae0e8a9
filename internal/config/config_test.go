package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Sources) != 0 {
		t.Errorf("Sources = %v, want empty", cfg.Sources)
	}
	if len(cfg.ExcludeExtensions) != 1 || cfg.ExcludeExtensions[0] != ".dat" {
		t.Errorf("ExcludeExtensions = %v, want [.dat]", cfg.ExcludeExtensions)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.History.Enabled {
		t.Error("History.Enabled = true, want false")
	}
	if cfg.History.DBPath != "history.db" {
		t.Errorf("History.DBPath = %q, want %q", cfg.History.DBPath, "history.db")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `sources:
  - /usr/share/games/fortunes
  - ./local
exclude_extensions: [".dat", ".u8"]
insensitive: true
log_level: debug
history:
  enabled: true
  db_path: /tmp/served.db
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, []string{"/usr/share/games/fortunes", "./local"}, cfg.Sources)
	assert.Equal(t, []string{".dat", ".u8"}, cfg.ExcludeExtensions)
	assert.True(t, cfg.Insensitive)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "/tmp/served.db", cfg.History.DBPath)
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigPartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("history:\n  enabled: true\n"), 0644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "history.db", cfg.History.DBPath, "unset fields keep defaults")
	assert.Equal(t, []string{".dat"}, cfg.ExcludeExtensions)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigEmptyExcludeList(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("exclude_extensions: []\n"), 0644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Empty(t, cfg.ExcludeExtensions)
}

// TestLoadConfigMalformed tests that malformed YAML returns an error
func TestLoadConfigMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("sources: [unterminated\n"), 0644))

	_, err := LoadConfig(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfigFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("log_level: error\n"), 0644))

	cfg, err := LoadConfigFromDir(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Insensitive = true

	// nil flags leave config untouched
	cfg.MergeWithFlags(nil, nil, nil)
	assert.True(t, cfg.Insensitive)
	assert.Equal(t, "warn", cfg.LogLevel)

	insensitive := false
	level := "debug"
	record := true
	cfg.MergeWithFlags(&insensitive, &level, &record)
	assert.False(t, cfg.Insensitive)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.History.Enabled)
}

func TestHistoryPath(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join("/home/me/.fortuner", "history.db"), cfg.HistoryPath("/home/me/.fortuner"))

	cfg.History.DBPath = "/var/lib/fortuner.db"
	assert.Equal(t, "/var/lib/fortuner.db", cfg.HistoryPath("/home/me/.fortuner"))

	cfg.History.DBPath = ":memory:"
	assert.Equal(t, ":memory:", cfg.HistoryPath("/home/me/.fortuner"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "upper case level",
			mutate: func(c *Config) { c.LogLevel = "DEBUG" },
		},
		{
			name:    "unknown level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: `invalid log_level "loud"`,
		},
		{
			name:    "empty extension",
			mutate:  func(c *Config) { c.ExcludeExtensions = []string{".dat", " "} },
			wantErr: "exclude_extensions[1] cannot be empty",
		},
		{
			name:    "empty source",
			mutate:  func(c *Config) { c.Sources = []string{""} },
			wantErr: "sources[0] cannot be empty",
		},
		{
			name: "history enabled without path",
			mutate: func(c *Config) {
				c.History.Enabled = true
				c.History.DBPath = ""
			},
			wantErr: "history.db_path cannot be empty",
		},
		{
			name:   "history disabled without path",
			mutate: func(c *Config) { c.History.DBPath = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
