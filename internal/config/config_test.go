package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, `{
		"catalog": "data/careers.json",
		"skills": "React, SQL",
		"min_score": 10,
		"threshold": 50,
		"limit": 5,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "data/careers.json", cfg.Catalog)
	assert.Equal(t, "React, SQL", cfg.Skills)
	assert.Equal(t, 10, cfg.MinScore)
	assert.Equal(t, 50, cfg.Threshold)
	assert.Equal(t, 5, cfg.Limit)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_PartialFile(t *testing.T) {
	path := writeConfig(t, `{"skills": "Go"}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Go", cfg.Skills)
	assert.Zero(t, cfg.MinScore)
	assert.Zero(t, cfg.Threshold)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not valid`)
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{}, false},
		{"full valid", Config{MinScore: 30, Threshold: 60, Limit: 10, Port: 8080}, false},
		{"min_score too high", Config{MinScore: 101}, true},
		{"min_score negative", Config{MinScore: -1}, true},
		{"threshold too high", Config{Threshold: 200}, true},
		{"negative limit", Config{Limit: -5}, true},
		{"bad port", Config{Port: 70000}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
