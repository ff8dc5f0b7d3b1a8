package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"email": "test@example.com",
		"database_url": "postgres://localhost/insight",
		"port": 8080,
		"verbose": true,
		"sources": [
			{"name": "internshala", "url": "https://internshala.com/jobs", "requests_per_window": 3, "window_seconds": 60}
		]
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test@example.com", cfg.Email)
	assert.Equal(t, "postgres://localhost/insight", cfg.DatabaseURL)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Verbose)
	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, "internshala", cfg.Sources[0].Name)
	assert.Equal(t, 3, cfg.Sources[0].RequestsPerWindow)
	assert.Equal(t, time.Minute, cfg.Sources[0].Window())
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_BadPort(t *testing.T) {
	cfg := &Config{Port: 70000}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_SourceMissingURL(t *testing.T) {
	cfg := &Config{
		Sources: []ScrapeSource{{Name: "naukri"}},
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "naukri")
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{Resume: "/nonexistent/resume.txt"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Email: "test@example.com",
		Port:  8080,
		Sources: []ScrapeSource{
			{Name: "internshala", URL: "https://internshala.com/jobs"},
		},
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Email:       "default@example.com",
		DatabaseURL: "postgres://localhost/insight",
		Port:        8080,
		Sources:     []ScrapeSource{{Name: "internshala", URL: "https://internshala.com/jobs"}},
	}

	partial := Config{
		Email:  "custom@example.com",
		Resume: "resume.txt",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom@example.com", merged.Email)
	assert.Equal(t, "resume.txt", merged.Resume)

	// Default values should fill in empty fields
	assert.Equal(t, "postgres://localhost/insight", merged.DatabaseURL)
	assert.Equal(t, 8080, merged.Port)
	assert.Len(t, merged.Sources, 1)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Email:  "test@example.com",
		Resume: "resume.txt",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "test@example.com", merged.Email)
	assert.Equal(t, "resume.txt", merged.Resume)
}
