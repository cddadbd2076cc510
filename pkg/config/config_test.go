package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://duckduckgo.com", cfg.SearchBaseURL)
	assert.Equal(t, "linkedin.com/in", cfg.SiteFilter)
	assert.Equal(t, "linkedin.com/in/", cfg.ProfileMarker)
	assert.Equal(t, 200, cfg.MaxQueryLength)
	assert.Equal(t, "csv", cfg.StoreDriver)
	assert.Equal(t, "memory", cfg.SeenBackend)
	assert.True(t, cfg.Headless)

	assert.Equal(t, 10*time.Second, cfg.NavTimeout())
	assert.Equal(t, 2*time.Second, cfg.MarkerTimeout())
	assert.Equal(t, 500*time.Millisecond, cfg.SettleDelay())
	assert.Equal(t, 2*time.Second, cfg.SubjectDelay())
	assert.Equal(t, 30*24*time.Hour, cfg.SeenTTL())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MAX_QUERY_LENGTH", "150")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("INPUT_CSV", "people.csv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 150, cfg.MaxQueryLength)
	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.Equal(t, "people.csv", cfg.InputCSV)
}
