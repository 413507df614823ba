package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "warmintro", cfg.DynamoDBTable)
	assert.Equal(t, "ReverseEdgeIndex", cfg.IndexName)
	assert.Equal(t, 8, cfg.SuggestionFanoutLimit)
	assert.Equal(t, 10*time.Second, cfg.SuggestionTimeout)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("SUGGESTION_FANOUT_LIMIT", "2")
	t.Setenv("SUGGESTION_TIMEOUT_MS", "2500")
	t.Setenv("ENABLE_BREAKER", "false")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, 2, cfg.SuggestionFanoutLimit)
	assert.Equal(t, 2500*time.Millisecond, cfg.SuggestionTimeout)
	assert.False(t, cfg.EnableBreaker)
}

func TestValidate_ProductionRequiresSecret(t *testing.T) {
	cfg := &Config{
		Environment:           "production",
		DynamoDBTable:         "warmintro",
		SuggestionFanoutLimit: 8,
		SuggestionTimeout:     time.Second,
	}

	err := cfg.Validate()

	assert.Error(t, err)
}

func TestValidate_RejectsBadTuning(t *testing.T) {
	cfg := &Config{
		Environment:           "development",
		SuggestionFanoutLimit: 0,
		SuggestionTimeout:     time.Second,
	}
	assert.Error(t, cfg.Validate())

	cfg.SuggestionFanoutLimit = 4
	cfg.SuggestionTimeout = 0
	assert.Error(t, cfg.Validate())
}
