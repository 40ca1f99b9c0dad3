package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.WordsFile)
	assert.Equal(t, 5, cfg.WordLength)
	assert.Equal(t, StatsSQLite, cfg.StatsBackend)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, daily.DefaultSalt, cfg.DailySalt)
	assert.Equal(t, game.DefaultOptions(), cfg.GameOptions())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("WORDS_FILE", "/tmp/words.txt")
	t.Setenv("WORD_LENGTH", "6")
	t.Setenv("MAX_ATTEMPTS", "8")
	t.Setenv("STATS_BACKEND", "memory")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DAILY", "true")
	t.Setenv("DAILY_SALT", "pepper")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/words.txt", cfg.WordsFile)
	assert.Equal(t, game.Options{WordLength: 6, MaxAttempts: 8, Mode: game.ModeFeedback}, cfg.GameOptions())
	assert.Equal(t, StatsMemory, cfg.StatsBackend)
	assert.True(t, cfg.Daily)
	assert.Equal(t, "pepper", cfg.DailySalt)
}

func TestLoad_DailyWithoutSalt(t *testing.T) {
	t.Setenv("DAILY", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Daily)
	assert.Equal(t, daily.DefaultSalt, cfg.DailySalt)
}

func TestLoad_Legacy(t *testing.T) {
	t.Setenv("LEGACY_MODE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, game.ModeMatch, cfg.Mode())
	assert.Equal(t, game.LegacyMaxAttempts, cfg.Attempts())

	cfg.MaxAttempts = 7
	assert.Equal(t, 7, cfg.Attempts())
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string][2]string{
		"zero length":      {"WORD_LENGTH", "0"},
		"not a number":     {"WORD_LENGTH", "five"},
		"negative attempt": {"MAX_ATTEMPTS", "-1"},
		"unknown backend":  {"STATS_BACKEND", "redis"},
		"unknown level":    {"LOG_LEVEL", "loud"},
	}
	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate_AfterOverride(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.WordLength = -3
	assert.Error(t, cfg.Validate())
}
