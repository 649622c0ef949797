package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRouletteConfig_Defaults(t *testing.T) {
	cfg, err := LoadRouletteConfig()
	require.NoError(t, err)

	assert.Equal(t, int64(1000), cfg.Table.StartBalance)
	assert.Equal(t, 0.01, cfg.Table.SavingsRate)
	assert.Equal(t, "memory", cfg.RepoType)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, "logs/roulette/roulette.log", cfg.Log.File)
}

func TestLoadRouletteConfig_Overrides(t *testing.T) {
	t.Setenv("ROULETTE_START_BALANCE", "250")
	t.Setenv("ROULETTE_REPO_TYPE", "redis")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("DB_DRIVER", "none")

	cfg, err := LoadRouletteConfig()
	require.NoError(t, err)

	assert.Equal(t, int64(250), cfg.Table.StartBalance)
	assert.Equal(t, "redis", cfg.RepoType)
	assert.Equal(t, "localhost:6380", cfg.Redis.Addr())
	assert.False(t, cfg.Database.Enabled())
}

func TestLoadRouletteConfig_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"non-positive balance", "ROULETTE_START_BALANCE", "0"},
		{"unknown repo", "ROULETTE_REPO_TYPE", "etcd"},
		{"unknown driver", "DB_DRIVER", "mysql"},
		{"rate above one", "ROULETTE_SAVINGS_RATE", "1.5"},
		{"not a number", "ROULETTE_START_BALANCE", "lots"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := LoadRouletteConfig()
			assert.Error(t, err)
		})
	}
}
