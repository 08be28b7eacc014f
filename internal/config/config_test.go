package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsobakin/armada/internal/config"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	conf, err := config.FromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, config.Config{
		Stage:       config.StageDev,
		Addr:        config.DefaultAddr,
		MaxSessions: config.DefaultMaxSessions,
		ThinkBudget: config.DefaultThinkBudget,
	}, conf)
}

func TestFromLookup_Overrides(t *testing.T) {
	conf, err := config.FromLookup(lookupFrom(map[string]string{
		"STAGE":        "prod",
		"ADDR":         "0.0.0.0:9191",
		"MAX_SESSIONS": "3",
		"THINK_BUDGET": "90s",
	}))
	require.NoError(t, err)

	assert.Equal(t, config.StageProd, conf.Stage)
	assert.Equal(t, "0.0.0.0:9191", conf.Addr)
	assert.Equal(t, int64(3), conf.MaxSessions)
	assert.Equal(t, 90*time.Second, conf.ThinkBudget)
}

func TestFromLookup_Invalid(t *testing.T) {
	for _, env := range []map[string]string{
		{"STAGE": "staging"},
		{"MAX_SESSIONS": "many"},
		{"MAX_SESSIONS": "0"},
		{"THINK_BUDGET": "forever"},
		{"THINK_BUDGET": "-1s"},
	} {
		_, err := config.FromLookup(lookupFrom(env))
		assert.Error(t, err, "%v", env)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("STAGE", "")
	t.Setenv("MAX_SESSIONS", "")
	os.Unsetenv("MAX_SESSIONS")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("MAX_SESSIONS=7\nTHINK_BUDGET=2m\n"), 0o644))

	t.Setenv("THINK_BUDGET", "30s")

	conf, err := config.Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, int64(7), conf.MaxSessions, "value from .env")
	assert.Equal(t, 30*time.Second, conf.ThinkBudget, "environment wins over .env")
}

func TestLoad_MissingEnvFile(t *testing.T) {
	t.Setenv("STAGE", "")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
