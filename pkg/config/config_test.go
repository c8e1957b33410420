package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := newConfig()
	assert.Equal(t, ":8080", cfg.GetString("API_ADDRESS"))
	assert.Equal(t, "sqlite", cfg.GetString("STORAGE_DRIVER"))
	assert.Equal(t, 5*time.Minute, cfg.GetDuration("SNOOZE_DURATION"))
	assert.Equal(t, 15*time.Minute, cfg.GetDuration("INEXACT_WINDOW"))
	assert.True(t, cfg.GetBool("EXACT_ALARMS_ALLOWED"))
	assert.Equal(t, "23:55", cfg.GetString("ROLLOVER_AT"))
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SNOOZE_DURATION", "90s")
	t.Setenv("EXACT_ALARMS_ALLOWED", "false")
	t.Setenv("STORAGE_DRIVER", "postgres")
	cfg := newConfig()
	assert.Equal(t, 90*time.Second, cfg.GetDuration("SNOOZE_DURATION"))
	assert.False(t, cfg.GetBool("EXACT_ALARMS_ALLOWED"))
	assert.Equal(t, "postgres", cfg.GetString("STORAGE_DRIVER"))
}

func TestSet(t *testing.T) {
	cfg := newConfig()
	cfg.Set("ROLLOVER_AT", "00:05")
	assert.Equal(t, "00:05", cfg.GetString("ROLLOVER_AT"))
}
