package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")
	t.Setenv("LOOKUP_CACHE_TTL", "")
	t.Setenv("LOOKUP_MAX_WORKERS", "")

	cfg := New()

	assert.Equal(t, "https://api.twilio.com", cfg.Twilio.APIBaseURL)
	assert.Equal(t, "https://lookups.twilio.com", cfg.Twilio.LookupBaseURL)
	assert.Equal(t, 24*time.Hour, cfg.Lookup.CacheTTL)
	assert.Equal(t, 4, cfg.Worker.MaxWorkers)
	assert.Error(t, cfg.TwilioConfig().Validate())
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", " AC123 ")
	t.Setenv("TWILIO_AUTH_TOKEN", "token")
	t.Setenv("LOOKUP_CACHE_ENABLED", "off")
	t.Setenv("LOOKUP_CACHE_TTL", "90s")
	t.Setenv("LOOKUP_MAX_WORKERS", "not-a-number")

	cfg := New()
	tw := cfg.TwilioConfig()

	assert.Equal(t, "AC123", tw.AccountID)
	assert.Equal(t, "token", tw.AccountSecret)
	assert.NoError(t, tw.Validate())
	assert.False(t, cfg.Lookup.CacheEnabled)
	assert.Equal(t, 90*time.Second, cfg.Lookup.CacheTTL)
	assert.Equal(t, 4, cfg.Worker.MaxWorkers, "invalid ints fall back to the default")
}

func TestIsTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on "} {
		assert.True(t, isTruthy(v), v)
	}
	for _, v := range []string{"", "0", "false", "nope"} {
		assert.False(t, isTruthy(v), v)
	}
}
