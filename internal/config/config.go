package config

import (
	"github.com/joho/godotenv"
	"github.com/oggyb/twilio-bridge/internal/sms"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App struct {
		Name     string
		Env      string
		LogLevel string
	}

	API struct {
		Host string
		Port string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Twilio struct {
		AccountSID    string
		AuthToken     string
		APIBaseURL    string
		LookupBaseURL string
	}

	SMS struct {
		// ReplyMessage is the body sent back to inbound messages.
		ReplyMessage string
	}

	Lookup struct {
		CacheEnabled bool
		CacheTTL     time.Duration
	}

	Worker struct {
		MaxWorkers      int
		ProviderTimeout time.Duration
	}
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	// App
	cfg.App.Name = getEnv("APP_NAME", "twilio-bridge")
	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.LogLevel = getEnv("LOG_LEVEL", "info")

	// API
	cfg.API.Host = getEnv("API_HOST", "0.0.0.0")
	cfg.API.Port = getEnv("API_PORT", "8080")

	// Redis
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "redis:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getInt("REDIS_DB", 0)

	// Twilio account
	cfg.Twilio.AccountSID = getEnv("TWILIO_ACCOUNT_SID", "")
	cfg.Twilio.AuthToken = getEnv("TWILIO_AUTH_TOKEN", "")
	cfg.Twilio.APIBaseURL = getEnv("TWILIO_API_BASE_URL", sms.DefaultAPIBaseURL)
	cfg.Twilio.LookupBaseURL = getEnv("TWILIO_LOOKUP_BASE_URL", sms.DefaultLookupBaseURL)

	// Inbound replies
	cfg.SMS.ReplyMessage = getEnv("SMS_REPLY_MESSAGE", "Thanks, we received your message.")

	// Lookup cache
	cfg.Lookup.CacheEnabled = isTruthy(getEnv("LOOKUP_CACHE_ENABLED", "true"))
	cfg.Lookup.CacheTTL = getDuration("LOOKUP_CACHE_TTL", 24*time.Hour)

	// Worker / provider calls
	cfg.Worker.MaxWorkers = getInt("LOOKUP_MAX_WORKERS", 4)
	cfg.Worker.ProviderTimeout = getDuration("PROVIDER_TIMEOUT", 10*time.Second)

	return cfg
}

// TwilioConfig returns the provider configuration for sms.NewTwilioClient.
func (c *Config) TwilioConfig() sms.Config {
	return sms.Config{
		AccountID:     c.Twilio.AccountSID,
		AccountSecret: c.Twilio.AuthToken,
		APIBaseURL:    c.Twilio.APIBaseURL,
		LookupBaseURL: c.Twilio.LookupBaseURL,
	}
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
