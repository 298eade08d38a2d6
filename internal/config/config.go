package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenAddr string
	DBPath     string

	// BaseURL is the externally reachable URL of this server, used to build
	// email verification links.
	BaseURL         string
	VerifyCallback  string
	SessionTTL      time.Duration
	EmailAPIURL     string
	EmailAPIKey     string
	EmailFrom       string
	DescribeBackend string
	ClaudeAPIKey    string
	ClaudeModel     string
	LogLevel        string
	LogFile         string
}

func Load() *Config {
	return &Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":8080"),
		DBPath:          getEnv("DB_PATH", "/data/estatedesk.db"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
		VerifyCallback:  getEnv("VERIFY_CALLBACK_PATH", "/email-verified"),
		SessionTTL:      getDuration("SESSION_TTL", 7*24*time.Hour),
		EmailAPIURL:     getEnv("EMAIL_API_URL", "https://api.resend.com"),
		EmailAPIKey:     getEnv("EMAIL_API_KEY", ""),
		EmailFrom:       getEnv("EMAIL_FROM", "EstateDesk <onboarding@resend.dev>"),
		DescribeBackend: getEnv("DESCRIBE_BACKEND", "off"),
		ClaudeAPIKey:    getEnv("CLAUDE_API_KEY", ""),
		ClaudeModel:     getEnv("CLAUDE_MODEL", "claude-3-5-haiku-latest"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	// Plain integers are taken as hours.
	if h, err := strconv.Atoi(val); err == nil && h > 0 {
		return time.Duration(h) * time.Hour
	}
	return defaultVal
}
