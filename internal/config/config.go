package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	API      APIConfig
	Telegram TelegramConfig
	DeArrow  DeArrowConfig
	Wisdom   WisdomConfig
	LogLevel string
}

type ServerConfig struct {
	Port string
	Host string
}

type APIConfig struct {
	// APIKey protects /api/v1 when set. Empty leaves the API open.
	APIKey string
}

type TelegramConfig struct {
	// BotToken enables the Telegram bot. Empty runs the HTTP API only.
	BotToken string
	Debug    bool
	// APIEndpoint is a Bot API URL format taking the token and method.
	// Empty uses the public Bot API.
	APIEndpoint string
	PollTimeout time.Duration
	// RequestTimeout bounds every Bot API call on top of PollTimeout.
	RequestTimeout time.Duration
}

type DeArrowConfig struct {
	Timeout   time.Duration
	UserAgent string
}

type WisdomConfig struct {
	Cooldown time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	cfg := &Config{}

	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	cfg.API.APIKey = getEnv("API_KEY", "")

	cfg.Telegram.BotToken = getEnv("TELEGRAM_BOT_TOKEN", "")
	cfg.Telegram.Debug = getEnvBool("TELEGRAM_DEBUG", false)
	pollTimeout, err := getEnvDuration("TELEGRAM_POLL_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.Telegram.PollTimeout = pollTimeout
	cfg.Telegram.APIEndpoint = getEnv("TELEGRAM_API_ENDPOINT", "")
	requestTimeout, err := getEnvDuration("TELEGRAM_REQUEST_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.Telegram.RequestTimeout = requestTimeout

	dearrowTimeout, err := getEnvDuration("DEARROW_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.DeArrow.Timeout = dearrowTimeout
	cfg.DeArrow.UserAgent = getEnv("DEARROW_USER_AGENT", "rustyreel/1.0")

	cooldown, err := getEnvDuration("WISDOM_COOLDOWN", 5*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.Wisdom.Cooldown = cooldown

	return cfg, nil
}

// TelegramEnabled reports whether a bot token was configured.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != ""
}

func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return d, nil
}
