package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rainesports/site-api/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv               string
	ServiceName          string
	ServiceVersion       string
	HTTPAddr             string
	ReadTimeout          time.Duration
	WriteTimeout         time.Duration
	CORSAllowedOrigins   []string
	AdminPassword        string
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	DiscordAPIBaseURL    string
	DiscordTimeout       time.Duration
	PprofEnabled         bool
	PprofAddr            string
	UptraceEnabled       bool
	UptraceDSN           string
	LogLevel             logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SESSION_TTL: %w", err)
	}
	if sessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be > 0")
	}

	sessionSweepInterval, err := time.ParseDuration(getEnv("SESSION_SWEEP_INTERVAL", "1h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SESSION_SWEEP_INTERVAL: %w", err)
	}
	if sessionSweepInterval <= 0 {
		return Config{}, fmt.Errorf("SESSION_SWEEP_INTERVAL must be > 0")
	}

	discordTimeout, err := time.ParseDuration(getEnv("DISCORD_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DISCORD_TIMEOUT: %w", err)
	}
	if discordTimeout <= 0 {
		return Config{}, fmt.Errorf("DISCORD_TIMEOUT must be > 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	cfg := Config{
		AppEnv:               appEnv,
		ServiceName:          getEnv("APP_SERVICE_NAME", "rain-site-api"),
		ServiceVersion:       getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:             getEnv("APP_HTTP_ADDR", ":5000"),
		ReadTimeout:          readTimeout,
		WriteTimeout:         writeTimeout,
		CORSAllowedOrigins:   splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AdminPassword:        getEnv("ADMIN_PASSWORD", "Rain2025"),
		SessionTTL:           sessionTTL,
		SessionSweepInterval: sessionSweepInterval,
		DiscordAPIBaseURL:    strings.TrimSpace(getEnv("DISCORD_API_BASE_URL", "https://discord.com/api/v10")),
		DiscordTimeout:       discordTimeout,
		PprofEnabled:         pprofEnabled,
		PprofAddr:            pprofAddr,
		UptraceEnabled:       uptraceEnabled,
		UptraceDSN:           uptraceDSN,
		LogLevel:             parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.AppEnv == EnvProd && cfg.AdminPassword == "Rain2025" {
		return Config{}, fmt.Errorf("ADMIN_PASSWORD must be set explicitly when APP_ENV=prod")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
