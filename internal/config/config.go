package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// productionEnv is the APP_ENV value that turns on production behaviour
// (secure cookies, JSON logs, gin release mode).
const productionEnv = "prd"

type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Log       LogConfig
	Seed      SeedConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
	// TrustedProxies lists proxy addresses or CIDRs whose X-Forwarded-For is
	// believed. Empty means the socket address is the client IP.
	TrustedProxies []string
}

type AuthConfig struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	LoginLimit  int
	LoginWindow time.Duration
}

type LogConfig struct {
	Level string
}

type SeedConfig struct {
	Communities []string
}

// Production reports whether the process runs with APP_ENV=prd.
func (c ServerConfig) Production() bool {
	return strings.EqualFold(c.Env, productionEnv)
}

// Load reads an optional .env file and then the process environment.
// Values already present in the environment win over .env entries.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	accessTTL, err := parseDuration(v, "ACCESS_TOKEN_TTL")
	if err != nil {
		return Config{}, err
	}
	refreshTTL, err := parseDuration(v, "REFRESH_TOKEN_TTL")
	if err != nil {
		return Config{}, err
	}
	loginWindow, err := parseDuration(v, "LOGIN_RATE_WINDOW")
	if err != nil {
		return Config{}, err
	}

	return Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			Env:            v.GetString("APP_ENV"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			TrustedProxies: splitList(v.GetString("TRUSTED_PROXIES")),
		},
		Auth: AuthConfig{
			AccessTokenSecret:  v.GetString("ACCESS_TOKEN_SECRET"),
			RefreshTokenSecret: v.GetString("REFRESH_TOKEN_SECRET"),
			AccessTokenTTL:     accessTTL,
			RefreshTokenTTL:    refreshTTL,
		},
		Postgres: PostgresConfig{
			DatabaseURL: v.GetString("DATABASE_URL"),
			Host:        v.GetString("PGHOST"),
			Port:        v.GetString("PGPORT"),
			User:        v.GetString("PGUSER"),
			Password:    v.GetString("PGPASSWORD"),
			Database:    v.GetString("PGDATABASE"),
			SSLMode:     v.GetString("PGSSLMODE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			LoginLimit:  v.GetInt("LOGIN_RATE_LIMIT"),
			LoginWindow: loginWindow,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Seed: SeedConfig{
			Communities: splitList(v.GetString("SEED_COMMUNITIES")),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "4000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("ACCESS_TOKEN_TTL", "15m")
	v.SetDefault("REFRESH_TOKEN_TTL", "168h")
	v.SetDefault("PGHOST", "localhost")
	v.SetDefault("PGPORT", "5432")
	v.SetDefault("PGSSLMODE", "disable")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LOGIN_RATE_LIMIT", 10)
	v.SetDefault("LOGIN_RATE_WINDOW", "1m")
	v.SetDefault("SEED_COMMUNITIES", "general")

	// AutomaticEnv only resolves keys viper already knows about.
	for _, key := range []string{
		"ACCESS_TOKEN_SECRET", "REFRESH_TOKEN_SECRET", "DATABASE_URL",
		"PGUSER", "PGPASSWORD", "PGDATABASE", "REDIS_ADDR", "REDIS_PASSWORD",
		"TRUSTED_PROXIES",
	} {
		v.SetDefault(key, "")
	}
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
