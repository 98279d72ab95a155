package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	Session  SessionConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Mongo    MongoConfig
	SMTP     SMTPConfig
}

// SessionConfig controls the signed session cookie.
type SessionConfig struct {
	SecretKey    string        `env:"SECRET_KEY, required"`
	TTL          time.Duration `env:"SESSION_TTL,   default=720h"`
	CookieSecure bool          `env:"COOKIE_SECURE, default=false"`
}

type DatabaseConfig struct {
	Path string `env:"DATABASE_PATH, default=posts.db"`
}

// RedisConfig is optional; an empty Addr keeps sessions in process memory.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// MongoConfig is optional; an empty URI disables the audit log.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=blog"`
}

type SMTPConfig struct {
	Host      string `env:"SMTP_HOST, default=smtp.gmail.com"`
	Port      int    `env:"SMTP_PORT, default=465"`
	Username  string `env:"SMTP_USERNAME"`
	Password  string `env:"SMTP_PASSWORD"`
	Recipient string `env:"CONTACT_RECIPIENT"`
}

// IsProduction reports whether the process runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(context.Background(), envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}
