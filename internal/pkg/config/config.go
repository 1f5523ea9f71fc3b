package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT      JWTConfig
	Postgres PostgresConfig
}

type JWTConfig struct {
	// AccessSecret and RefreshSecret are independent; an access token can
	// never be replayed as a refresh token. Signing with an empty secret is
	// a misconfiguration, so both are required.
	AccessSecret  string        `env:"JWT_SECRET,         required"`
	RefreshSecret string        `env:"JWT_REFRESH_SECRET, required"`
	AccessTTL     time.Duration `env:"JWT_ACCESS_TTL,     default=15m"`
	RefreshTTL    time.Duration `env:"JWT_REFRESH_TTL,    default=168h"`
}

type PostgresConfig struct {
	// URL takes precedence when set (hosted deployments provide a single
	// connection string); otherwise the DSN is assembled from the discrete
	// fields.
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     string `env:"DB_PORT,     default=5432"`
	User     string `env:"DB_USER,     default=postgres"`
	Password string `env:"DB_PASSWORD"`
	Database string `env:"DB_DATABASE, default=gwarranty"`
}

// DSN returns the connection string for pgx. Production deployments run
// behind TLS; local ones do not.
func (p PostgresConfig) DSN(env string) string {
	if p.URL != "" {
		return p.URL
	}
	sslmode := "disable"
	if env == "production" {
		sslmode = "require"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, sslmode)
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
