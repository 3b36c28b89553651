package config

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full runtime configuration, sourced from the environment.
type Config struct {
	Port         string `env:"PORT,          default=8080"`
	Env          string `env:"ENV,           default=development"`
	LogLevel     string `env:"LOG_LEVEL,     default=info"`
	ClientOrigin string `env:"CLIENT_ORIGIN, default=http://localhost:3000"`

	JWTSecret      string `env:"JWT_SECRET"`
	JWTTTLHours    int    `env:"JWT_TTL_HOURS,    default=24"`
	CookieTTLHours int    `env:"COOKIE_TTL_HOURS, default=24"`

	// TrustedProxies lists CIDRs whose X-Forwarded-Proto header is honored
	// when deciding the session cookie's Secure flag. Empty = never trust.
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	RateLimit         int `env:"RATE_LIMIT,          default=100"`
	RateWindowMinutes int `env:"RATE_WINDOW_MINUTES, default=60"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=deskhive"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables. A missing JWT secret is
// a fatal misconfiguration: nothing downstream can issue or verify sessions.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET must be set")
	}
	if err := validateCIDRs(cfg.TrustedProxies); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateCIDRs(cidrs []string) error {
	for _, c := range cidrs {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, _, err := net.ParseCIDR(c); err != nil {
			return fmt.Errorf("config: invalid trusted proxy %q: %w", c, err)
		}
	}
	return nil
}

// IsProduction reports whether the service runs in its production posture.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
