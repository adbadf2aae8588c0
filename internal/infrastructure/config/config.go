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

	// JWTSecret is the string the token signing key is derived from. The
	// default mirrors the development secret; override it in production.
	JWTSecret       string        `env:"JWT_SECRET,        default=my-very-secret-key-with-at-least-32-characters-1234567890"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL,  default=1h"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL, default=24h"`

	UserCacheTTL time.Duration `env:"USER_CACHE_TTL, default=5m"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Bootstrap BootstrapConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=household_store"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// BootstrapConfig holds the default accounts seeded at startup when absent.
type BootstrapConfig struct {
	AdminEmail      string `env:"BOOTSTRAP_ADMIN_EMAIL,      default=admin@household.store"`
	AdminPassword   string `env:"BOOTSTRAP_ADMIN_PASSWORD,   default=Admin123!"`
	ManagerEmail    string `env:"BOOTSTRAP_MANAGER_EMAIL,    default=manager@household.store"`
	ManagerPassword string `env:"BOOTSTRAP_MANAGER_PASSWORD, default=Manager123!"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
