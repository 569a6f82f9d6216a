package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=adei"`
}

// RedisConfig controls the optional Redis backing for the auth rate
// limiter. When disabled the limiter counts in process memory, which is
// only correct for single-instance deployments.
type RedisConfig struct {
	Enabled bool   `env:"REDIS_ENABLED, default=false"`
	Addr    string `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int    `env:"REDIS_DB,      default=0"`
}

// AdminConfig holds the admin account provisioned at startup when no
// admin exists yet.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME, default=admin"`
	Email    string `env:"ADMIN_EMAIL,    default=admin@adei.local"`
	Password string `env:"ADMIN_PASSWORD, default=ChangeMe123"`
}

type RateLimitConfig struct {
	// AuthRequests per AuthWindow is the fixed window applied per client
	// IP on login and register.
	AuthRequests int64         `env:"RATE_LIMIT_AUTH_REQUESTS, default=5"`
	AuthWindow   time.Duration `env:"RATE_LIMIT_AUTH_WINDOW,   default=15m"`
	// APIRate and APIBurst parameterise the general request limiter
	// applied to the whole /api group.
	APIRate  float64 `env:"RATE_LIMIT_API_RATE,  default=20"`
	APIBurst int     `env:"RATE_LIMIT_API_BURST, default=50"`
}

// Load reads configuration from the environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
