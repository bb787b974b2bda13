// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	APIURL      string        `env:"API_URL,default=http://localhost:8081"`
	APIBasePath string        `env:"API_BASE_PATH,default=/api"`
	APITimeout  time.Duration `env:"API_TIMEOUT,default=15s"`
	PageLimit   int           `env:"PAGE_LIMIT,default=10"`

	// The UI serves a single shared customer session with no per-client
	// isolation; keep it on loopback unless the network is trusted.
	ListenAddr   string `env:"LISTEN_ADDR,default=127.0.0.1:8080"`
	StoreBackend string `env:"STORE_BACKEND,default=memory"`
	ResetSession bool   `env:"RESET_SESSION,default=false"`

	RedisAddr      string        `env:"REDIS_ADDR,default=localhost:6379"`
	RedisUsername  string        `env:"REDIS_USERNAME"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB,default=0"`
	RedisKeyPrefix string        `env:"REDIS_KEY_PREFIX,default=dexter:"`
	RedisTTL       time.Duration `env:"REDIS_TTL,default=0s"`

	DBHost     string `env:"DB_HOST,default=localhost"`
	DBPort     string `env:"DB_PORT,default=5432"`
	DBUser     string `env:"DB_USER,default=postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME,default=storefront"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`

	MockAPIAddr string        `env:"MOCK_API_ADDR,default=:8081"`
	JWTSecret   string        `env:"JWT_SECRET,default=dexter-dev-secret"`
	JWTTTL      time.Duration `env:"JWT_TTL,default=24h"`
}

// Load reads an optional .env file and decodes the environment.
func Load(envFiles ...string) (*Config, error) {
	// a missing .env is normal outside development
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreBackend {
	case "memory", "redis", "postgres":
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	if c.PageLimit < 1 {
		return fmt.Errorf("PAGE_LIMIT must be positive, got %d", c.PageLimit)
	}
	if _, err := url.Parse(c.APIURL); err != nil {
		return fmt.Errorf("invalid API_URL: %w", err)
	}
	return nil
}

// APIBaseURL joins the API origin and base path.
func (c *Config) APIBaseURL() string {
	return strings.TrimRight(c.APIURL, "/") + "/" + strings.Trim(c.APIBasePath, "/")
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}
