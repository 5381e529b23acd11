package config

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Server   ServerConfig   `env:",prefix=SERVER_"`
	Supabase SupabaseConfig `env:",prefix=SUPABASE_"`
	Redis    RedisConfig    `env:",prefix=REDIS_"`
	Security SecurityConfig `env:",prefix="`
	CORS     CORSConfig     `env:",prefix=CORS_"`
	Env      string         `env:"ENV,default=development"`
}

type ServerConfig struct {
	Port         string   `env:"PORT,default=8000"`
	Host         string   `env:"HOST,default=0.0.0.0"`
	ReadTimeout  Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout Duration `env:"WRITE_TIMEOUT,default=15s"`
}

type SupabaseConfig struct {
	URL            string   `env:"URL,required"`
	AnonKey        string   `env:"ANON_KEY,required"`
	ServiceRoleKey string   `env:"SERVICE_ROLE_KEY"`
	RequestTimeout Duration `env:"REQUEST_TIMEOUT,default=10s"`
}

type RedisConfig struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD,default="`
	DB       int    `env:"DB,default=0"`
}

type SecurityConfig struct {
	BCryptCost        int      `env:"BCRYPT_COST,default=10"`
	RateLimitRequests int      `env:"RATE_LIMIT_REQUESTS,default=10"`
	RateLimitWindow   Duration `env:"RATE_LIMIT_WINDOW,default=1m"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,default=http://localhost:3000,http://localhost:5173,http://localhost:8080"`
	AllowedMethods []string `env:"ALLOWED_METHODS,default=GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders []string `env:"ALLOWED_HEADERS,default=Content-Type,Authorization"`
}

// HasServiceRoleKey reports whether the privileged provider credential is
// configured. Without it email auto-confirmation is disabled and the
// registration insert falls back to the caller's session token.
func (s SupabaseConfig) HasServiceRoleKey() bool {
	return s.ServiceRoleKey != ""
}

// RateLimitEnabled reports whether a Redis address is configured.
// Rate limiting on the auth endpoints is skipped entirely without one.
func (r RedisConfig) RateLimitEnabled() bool {
	return r.Addr != ""
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var config Config

	if err := envconfig.Process(ctx, &config); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	u, err := url.Parse(config.Supabase.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("SUPABASE_URL must be an absolute URL, got %q", config.Supabase.URL)
	}

	return &config, nil
}

// LoadWithDefaults loads configuration with default context
func LoadWithDefaults() (*Config, error) {
	return Load(context.Background())
}
