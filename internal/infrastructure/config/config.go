package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,         default=8080"`
	Env      string `env:"ENV,          default=development"`
	LogLevel string `env:"LOG_LEVEL,    default=info"`

	// AuthAPIURL is the base URL of the remote authentication API that owns
	// credential validation and token issuance.
	AuthAPIURL string `env:"AUTH_API_URL, default=http://localhost:9090"`

	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Workers int `env:"INQUIRY_WORKERS, default=4"`
}

type SessionConfig struct {
	// Backend selects the persisted session record store: file or redis.
	Backend string `env:"SESSION_BACKEND, default=file"`
	// FilePath is where the file backend keeps the record.
	FilePath string `env:"SESSION_FILE,    default=.portal/session.json"`
	// Name scopes the redis backend's keys.
	Name string `env:"SESSION_NAME,    default=portal"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=vendor_portal"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
