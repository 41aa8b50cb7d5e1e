package redis

import (
	"time"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/config"
)

// Config holds Redis connection settings.
type Config struct {
	Addr     string
	DB       int
	Username string
	Password string

	PoolSize     int
	MinIdleConns int

	DialTimeoutSeconds  int
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
}

// DefaultConfig returns sensible defaults for Redis configuration.
func DefaultConfig() Config {
	return Config{
		Addr:                "localhost:6379",
		DB:                  0,
		PoolSize:            10,
		MinIdleConns:        2,
		DialTimeoutSeconds:  5,
		ReadTimeoutSeconds:  3,
		WriteTimeoutSeconds: 3,
	}
}

func (c Config) DialTimeout() time.Duration {
	if c.DialTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.DialTimeoutSeconds) * time.Second
}

func (c Config) ReadTimeout() time.Duration {
	if c.ReadTimeoutSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

func (c Config) WriteTimeout() time.Duration {
	if c.WriteTimeoutSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// FromCentralConfig converts central config.RedisConfig to package Config,
// falling back to defaults for anything unset.
func FromCentralConfig(c config.RedisConfig) Config {
	def := DefaultConfig()

	cfg := Config{
		Addr:                c.Addr,
		DB:                  c.DB,
		Username:            c.Username,
		Password:            c.Password,
		PoolSize:            c.PoolSize,
		MinIdleConns:        c.MinIdleConns,
		DialTimeoutSeconds:  c.DialTimeoutSeconds,
		ReadTimeoutSeconds:  c.ReadTimeoutSeconds,
		WriteTimeoutSeconds: c.WriteTimeoutSeconds,
	}

	if cfg.Addr == "" {
		cfg.Addr = def.Addr
	}
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = def.PoolSize
	}
	if cfg.MinIdleConns <= 0 {
		cfg.MinIdleConns = def.MinIdleConns
	}
	if cfg.DialTimeoutSeconds <= 0 {
		cfg.DialTimeoutSeconds = def.DialTimeoutSeconds
	}
	if cfg.ReadTimeoutSeconds <= 0 {
		cfg.ReadTimeoutSeconds = def.ReadTimeoutSeconds
	}
	if cfg.WriteTimeoutSeconds <= 0 {
		cfg.WriteTimeoutSeconds = def.WriteTimeoutSeconds
	}

	return cfg
}
