package database

import (
	"fmt"
	"time"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/config"
)

// Config holds database connection and pooling settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
}

// DSN returns a PostgreSQL connection string.
func (c Config) DSN() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, sslmode,
	)
}

// ConnMaxLifetime returns the connection max lifetime as a duration.
func (c Config) ConnMaxLifetime() time.Duration {
	if c.ConnMaxLifetimeMin <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.ConnMaxLifetimeMin) * time.Minute
}

// DefaultConfig returns sensible defaults for database configuration.
func DefaultConfig() Config {
	return Config{
		Host:               "localhost",
		Port:               5432,
		SSLMode:            "disable",
		MaxOpenConns:       25,
		MaxIdleConns:       5,
		ConnMaxLifetimeMin: 5,
	}
}

// FromCentralConfig converts central config.DatabaseConfig to package Config.
func FromCentralConfig(c config.DatabaseConfig) Config {
	return Config{
		Host:               c.Host,
		Port:               c.Port,
		User:               c.User,
		Password:           c.Password,
		DBName:             c.DBName,
		SSLMode:            c.SSLMode,
		MaxOpenConns:       c.Pool.MaxOpenConns,
		MaxIdleConns:       c.Pool.MaxIdleConns,
		ConnMaxLifetimeMin: c.Pool.ConnMaxLifetimeMin,
	}
}
