package gemini

import (
	"time"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/config"
)

// Config holds Gemini API settings. An empty APIKey yields a disabled client.
type Config struct {
	APIKey         string
	Model          string
	Endpoint       string
	TimeoutSeconds int
}

// DefaultConfig returns sensible defaults for the Gemini client.
func DefaultConfig() Config {
	return Config{
		Model:          "gemini-2.0-flash",
		Endpoint:       "https://generativelanguage.googleapis.com",
		TimeoutSeconds: 30,
	}
}

func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// FromCentralConfig converts central config.AssistantConfig to package Config,
// falling back to defaults for anything unset.
func FromCentralConfig(c config.AssistantConfig) Config {
	def := DefaultConfig()

	cfg := Config{
		APIKey:         c.APIKey,
		Model:          c.Model,
		Endpoint:       c.Endpoint,
		TimeoutSeconds: c.TimeoutSeconds,
	}
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = def.Endpoint
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = def.TimeoutSeconds
	}

	return cfg
}
