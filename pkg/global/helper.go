package global

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the process-wide settings loaded from the environment.
type Config struct {
	Port           string        `split_words:"true" default:"8000"`
	Env            string        `split_words:"true" default:"development"`
	APIBaseURL     string        `envconfig:"API_BASE_URL" required:"true"`
	RedisAddress   string        `split_words:"true" default:"localhost:6379"`
	RedisPassword  string        `split_words:"true" default:""`
	CacheTTL       time.Duration `split_words:"true" default:"15m"`
	RequestTimeout time.Duration `split_words:"true" default:"10s"`
}

// LoadConfig reads Config from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
