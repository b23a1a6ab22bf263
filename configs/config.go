package configs

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DBSource string `envconfig:"DB_SOURCE" default:"coffeeshop.db"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	SeedDB   bool   `envconfig:"SEED_DB" default:"true"`
}

// LoadConfig reads .env when present, then the environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
