package config

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the application configuration.
type Config struct {
	Env           string `yaml:"env" env:"APP_ENV" env-default:"local"`
	Host          string `yaml:"host" env:"HOST" env-default:"0.0.0.0"`
	Port          int    `yaml:"port" env:"PORT" env-default:"8080"`
	StaticDir     string `yaml:"static_dir" env:"STATIC_DIR" env-default:"./web"`
	IBANMinLength int    `yaml:"iban_min_length" env:"IBAN_MIN_LENGTH" env-default:"8"`
	StatsCron     string `yaml:"stats_cron" env:"STATS_CRON" env-default:"@every 1m"`
	Kafka         Kafka  `yaml:"kafka"`
}

// Kafka configures the optional transfer-event publisher. Events stay
// disabled while Brokers is empty.
type Kafka struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS"`
	Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"abank.transfers"`
}

// Load reads configuration from the yaml file named by CONFIG_PATH, or
// from environment variables with defaults when no file is given.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
