package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	TickInterval  time.Duration `json:"tick_interval"`
	Seed          string        `json:"seed"`
	SeedFile      string        `json:"seed_file"`
	UseParallel   bool          `json:"use_parallel"`
	DrawSeedFirst bool          `json:"draw_seed_first"`
	Debug         bool          `json:"debug"`
	LogDir        string        `json:"log_dir"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		TickInterval:  time.Second,
		Seed:          "reference",
		UseParallel:   true,
		DrawSeedFirst: false, // First frame shows the seed's successor
		Debug:         false,
		LogDir:        "logs",
	}
}

// Validate checks the values a decoded file may have broken
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return errors.Errorf("[Config.Validate] tick_interval must be positive, got %v", c.TickInterval)
	}
	if c.Debug && c.LogDir == "" {
		return errors.New("[Config.Validate] log_dir is required when debug is set")
	}
	return nil
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}
