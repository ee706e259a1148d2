package tracelog

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds the settings for a logging Service. Both sinks are
// enabled by default; disabling one is mainly useful in tests.
type Config struct {
	// FilePath is the location of the append-only log file.
	FilePath string `env:"TRACELOG_FILE" validate:"required"`
	// Threshold is the minimum severity name ("fatal".."debug").
	Threshold string `env:"TRACELOG_LEVEL" envDefault:"info" validate:"required"`
	// ConsoleLogging mirrors every record to standard output.
	ConsoleLogging bool `env:"TRACELOG_CONSOLE" envDefault:"true"`
	// FileLogging writes every record to FilePath.
	FileLogging bool `env:"TRACELOG_FILE_LOGGING" envDefault:"true"`
}

// DefaultConfig returns a Config with both sinks enabled and an info
// threshold, writing to the given path.
func DefaultConfig(path string) *Config {
	return &Config{
		FilePath:       path,
		Threshold:      LevelInfo.String(),
		ConsoleLogging: true,
		FileLogging:    true,
	}
}

// LoadConfigFromEnv builds a Config from TRACELOG_* environment
// variables and validates it.
func LoadConfigFromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "parsing environment variables")
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
