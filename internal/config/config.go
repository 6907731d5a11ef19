package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:""`
	NoColor  bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`
	Glyphs   Glyphs `yaml:"glyphs"`
}

type Glyphs struct {
	X string `yaml:"x" env:"TICTACTOE_GLYPH_X" env-default:"X"`
	O string `yaml:"o" env:"TICTACTOE_GLYPH_O" env-default:"O"`
}

// Load reads the yaml file at path. A missing file falls back to the
// environment and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) || path == "" {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
