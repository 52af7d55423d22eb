package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the variable holding the YAML file location.
const PathEnv = "CONFIG_PATH"

const defaultConfigPath = "./config.yaml"

// Load reads the file named by CONFIG_PATH (or ./config.yaml), overlays
// environment variables and validates the result. Environment beats YAML,
// and YAML beats env-default tags.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv(PathEnv))
}

// LoadFrom is Load with an explicit file. With an empty path the default
// file is optional: when it is absent only ENV and defaults apply. An
// explicit path that does not exist is an error.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	if err := read(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func read(path string, cfg *Config) error {
	optional := path == ""
	if optional {
		path = defaultConfigPath
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		// ReadConfig applies ENV on top of the file.
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		return nil
	case optional && errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("read env: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("file %s: %w", path, err)
	}
}
