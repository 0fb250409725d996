package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"strconv"

	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port     string `yaml:"port" env:"PORT"`
	Seed     *int64 `yaml:"seed" env:"ONITAMA_SEED"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
}

func Default() Config {
	return Config{
		Port:     "8080",
		LogLevel: "info",
	}
}

// Load reads the YAML file at path, if any, then applies PORT, ONITAMA_SEED
// and LOG_LEVEL from the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("port is empty")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("port %q: %w", c.Port, err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level; Validate has already checked it.
func (c Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
