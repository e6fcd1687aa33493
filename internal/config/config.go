package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/kenelite/go-singleton/internal/observability"
)

const (
	DefaultAdminAddr = ":9000"
	DefaultLogLevel  = "info"
	DefaultRepeat    = 2
)

type ServerConfig struct {
	AdminAddr string `yaml:"admin_addr" json:"admin_addr"`
}

type ObservabilityConfig struct {
	LogLevel string `yaml:"log_level" json:"log_level"`
}

type DemoConfig struct {
	// Repeat is how many times each variant is requested.
	Repeat int `yaml:"repeat" json:"repeat"`
}

type Config struct {
	Server        ServerConfig        `yaml:"server" json:"server"`
	Observability ObservabilityConfig `yaml:"observability" json:"observability"`
	Demo          DemoConfig          `yaml:"demo" json:"demo"`
}

func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads a YAML config file. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse yaml")
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.AdminAddr == "" {
		c.Server.AdminAddr = DefaultAdminAddr
	}
	if c.Observability.LogLevel == "" {
		c.Observability.LogLevel = DefaultLogLevel
	}
	if c.Demo.Repeat == 0 {
		c.Demo.Repeat = DefaultRepeat
	}
}

func (c *Config) Validate() error {
	if c.Demo.Repeat < 2 {
		return errors.Errorf("demo.repeat must be at least 2, got %d", c.Demo.Repeat)
	}
	if _, err := observability.ParseLevel(c.Observability.LogLevel); err != nil {
		return errors.Wrap(err, "observability.log_level")
	}
	return nil
}
