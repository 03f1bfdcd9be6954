package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/melkeydev/sqltypes/ddl"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no config path is given. It may be absent.
const DefaultPath = "sqltypes.yaml"

type Config struct {
	Schema SchemaConfig `yaml:"schema"`
	Server ServerConfig `yaml:"server"`
}

type SchemaConfig struct {
	File    string `yaml:"file,omitempty"`
	Dialect string `yaml:"dialect,omitempty"`
}

type ServerConfig struct {
	Name    string `yaml:"name,omitempty"`
	Version string `yaml:"version,omitempty"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

func (c *Config) ApplyDefaults() {
	if c.Schema.File == "" {
		c.Schema.File = "schema.yaml"
	}
	if c.Schema.Dialect == "" {
		c.Schema.Dialect = string(ddl.Postgres)
	}
	if c.Server.Name == "" {
		c.Server.Name = "sqltypes"
	}
	if c.Server.Version == "" {
		c.Server.Version = "0.1.0"
	}
}

// LoadConfig reads the config file at configPath. An empty path means
// DefaultPath, and a missing DefaultPath yields the defaults; a missing file
// that was asked for by name is an error.
func LoadConfig(configPath string) (*Config, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = DefaultPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	config.ApplyDefaults()

	if _, err := config.Schema.GetDialect(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (s *SchemaConfig) GetDialect() (ddl.Dialect, error) {
	d, err := ddl.ParseDialect(s.Dialect)
	if err != nil {
		return "", fmt.Errorf("invalid schema config: %w", err)
	}
	return d, nil
}
