// Package config loads generation settings from a YAML file. The CLI merges
// these under its flags: an explicit flag always wins over the file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the CLI flags in file form.
type Config struct {
	DSN     string `yaml:"dsn"`
	Dialect string `yaml:"dialect"`
	Schema  string `yaml:"schema"`

	Output    string `yaml:"output"`
	OutputDir string `yaml:"outputDir"`
	Format    string `yaml:"format"`

	Tables        []string `yaml:"tables"`
	ExcludeTables []string `yaml:"excludeTables"`
	Include       string   `yaml:"include"`
	Exclude       string   `yaml:"exclude"`

	Package      string `yaml:"package"`
	Indent       string `yaml:"indent"`
	EOL          string `yaml:"eol"`
	Prepend      string `yaml:"prepend"`
	Append       string `yaml:"append"`
	OmitComments bool   `yaml:"omitComments"`

	Verbose bool `yaml:"verbose"`
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Dialect {
	case "", "postgres", "mysql", "mssql", "sqlite":
	default:
		return fmt.Errorf("unsupported dialect: %s", c.Dialect)
	}

	switch c.Format {
	case "", "go", "dbml":
	default:
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	if c.Output != "" && c.OutputDir != "" {
		return errors.New("output and outputDir are mutually exclusive")
	}
	if c.OutputDir != "" && c.Format == "dbml" {
		return errors.New("outputDir requires the go format")
	}

	return nil
}
