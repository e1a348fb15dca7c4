package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"gridworks/internal/domain"
)

// Config models gridworks.yml.
type Config struct {
	Server struct {
		Addr     string `yaml:"addr"`
		BasePath string `yaml:"base_path"`
	} `yaml:"server"`
	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
		TokenTTL  string `yaml:"token_ttl"`
	} `yaml:"auth"`
	Paging struct {
		PerPage    int `yaml:"per_page"`
		MaxPerPage int `yaml:"max_per_page"`
	} `yaml:"paging"`
}

// Path returns the config file path for a workspace.
func Path(workspace string) string {
	if workspace == "" {
		workspace = "."
	}
	return filepath.Join(workspace, "gridworks.yml")
}

// Load reads and validates config from workspace.
func Load(workspace string) (*Config, error) {
	path := Path(workspace)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config %s not found; run gw init to create it", path)
		}
		return nil, err
	}
	return FromYAML(data)
}

// LoadOptional returns the defaults if the config file does not exist.
func LoadOptional(workspace string) (*Config, error) {
	data, err := os.ReadFile(Path(workspace))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return FromYAML(data)
}

// FromYAML parses and validates config from raw YAML bytes. Unset fields
// take the defaults.
func FromYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromFile reads YAML config from the given path.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromYAML(data)
}

// Validate ensures the config meets required structure.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("config.server.addr is required")
	}
	if !strings.HasPrefix(c.Server.BasePath, "/") {
		return fmt.Errorf("config.server.base_path must start with /")
	}
	if c.Auth.TokenTTL != "" {
		if _, err := time.ParseDuration(c.Auth.TokenTTL); err != nil {
			return fmt.Errorf("config.auth.token_ttl: %w", err)
		}
	}
	if c.Paging.PerPage < 1 {
		return fmt.Errorf("config.paging.per_page must be positive")
	}
	if c.Paging.MaxPerPage < c.Paging.PerPage {
		return fmt.Errorf("config.paging.max_per_page must be >= per_page")
	}
	return nil
}

// PageBounds returns the configured paging bounds for the listing
// normalizer.
func (c *Config) PageBounds() domain.PageBounds {
	return domain.PageBounds{
		PerPage:    c.Paging.PerPage,
		MaxPerPage: c.Paging.MaxPerPage,
	}
}

// TokenTTL returns the parsed token lifetime, zero when unset.
func (c *Config) TokenTTL() time.Duration {
	if c.Auth.TokenTTL == "" {
		return 0
	}
	d, _ := time.ParseDuration(c.Auth.TokenTTL)
	return d
}

// Default returns the default Config struct.
func Default() *Config {
	var cfg Config
	cfg.Server.Addr = ":8080"
	cfg.Server.BasePath = "/api/v1"
	cfg.Auth.TokenTTL = "12h"
	cfg.Paging.PerPage = domain.DefaultPerPage
	cfg.Paging.MaxPerPage = domain.MaxPerPage
	return &cfg
}

// GenerateDefault returns default config YAML.
func GenerateDefault() string {
	return defaultTemplate
}

const defaultTemplate = `server:
  addr: ":8080"
  base_path: /api/v1

auth:
  # HS256 signing secret for API tokens. Empty disables authenticated routes.
  jwt_secret: ""
  token_ttl: 12h

paging:
  per_page: 10
  max_per_page: 100
`
