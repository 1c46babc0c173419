package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	envprovider "github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the environment variables read by LoadConfig.
const envPrefix = "ARCHON_"

// Config is the environment-derived client configuration. It is read
// once at startup by [LoadConfig]; the client itself only ever sees the
// already-resolved base URL.
type Config struct {
	Server ServerConfig `koanf:"server"`
	API    APIConfig    `koanf:"api"`
}

// ServerConfig locates the Archon server.
type ServerConfig struct {
	Scheme string `koanf:"scheme"`
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
}

// APIConfig holds credentials for the Archon API.
type APIConfig struct {
	Key string `koanf:"key"`
}

// LoadConfig reads the client configuration from ARCHON_* environment
// variables, falling back to defaults (http://localhost:8181, no API
// key). Recognized variables: ARCHON_SERVER_SCHEME, ARCHON_SERVER_HOST,
// ARCHON_SERVER_PORT, ARCHON_API_KEY.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"server.scheme": "http",
		"server.host":   "localhost",
		"server.port":   8181,
	}

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	err := k.Load(envprovider.Provider(envPrefix, ".", func(s string) string {
		// ARCHON_SERVER_HOST -> server.host
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	if c.Server.Scheme != "http" && c.Server.Scheme != "https" {
		return fmt.Errorf("server scheme must be http or https, got %q", c.Server.Scheme)
	}

	if c.Server.Host == "" {
		return errors.New("server host must not be empty")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}

	return nil
}

// BaseURL assembles the server base URL handed to [New].
func (c *Config) BaseURL() string {
	return fmt.Sprintf("%s://%s:%d", c.Server.Scheme, c.Server.Host, c.Server.Port)
}
