// Package config holds viewer configuration: catalog root, server port,
// and the image extension filter. Values come from defaults, an optional
// YAML file, and environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked for when none is given.
const DefaultFile = "snipview.yaml"

// Config is the runtime configuration for the viewer
type Config struct {
	// Root is the catalog root, shaped <root>/<language>/<region>/{images,jsons}
	Root string `yaml:"root"`

	// Port the serve command listens on
	Port string `yaml:"port"`

	// Extensions are the image extensions paired against annotation sidecars
	Extensions []string `yaml:"extensions"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Root:       "vis-samples",
		Port:       "8888",
		Extensions: []string{".png", ".jpg", ".jpeg", ".gif", ".webp"},
	}
}

// Load builds the configuration from defaults, the YAML file at path (or
// DefaultFile when path is empty), and environment overrides. A missing
// file is not an error; a file that exists but cannot be parsed is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine; defaults apply.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if root := os.Getenv("SNIPVIEW_ROOT"); root != "" {
		cfg.Root = root
	}
	if port := os.Getenv("SNIPVIEW_PORT"); port != "" {
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the port range and normalizes the extension filter to
// lowercase, dot-prefixed form.
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("catalog root must not be empty")
	}

	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q: must be 1-65535", c.Port)
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf("at least one image extension is required")
	}
	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if ext == "." {
			return fmt.Errorf("invalid image extension %q", c.Extensions[i])
		}
		c.Extensions[i] = ext
	}

	return nil
}
