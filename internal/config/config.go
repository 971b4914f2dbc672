// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the project settings from catechism.yaml. The `yaml` tags
// map file keys to struct fields.
type Config struct {
	Title      string `yaml:"title"`
	Author     string `yaml:"author"`
	Version    string `yaml:"version"`     // Bible translation for lookup links
	LookupBase string `yaml:"lookup_base"` // Bible lookup service base URL
	Template   string `yaml:"template"`    // preview template name
}

// Default returns the settings that reproduce the published documents
// byte-for-byte, so a project works without any config file at all.
func Default() Config {
	return Config{
		Title:      "The Larger Catechism",
		Version:    "ESV",
		LookupBase: "https://www.biblegateway.com",
		Template:   "simple",
	}
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. A file that exists but cannot be parsed is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	return cfg, nil
}
