package cmd

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config holds the operator's default rewrite identity. Explicit flags
// always win over these values.
type Config struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// ParseConfigYAML parses a [Config] from yaml bytes.
func ParseConfigYAML(file []byte) (*Config, error) {
	result := &Config{}

	if err := yaml.Unmarshal(file, result); err != nil {
		return nil, err
	}

	return result, nil
}

// DefaultConfigPath is the conventional config location under the user's
// home directory.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "git-editor", "config.yaml")
}

// LoadConfig reads the config at path, falling back to
// [DefaultConfigPath] when path is empty. A missing file yields an empty
// config.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseConfigYAML(data)
}
