package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Loader reads and writes one config file.
type Loader struct {
	path string
}

// NewLoader returns a loader for path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the file. A missing file yields Default().
func (l *Loader) Load() (*Config, error) {
	return l.LoadWithCreate(false)
}

// LoadWithCreate reads the file, writing defaults first when it is missing
// and createIfMissing is set. Fields absent from the file keep their defaults.
func (l *Loader) LoadWithCreate(createIfMissing bool) (*Config, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if createIfMissing {
			if err := l.Save(cfg); err != nil {
				return nil, fmt.Errorf("failed to create config file: %w", err)
			}
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating the directory if needed.
func (l *Loader) Save(cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
