// Package config loads the dashboard's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"

	"linkbird/internal/fixture"
	"linkbird/internal/logging"
	"linkbird/internal/paginator"
	"linkbird/internal/store"
	"linkbird/internal/telemetry"
)

const (
	// PathEnv overrides the config file location.
	PathEnv = "LINKBIRD_CONFIG"
	// DefaultFileName is the config file name under ~/.linkbird.
	DefaultFileName = "config.yaml"
	// DefaultPageSize is how many rows each infinite-scroll load reveals.
	DefaultPageSize = 20
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the whole configuration file.
type Config struct {
	StartPage store.Page    `yaml:"start_page"`
	SkipLogin bool          `yaml:"skip_login"`
	PageSize  int           `yaml:"page_size" validate:"gte=1,lte=500"`
	LoadDelay time.Duration `yaml:"load_delay" validate:"gte=0"`

	Data      DataConfig       `yaml:"data"`
	Log       logging.Config   `yaml:"log"`
	Telemetry telemetry.Config `yaml:"telemetry"`
}

// DataConfig sizes the generated dataset.
type DataConfig struct {
	Seed      uint64 `yaml:"seed"` // 0 picks a fresh random dataset every run
	Leads     int    `yaml:"leads" validate:"gte=0,lte=100000"`
	Campaigns int    `yaml:"campaigns" validate:"gte=0,lte=10000"`
	Accounts  int    `yaml:"accounts" validate:"gte=0,lte=1000"`
	Activity  int    `yaml:"activity" validate:"gte=0,lte=1000"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		StartPage: store.PageLeads,
		PageSize:  DefaultPageSize,
		LoadDelay: paginator.DefaultDelay,
		Data: DataConfig{
			Leads:     fixture.DefaultLeadCount,
			Campaigns: fixture.DefaultCampaignCount,
			Accounts:  fixture.DefaultAccountCount,
			Activity:  fixture.DefaultActivityCount,
		},
		Log: logging.DefaultConfig(),
	}
}

// Validate checks field bounds.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// DefaultPath returns $LINKBIRD_CONFIG or ~/.linkbird/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".linkbird", DefaultFileName), nil
}
