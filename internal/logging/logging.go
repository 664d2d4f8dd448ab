// Package logging builds the application's zerolog logger.
//
// The terminal belongs to the UI while the dashboard runs, so logs go to a
// file by default. Console output is only used by non-interactive commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Config selects level, format and destination.
type Config struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error disabled"`
	Format string `yaml:"format" validate:"oneof=json console"`
	File   string `yaml:"file"`   // empty with Stderr unset means discard
	Stderr bool   `yaml:"stderr"` // write to stderr instead of File
}

// DefaultConfig logs info and above as JSON to ~/.linkbird/linkbird.log.
func DefaultConfig() Config {
	file := ""
	if home, err := os.UserHomeDir(); err == nil {
		file = filepath.Join(home, ".linkbird", "linkbird.log")
	}
	return Config{Level: "info", Format: "json", File: file}
}

func (c *Config) setDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "json"
	}
}

// New returns a logger for cfg and a closer for its file, if any.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	cfg.setDefaults()
	if err := validator.New().Struct(cfg); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("logger config validation error: %w", err)
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	var (
		out    io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	switch {
	case cfg.Stderr:
		out = os.Stderr
	case cfg.File != "":
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: !cfg.Stderr}
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "linkbird").
		Logger()
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
