package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sparsecalc/matrix"
	"github.com/katalvlaran/sparsecalc/triplet"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Extension == "" {
		return fmt.Errorf("extension is required")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output_file is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if _, err := matrix.ParseConvention(c.Convention); err != nil {
		return fmt.Errorf("invalid convention: %w", err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// MulOptions translates the config into Multiply options.
// Call after Validate.
func (c *Config) MulOptions() []matrix.MulOption {
	conv, err := matrix.ParseConvention(c.Convention)
	if err != nil {
		conv = matrix.DefaultConvention
	}
	workers := max(c.Workers, 1)

	return []matrix.MulOption{matrix.WithConvention(conv), matrix.WithWorkers(workers)}
}

// ParseOptions translates the config into triplet parse options.
func (c *Config) ParseOptions(extra ...triplet.Option) []triplet.Option {
	return append([]triplet.Option{triplet.WithMmap(c.Mmap)}, extra...)
}
