// Package config provides configuration management for the sparsecalc CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	Dir        string `koanf:"dir"`
	Extension  string `koanf:"extension"`
	OutputFile string `koanf:"output_file"`
	Convention string `koanf:"convention"`
	Workers    int    `koanf:"workers"`
	PruneZeros bool   `koanf:"prune_zeros"`
	Mmap       bool   `koanf:"mmap"`
	LogLevel   string `koanf:"log_level"`
	LogFormat  string `koanf:"log_format"`
	Verbose    bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultDir        = "."
	DefaultExtension  = ".txt"
	DefaultOutputFile = "output.txt"
	DefaultConvention = "standard"
	DefaultWorkers    = 1
	DefaultLogLevel   = "warn"
	DefaultLogFormat  = "text"

	// EnvPrefix prefixes every environment override, e.g. SPARSECALC_WORKERS.
	EnvPrefix = "SPARSECALC_"
)

// ConfigFileNames are searched in the working directory, in order.
var ConfigFileNames = []string{"sparsecalc.yaml", "sparsecalc.yml"}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Dir:        DefaultDir,
		Extension:  DefaultExtension,
		OutputFile: DefaultOutputFile,
		Convention: DefaultConvention,
		Workers:    DefaultWorkers,
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
	}
}
