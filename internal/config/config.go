// Package config loads the rowan configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the rowan CLI configuration.
type Config struct {
	Ingest  IngestConfig  `yaml:"ingest"`
	Serve   ServeConfig   `yaml:"serve"`
	Logging LoggingConfig `yaml:"logging"`
}

// IngestConfig holds ingestion pipeline settings.
type IngestConfig struct {
	// Input is the fragment directory or .epub archive.
	Input string `yaml:"input"`
	// OutputDir receives the artifacts.
	OutputDir string `yaml:"output_dir"`
	// CorpusFile and IndexFile override the artifact file names.
	// An .xz suffix enables compression.
	CorpusFile string `yaml:"corpus_file"`
	IndexFile  string `yaml:"index_file"`
}

// ServeConfig holds HTTP API server settings.
type ServeConfig struct {
	Port int `yaml:"port"`
	// DataDir is where the artifacts were written.
	DataDir    string `yaml:"data_dir"`
	CorpusFile string `yaml:"corpus_file"`
	IndexFile  string `yaml:"index_file"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Ingest: IngestConfig{
			Input:     "./corpus",
			OutputDir: "./data",
		},
		Serve: ServeConfig{
			Port:    8480,
			DataDir: "./data",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
