// Package config loads the HTTP server configuration from an optional
// YAML file layered over built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds all tunables of the analysis server.
type ServerConfig struct {
	// Port the HTTP server listens on.
	Port int `yaml:"port"`
	// ReadTimeoutSeconds and WriteTimeoutSeconds bound request I/O.
	ReadTimeoutSeconds  int `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int `yaml:"write_timeout_seconds"`
	// MaxFileSize caps one uploaded file, MaxTotalSize the whole upload,
	// both in bytes.
	MaxFileSize  int `yaml:"max_file_size"`
	MaxTotalSize int `yaml:"max_total_size"`
	// MinFiles/MaxFiles bound the file count of one sentence analysis.
	MinFiles int `yaml:"min_files"`
	MaxFiles int `yaml:"max_files"`
	// MinDocuments/MaxDocuments bound a document-level request; each
	// document may hold at most MaxDocumentLength characters.
	MinDocuments      int `yaml:"min_documents"`
	MaxDocuments      int `yaml:"max_documents"`
	MaxDocumentLength int `yaml:"max_document_length"`
	// DefaultThreshold applies when a sentence analysis request carries
	// no threshold field.
	DefaultThreshold float64 `yaml:"default_threshold"`
	// LogFile receives server logs; empty means stdout.
	LogFile string `yaml:"log_file"`
}

// Default returns the built-in server configuration.
func Default() ServerConfig {
	return ServerConfig{
		Port:                3000,
		ReadTimeoutSeconds:  30,
		WriteTimeoutSeconds: 30,
		MaxFileSize:         10 * 1024 * 1024,
		MaxTotalSize:        50 * 1024 * 1024,
		MinFiles:            2,
		MaxFiles:            5,
		MinDocuments:        2,
		MaxDocuments:        100,
		MaxDocumentLength:   50_000,
		DefaultThreshold:    0.70,
		LogFile:             "",
	}
}

// Load reads a YAML file over the defaults. Fields absent from the file
// keep their default values.
func Load(path string) (ServerConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks invariants that would otherwise surface as confusing
// runtime behavior.
func (c ServerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.MinFiles < 2 {
		return fmt.Errorf("min_files %d must be at least 2", c.MinFiles)
	}
	if c.MaxFiles < c.MinFiles {
		return fmt.Errorf("max_files %d below min_files %d", c.MaxFiles, c.MinFiles)
	}
	if c.MaxFileSize <= 0 || c.MaxTotalSize < c.MaxFileSize {
		return fmt.Errorf("upload size limits inconsistent: file %d, total %d", c.MaxFileSize, c.MaxTotalSize)
	}
	if c.DefaultThreshold < 0 || c.DefaultThreshold > 1 {
		return fmt.Errorf("default_threshold %f must be between 0.0 and 1.0", c.DefaultThreshold)
	}
	return nil
}
