// Package config loads the YAML-backed runtime configuration: the
// identifier prefix, server, logging, and OCR settings a deployment of
// this module needs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig configures the HTTP front-end.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// LoggingConfig configures structured log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// OCRConfig configures the text-acquisition boundary.
type OCRConfig struct {
	Engine   string `yaml:"engine"`
	Language string `yaml:"language"`
}

// Config is the top-level configuration document.
type Config struct {
	IDPrefix string        `yaml:"id_prefix"`
	Server   ServerConfig  `yaml:"server"`
	Logging  LoggingConfig `yaml:"logging"`
	OCR      OCRConfig     `yaml:"ocr"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		IDPrefix: "DOC",
		Server:   ServerConfig{ListenAddr: ":8080"},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
		OCR:      OCRConfig{Engine: "tesseract", Language: "eng"},
	}
}

// Load reads and parses a YAML config file, filling unset fields from
// Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.IDPrefix == "" {
		cfg.IDPrefix = "DOC"
	}
	return cfg, nil
}
