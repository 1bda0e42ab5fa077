// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"taxon-scan/internal/paths"

	"gopkg.in/yaml.v3"
)

// DefaultOutputFile is the result file written next to the working
// directory when no output override is given.
const DefaultOutputFile = "families-e-ordens-em-portugues.txt"

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Output           string `yaml:"output"`
		OutputDir        string `yaml:"output_dir"`
		NoColor          bool   `yaml:"no_color"`
		Verbose          bool   `yaml:"verbose"`
		Debug            bool   `yaml:"debug"`
		MaxPages         int    `yaml:"max_pages"`
		StrictValidation bool   `yaml:"strict_validation"`
	} `yaml:"defaults"`
}

// LoadConfig loads configuration from the specified file path.
// An empty path returns the built-in defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set default values
	config.Defaults.Output = DefaultOutputFile
	config.Defaults.MaxPages = 0 // scan every page

	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return config, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return config, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return config, err
	}

	return config, nil
}

// LoadConfigOrDefault loads the given config file, falling back to the
// built-in defaults on any error. Never returns nil.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// FindConfigFile searches standard locations for a config file and
// returns the first match, or an empty string when none exists.
func FindConfigFile() string {
	candidates := []string{
		"taxon-scan.yaml",
		"taxon-scan.yml",
		filepath.Join(paths.GetConfigDir(), "config.yaml"),
	}

	for _, candidate := range candidates {
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// ValidateConfig checks configuration values for consistency
func ValidateConfig(config *Config) error {
	if config.Defaults.MaxPages < 0 {
		return fmt.Errorf("max_pages must be >= 0, got %d", config.Defaults.MaxPages)
	}
	if config.Defaults.Output == "" {
		config.Defaults.Output = DefaultOutputFile
	}
	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
