// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigOrDefault_NoFile(t *testing.T) {
	// With no config file, should return defaults without error
	cfg := LoadConfigOrDefault("")
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.Defaults.Output != DefaultOutputFile {
		t.Errorf("expected default output file, got %q", cfg.Defaults.Output)
	}
}

func TestLoadConfigOrDefault_NonexistentFile(t *testing.T) {
	// A path that doesn't exist should fall back to defaults
	cfg := LoadConfigOrDefault("/nonexistent/path/config.yaml")
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults)")
	}
	if cfg.Defaults.Output != DefaultOutputFile {
		t.Errorf("expected default output file, got %q", cfg.Defaults.Output)
	}
}

func TestLoadConfigOrDefault_ValidFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
defaults:
  output: resultado.txt
  output_dir: /tmp/relatorios
  verbose: true
  max_pages: 40
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := LoadConfigOrDefault(configPath)
	if cfg.Defaults.Output != "resultado.txt" {
		t.Errorf("expected output=resultado.txt, got %q", cfg.Defaults.Output)
	}
	if cfg.Defaults.OutputDir != "/tmp/relatorios" {
		t.Errorf("expected output_dir=/tmp/relatorios, got %q", cfg.Defaults.OutputDir)
	}
	if !cfg.Defaults.Verbose {
		t.Error("expected verbose=true")
	}
	if cfg.Defaults.MaxPages != 40 {
		t.Errorf("expected max_pages=40, got %d", cfg.Defaults.MaxPages)
	}
}

func TestLoadConfigOrDefault_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bad.yaml")

	if err := os.WriteFile(configPath, []byte(":::invalid yaml:::"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Should fall back to defaults, not panic
	cfg := LoadConfigOrDefault(configPath)
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults on parse error)")
	}
	if cfg.Defaults.Output != DefaultOutputFile {
		t.Errorf("expected default output after fallback, got %q", cfg.Defaults.Output)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Output != DefaultOutputFile {
		t.Errorf("expected default output file, got %q", cfg.Defaults.Output)
	}
	if cfg.Defaults.MaxPages != 0 {
		t.Errorf("expected max_pages=0 (no cap), got %d", cfg.Defaults.MaxPages)
	}
	if cfg.Defaults.StrictValidation {
		t.Error("expected strict_validation=false by default")
	}
}

func TestLoadConfig_NegativeMaxPages(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
defaults:
  max_pages: -3
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("expected validation error for negative max_pages")
	}
}

func TestLoadConfig_EmptyOutputReplacedWithDefault(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
defaults:
  output: ""
  verbose: true
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Output != DefaultOutputFile {
		t.Errorf("expected empty output to fall back to default, got %q", cfg.Defaults.Output)
	}
}
