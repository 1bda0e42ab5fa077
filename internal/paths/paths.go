// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"os"
	"path/filepath"
)

// GetConfigDir returns the taxon-scan configuration directory.
// An explicit TAXON_SCAN_CONFIG_DIR override wins; otherwise the
// platform user config directory is used.
func GetConfigDir() string {
	if dir := os.Getenv("TAXON_SCAN_CONFIG_DIR"); dir != "" {
		return dir
	}

	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "taxon-scan")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".taxon-scan")
}

// GetConfigFile returns the path to the main config file
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// ResolveOutputPath resolves the result file location. Absolute paths are
// kept as-is; relative paths are joined with outputDir when one is
// configured, otherwise left relative to the working directory.
func ResolveOutputPath(output, outputDir string) string {
	if output == "" || filepath.IsAbs(output) || outputDir == "" {
		return output
	}
	return filepath.Join(outputDir, output)
}
