// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"path/filepath"
	"testing"
)

func TestGetConfigDir_EnvOverride(t *testing.T) {
	t.Setenv("TAXON_SCAN_CONFIG_DIR", "/tmp/taxon-config")
	if dir := GetConfigDir(); dir != "/tmp/taxon-config" {
		t.Errorf("expected env override to win, got %q", dir)
	}
}

func TestGetConfigFile_UnderConfigDir(t *testing.T) {
	t.Setenv("TAXON_SCAN_CONFIG_DIR", "/tmp/taxon-config")
	expected := filepath.Join("/tmp/taxon-config", "config.yaml")
	if file := GetConfigFile(); file != expected {
		t.Errorf("expected %q, got %q", expected, file)
	}
}

func TestResolveOutputPath(t *testing.T) {
	cases := []struct {
		name      string
		output    string
		outputDir string
		want      string
	}{
		{"relative joined with dir", "resultado.txt", "/dados", filepath.Join("/dados", "resultado.txt")},
		{"relative without dir", "resultado.txt", "", "resultado.txt"},
		{"absolute ignores dir", "/saida/resultado.txt", "/dados", "/saida/resultado.txt"},
		{"empty output stays empty", "", "/dados", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveOutputPath(tc.output, tc.outputDir); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
