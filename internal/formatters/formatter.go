// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"fmt"
	"strings"

	"taxon-scan/internal/taxonomy"
)

// Options defines configuration options for formatters
type Options struct {
	NoColor bool // Disable colored output (file rendering is always plain)
	Verbose bool // Append a scan summary after the mappings
}

// Formatter interface defines methods that all output formatters must implement
type Formatter interface {
	// Format renders a scan result according to the formatter's output format
	Format(result *taxonomy.Result, options Options) (string, error)

	// Name returns the name of the formatter (e.g., "text")
	Name() string

	// Description returns a brief description of what this formatter outputs
	Description() string

	// FileExtension returns the recommended file extension for this format
	FileExtension() string
}

// Registry holds all registered formatters
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names
func (r *Registry) List() []string {
	var names []string
	for name := range r.formatters {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry is the global formatter registry
var DefaultRegistry = NewRegistry()

// Register is a convenience function to register a formatter with the default registry
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get is a convenience function to get a formatter from the default registry
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// Export renders a result with the named formatter
func Export(format string, result *taxonomy.Result, options Options) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		available := DefaultRegistry.List()
		return "", fmt.Errorf("unsupported format '%s'. Available formats: %s", format, strings.Join(available, ", "))
	}
	return formatter.Format(result, options)
}
