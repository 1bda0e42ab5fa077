// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"taxon-scan/internal/formatters"
	"taxon-scan/internal/taxonomy"

	"github.com/fatih/color"
)

// Section headers of the fixed report layout. The layout is part of the
// tool's contract: one "Latin: português" line per entry, one blank line
// between the two sections.
const (
	OrdersHeader   = "Ordens encontradas:"
	FamiliesHeader = "Famílias encontradas:"
)

func init() {
	formatters.Register(NewFormatter())
}

// Formatter renders scan results as the fixed two-section text report
type Formatter struct {
	headerColor *color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		headerColor: color.New(color.FgCyan, color.Bold),
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable two-section report (ordens, famílias)"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

// Format renders the two mappings. With NoColor set the output is plain
// text suitable for the result file; otherwise the section headers are
// colorized for console display.
func (f *Formatter) Format(result *taxonomy.Result, options formatters.Options) (string, error) {
	var builder strings.Builder

	f.writeHeader(&builder, OrdersHeader, options)
	for _, pair := range result.Orders.Pairs() {
		fmt.Fprintf(&builder, "%s: %s\n", pair.Latin, pair.Portuguese)
	}

	builder.WriteString("\n")

	f.writeHeader(&builder, FamiliesHeader, options)
	for _, pair := range result.Families.Pairs() {
		fmt.Fprintf(&builder, "%s: %s\n", pair.Latin, pair.Portuguese)
	}

	if options.Verbose {
		fmt.Fprintf(&builder, "\nPáginas processadas: %d (falhas: %d)\n", result.PagesScanned, result.PagesFailed)
		fmt.Fprintf(&builder, "Ordens: %d | Famílias: %d\n", result.Orders.Len(), result.Families.Len())
	}

	return builder.String(), nil
}

func (f *Formatter) writeHeader(builder *strings.Builder, header string, options formatters.Options) {
	if options.NoColor {
		builder.WriteString(header)
	} else {
		builder.WriteString(f.headerColor.Sprint(header))
	}
	builder.WriteString("\n")
}
