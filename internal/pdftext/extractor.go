// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdftext

import (
	"bytes"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPageText extracts text using row-based positioning for better
// spacing, falling back to plain extraction when row data is unavailable.
func extractPageText(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		return p.GetPlainText(nil)
	}

	sortedRows := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sortedRows = append(sortedRows, row)
		}
	}

	// Top-to-bottom reading order
	sort.Slice(sortedRows, func(i, j int) bool {
		return averageY(sortedRows[i].Content) < averageY(sortedRows[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sortedRows {
		rowText := reconstructRowText(row.Content)
		if strings.TrimSpace(rowText) != "" {
			buf.WriteString(rowText)
			buf.WriteString("\n")
		}
	}

	return buf.String(), nil
}

// averageY calculates the average Y coordinate for text elements in a row
func averageY(elements []pdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}

	var total float64
	for _, element := range elements {
		total += element.Y
	}
	return total / float64(len(elements))
}

// reconstructRowText joins a row's text elements left to right, inserting
// spaces where the horizontal gap between elements is significant
// relative to the font size.
func reconstructRowText(elements []pdf.Text) string {
	if len(elements) == 0 {
		return ""
	}

	sorted := make([]pdf.Text, len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var buf bytes.Buffer
	for i, element := range sorted {
		buf.WriteString(element.S)

		if i < len(sorted)-1 {
			gap := sorted[i+1].X - (element.X + element.W)

			fontSize := element.FontSize
			if fontSize <= 0 {
				fontSize = 12
			}

			// A gap wider than 20% of the font size separates words
			if gap > fontSize*0.2 {
				buf.WriteString(" ")
			}
		}
	}

	return buf.String()
}

// cleanPageText normalizes extracted text while preserving line structure,
// so phrase patterns spanning a single line keep single internal spaces.
func cleanPageText(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.ReplaceAll(line, "\t", " ")
		for strings.Contains(line, "  ") {
			line = strings.ReplaceAll(line, "  ", " ")
		}
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}

	return strings.Join(cleaned, "\n")
}
