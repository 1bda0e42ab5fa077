// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package taxonomy

import (
	"taxon-scan/internal/observability"
	"taxon-scan/internal/pdftext"
)

// Result holds the mappings accumulated over a full document scan
type Result struct {
	Orders   *NameMap
	Families *NameMap

	PagesScanned int
	PagesFailed  int
}

// Scanner walks a document page by page and accumulates rank matches
type Scanner struct {
	orderPattern  *RankPattern
	familyPattern *RankPattern

	observer *observability.StandardObserver
}

// NewScanner creates a scanner with the two fixed rank patterns
func NewScanner() *Scanner {
	return &Scanner{
		orderPattern:  NewOrderPattern(),
		familyPattern: NewFamilyPattern(),
	}
}

// SetObserver sets the observability component
func (s *Scanner) SetObserver(observer *observability.StandardObserver) {
	s.observer = observer
}

// Scan processes every page sequentially and returns the accumulated
// mappings. A repeated Latin name overwrites the prior value, so the
// last occurrence across the whole document wins. Pages whose text
// cannot be extracted are skipped and counted in PagesFailed.
func (s *Scanner) Scan(doc pdftext.Document) (*Result, error) {
	var finishTiming func(bool, map[string]interface{})
	if s.observer != nil {
		finishTiming = s.observer.StartTiming("taxonomy_scanner", "scan_document", "")
	}

	result := &Result{
		Orders:   NewNameMap(),
		Families: NewNameMap(),
	}

	pageCount := doc.PageCount()
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		text, err := doc.PageText(pageNum)
		if err != nil {
			result.PagesFailed++
			continue
		}
		result.PagesScanned++

		s.scanText(text, result)
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"pages_scanned": result.PagesScanned,
			"pages_failed":  result.PagesFailed,
			"order_count":   result.Orders.Len(),
			"family_count":  result.Families.Len(),
		})
	}

	return result, nil
}

// scanText applies both patterns independently to one page's text
func (s *Scanner) scanText(text string, result *Result) {
	for _, match := range s.orderPattern.FindAll(text) {
		result.Orders.Set(match.Latin, match.Portuguese)
	}
	for _, match := range s.familyPattern.FindAll(text) {
		result.Families.Set(match.Latin, match.Portuguese)
	}
}
