// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pdftext wraps the PDF backend behind a narrow page-text
// interface so the scanning logic can be tested with synthetic pages.
package pdftext

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Document is an opaque handle over a sequence of pages.
// Page numbers are 1-based, matching the backend.
type Document interface {
	PageCount() int
	PageText(pageNum int) (string, error)
	Close() error
}

// Options controls how a document is opened
type Options struct {
	// StrictValidation runs a pdfcpu preflight before extraction
	StrictValidation bool

	// MaxPages caps the number of pages reported by PageCount (0 = no cap)
	MaxPages int
}

// NotFoundError indicates the path does not resolve to an existing file
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// ParseError indicates the file exists but the backend cannot parse it.
// The backend diagnostic is preserved via Unwrap.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse PDF %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Open opens a PDF document for page-text extraction
func Open(path string, opts Options) (Document, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, &NotFoundError{Path: path}
	}
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("path is a directory")}
	}

	if opts.StrictValidation {
		conf := model.NewDefaultConfiguration()
		conf.ValidationMode = model.ValidationRelaxed
		if err := api.ValidateFile(path, conf); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &document{file: f, reader: r, maxPages: opts.MaxPages}, nil
}

// document implements Document on ledongthuc/pdf
type document struct {
	file     *os.File
	reader   *pdf.Reader
	maxPages int
}

func (d *document) PageCount() int {
	count := d.reader.NumPage()
	if d.maxPages > 0 && count > d.maxPages {
		count = d.maxPages
	}
	return count
}

func (d *document) PageText(pageNum int) (string, error) {
	p := d.reader.Page(pageNum)
	if p.V.IsNull() {
		return "", fmt.Errorf("null page %d", pageNum)
	}

	text, err := extractPageText(p)
	if err != nil {
		return "", fmt.Errorf("extracting text from page %d: %w", pageNum, err)
	}
	return cleanPageText(text), nil
}

func (d *document) Close() error {
	return d.file.Close()
}
