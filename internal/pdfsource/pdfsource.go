// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfsource adapts the pdfplumber PDF backend to the extract.Source
// interface. All glyph extraction and geometry detection happens in the
// backend; this package only reshapes its output.
// Implements: prd001-extraction R1.1 (backend contract);
//
//	docs/ARCHITECTURE § PDF Backend.
package pdfsource

import (
	"fmt"

	pdfplumber "github.com/pyhub-apps/pdfplumber-golang"

	"github.com/pdiddy/recat-extract/internal/extract"
)

// Document wraps an open PDF and serves per-page tables and words. The
// caller owns the document and must Close it; pages are resolved once at
// open time since the whole document is iterated anyway.
type Document struct {
	doc   pdfplumber.Document
	pages []pdfplumber.Page
}

// Open opens the PDF at path. Failure to open or parse is fatal to the
// run; there is no row-level recovery for a document that cannot be read.
func Open(path string) (*Document, error) {
	doc, err := pdfplumber.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Document{doc: doc, pages: doc.GetPages()}, nil
}

// Close releases the underlying document.
func (d *Document) Close() error {
	return d.doc.Close()
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Tables returns the tables the backend detects on a page, as rows of
// cell texts.
func (d *Document) Tables(page int) [][][]string {
	tables := d.pages[page].ExtractTables()
	out := make([][][]string, len(tables))
	for i, t := range tables {
		out[i] = t.Rows
	}
	return out
}

// Words returns the positioned words on a page. The backend reports full
// bounding boxes with the origin at the top-left corner; the extractor
// only needs the left and top edges.
func (d *Document) Words(page int) []extract.Word {
	words := d.pages[page].ExtractWords()
	out := make([]extract.Word, len(words))
	for i, w := range words {
		out[i] = extract.Word{Text: w.Text, X0: w.X0, Top: w.Y0}
	}
	return out
}
