// Package core defines the pipeline interfaces for periodicdata.
// Each stage of the pipeline is a clean, testable interface:
// fetch a page, extract its labeled rows, normalize each row, render the
// element record.
package core

import (
	"context"

	"github.com/gaurav-prasanna/periodicdata/core/content"
	"github.com/gaurav-prasanna/periodicdata/core/normalize"
)

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Row is one labeled data row of an element page.
type Row struct {
	Section string
	Label   string
	Cell    content.Node
}

// Element is the normalized data of one element.
type Element struct {
	AtomicNumber int
	Source       string
	Record       normalize.Record
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor finds the labeled data rows in an element page.
type Extractor interface {
	Extract(html string) ([]Row, error)
}

// Normalizer turns one row into a normalized field.
type Normalizer interface {
	Normalize(label string, cell content.Node) normalize.Field
}

// Renderer converts an element record into a final output format.
type Renderer interface {
	Render(element Element) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".json").
	Extension() string
}

// Collect normalizes rows into a record, in row order.
func Collect(n Normalizer, rows []Row) normalize.Record {
	record := make(normalize.Record, len(rows))
	for _, row := range rows {
		record.Add(n.Normalize(row.Label, row.Cell))
	}
	return record
}
