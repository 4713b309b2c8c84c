// Package extract implements the Extractor interface.
// It finds the labeled data rows of an element page by:
//  1. Locating the last <b> whose text contains a known section heading
//  2. Walking the rows that follow the heading's table row, until a row
//     with a single cell ends the section
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/gaurav-prasanna/periodicdata/core"
	"github.com/gaurav-prasanna/periodicdata/core/content"
)

// DefaultSections are the headings of the element page sections that carry
// element data, in page order.
var DefaultSections = []string{
	"Overview",
	"Thermal properties",
	"Bulk physical properties",
	"Reactivity",
	"Health and Safety",
	"Classifications",
	"Electrical properties",
	"Magnetic properties",
	"Abundances",
	"Atomic dimensions and structure",
	"Nuclear Properties",
}

var (
	boldMatcher = cascadia.MustCompile("b")
	rowMatcher  = cascadia.MustCompile("tr")
	cellMatcher = cascadia.MustCompile("td")
)

// SectionExtractor reads the rows of a fixed list of sections.
type SectionExtractor struct {
	sections []string
}

// New creates a SectionExtractor. With no sections, DefaultSections is used.
func New(sections ...string) *SectionExtractor {
	if len(sections) == 0 {
		sections = DefaultSections
	}
	return &SectionExtractor{sections: append([]string(nil), sections...)}
}

// Sections returns the section headings the extractor looks for.
func (e *SectionExtractor) Sections() []string {
	return append([]string(nil), e.sections...)
}

// Extract parses a full element page and returns its labeled rows in
// section order. Missing sections contribute no rows.
func (e *SectionExtractor) Extract(html string) ([]core.Row, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var rows []core.Row
	for _, section := range e.sections {
		rows = append(rows, sectionRows(doc.Selection, section)...)
	}
	return rows, nil
}

func sectionRows(doc *goquery.Selection, section string) []core.Row {
	heading := doc.FindMatcher(boldMatcher).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), section)
	}).Last()
	if heading.Length() == 0 {
		return nil
	}

	var rows []core.Row
	heading.ParentsMatcher(rowMatcher).First().NextAll().EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		cells := tr.ChildrenMatcher(cellMatcher)
		switch cells.Length() {
		case 0:
			return true
		case 1:
			return false
		}
		rows = append(rows, core.Row{
			Section: section,
			Label:   cells.First().Text(),
			Cell:    content.FromSelection(cells.Last()),
		})
		return true
	})
	return rows
}
