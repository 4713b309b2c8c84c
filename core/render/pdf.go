// Package render: PDF renderer.
// Lays the element record out as a two-column table using gofpdf.
// Core fonts are cp1252, so text is passed through gofpdf's UTF-8
// translator; glyphs outside that code page are dropped.
package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/periodicdata/core"
)

const (
	labelWidth = 70.0
	rowHeight  = 6.0
)

// PDFRenderer renders an element record as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the element record into PDF bytes.
func (r *PDFRenderer) Render(element core.Element) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, tr(title(element)), "", "L", false)
	pdf.Ln(2)

	if element.Source != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr("Source: "+element.Source), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(4)
	}

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	valueWidth := pageWidth - left - right - labelWidth

	for i, e := range entries(element.Record) {
		fill := i%2 == 0
		pdf.SetFillColor(245, 245, 245)

		pdf.SetFont("Helvetica", "B", 10)
		x, y := pdf.GetXY()
		pdf.MultiCell(labelWidth, rowHeight, tr(e.Label), "", "L", fill)
		labelBottom := pdf.GetY()

		pdf.SetXY(x+labelWidth, y)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(valueWidth, rowHeight, tr(e.Value), "", "L", fill)

		if labelBottom > pdf.GetY() {
			pdf.SetY(labelBottom)
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("rendering PDF for element %d: %w", element.AtomicNumber, err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}
