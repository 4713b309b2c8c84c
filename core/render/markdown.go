// Package render: Markdown renderer.
// Builds a small HTML summary of the element record and converts it with
// html-to-markdown, so escaping of labels and values follows Markdown rules.
package render

import (
	"fmt"
	"html"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/gaurav-prasanna/periodicdata/core"
)

// MarkdownRenderer writes one bullet per field under an element heading.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts the element record into Markdown.
func (r *MarkdownRenderer) Render(element core.Element) ([]byte, error) {
	markdown, err := htmltomarkdown.ConvertString(summaryHTML(element))
	if err != nil {
		return nil, fmt.Errorf("converting element %d to markdown: %w", element.AtomicNumber, err)
	}
	return []byte(markdown + "\n"), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// summaryHTML lays the record out as a heading and a list.
func summaryHTML(element core.Element) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>", html.EscapeString(title(element)))
	if element.Source != "" {
		fmt.Fprintf(&b, "<p>Source: %s</p>", html.EscapeString(element.Source))
	}
	b.WriteString("<ul>")
	for _, e := range entries(element.Record) {
		fmt.Fprintf(&b, "<li><strong>%s</strong>: %s</li>",
			html.EscapeString(e.Label), html.EscapeString(e.Value))
	}
	b.WriteString("</ul>")
	return b.String()
}

func title(element core.Element) string {
	if name, ok := element.Record["name"]; ok {
		if s, ok := name.Value.(string); ok && s != "" {
			return fmt.Sprintf("%s (%d)", s, element.AtomicNumber)
		}
	}
	return fmt.Sprintf("Element %d", element.AtomicNumber)
}
