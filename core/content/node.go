// Package content models the contents of one element data cell.
//
// A Node is a read-only view over a single HTML node. Normalization rules
// use it to read flattened text, walk typed children (so a "[note]"
// superscript can be told apart from an electron count), look up nested
// table rows and find the first image or superscript below a cell.
package content

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Annotation is the text of the footnote superscript the source appends
// to annotated values.
const Annotation = "[note]"

// Kind classifies a node for the normalization rules.
type Kind int

const (
	KindOther Kind = iota
	KindText
	KindSuperscript
	KindSubscript
	KindAnchor
	KindTableRow
	KindCell
	KindImage
	KindElement
)

var kindNames = map[Kind]string{
	KindOther:       "other",
	KindText:        "text",
	KindSuperscript: "superscript",
	KindSubscript:   "subscript",
	KindAnchor:      "anchor",
	KindTableRow:    "table-row",
	KindCell:        "cell",
	KindImage:       "image",
	KindElement:     "element",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// selectors maps the element kinds to the tags they stand for.
var selectors = map[Kind]string{
	KindSuperscript: "sup",
	KindSubscript:   "sub",
	KindAnchor:      "a",
	KindTableRow:    "tr",
	KindCell:        "td, th",
	KindImage:       "img",
}

// Node is a read-only view over one HTML node. The zero value is an empty
// node with no text and no children.
type Node struct {
	sel *goquery.Selection
}

// FromSelection wraps the first node of sel.
func FromSelection(sel *goquery.Selection) Node {
	if sel == nil || sel.Length() == 0 {
		return Node{}
	}
	return Node{sel: sel.First()}
}

// FromHTML wraps an already parsed node.
func FromHTML(n *html.Node) Node {
	if n == nil {
		return Node{}
	}
	return Node{sel: goquery.NewDocumentFromNode(n).Selection}
}

// ParseCell parses an HTML fragment as the contents of a table row, so
// "<td>...</td>" keeps its cell element. The first element of the
// fragment is returned.
func ParseCell(fragment string) (Node, error) {
	row := &html.Node{Type: html.ElementNode, Data: "tr", DataAtom: atom.Tr}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), row)
	if err != nil {
		return Node{}, fmt.Errorf("parsing cell fragment: %w", err)
	}
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			return FromHTML(n), nil
		}
	}
	return Node{}, fmt.Errorf("no element in cell fragment %q", fragment)
}

// Empty reports whether n wraps no node.
func (n Node) Empty() bool {
	return n.sel == nil || n.sel.Length() == 0
}

// Kind classifies n.
func (n Node) Kind() Kind {
	if n.Empty() {
		return KindOther
	}
	raw := n.sel.Get(0)
	switch raw.Type {
	case html.TextNode:
		return KindText
	case html.ElementNode:
	default:
		return KindOther
	}
	switch raw.DataAtom {
	case atom.Sup:
		return KindSuperscript
	case atom.Sub:
		return KindSubscript
	case atom.A:
		return KindAnchor
	case atom.Tr:
		return KindTableRow
	case atom.Td, atom.Th:
		return KindCell
	case atom.Img:
		return KindImage
	default:
		return KindElement
	}
}

// Tag returns the element name, or "" for non-element nodes.
func (n Node) Tag() string {
	if n.Empty() || n.sel.Get(0).Type != html.ElementNode {
		return ""
	}
	return n.sel.Get(0).Data
}

// RawText returns the concatenated text of n and its descendants.
func (n Node) RawText() string {
	if n.Empty() {
		return ""
	}
	return n.sel.Text()
}

// Text returns the trimmed flattened text of n.
func (n Node) Text() string {
	return strings.TrimSpace(n.RawText())
}

// IsAnnotation reports whether n is a "[note]" footnote superscript.
func (n Node) IsAnnotation() bool {
	return n.Kind() == KindSuperscript && n.Text() == Annotation
}

// Children returns the direct child nodes of n in document order,
// including text nodes. Comments are skipped.
func (n Node) Children() []Node {
	if n.Empty() {
		return nil
	}
	var children []Node
	n.sel.Contents().Each(func(_ int, s *goquery.Selection) {
		if s.Get(0).Type == html.CommentNode {
			return
		}
		children = append(children, Node{sel: s})
	})
	return children
}

// Child returns the i-th direct child, or an empty node.
func (n Node) Child(i int) Node {
	children := n.Children()
	if i < 0 || i >= len(children) {
		return Node{}
	}
	return children[i]
}

// FindAll returns the descendants of n of the given element kind in
// document order. Text and other non-element kinds yield nothing.
func (n Node) FindAll(kind Kind) []Node {
	selector, ok := selectors[kind]
	if n.Empty() || !ok {
		return nil
	}
	var found []Node
	n.sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		found = append(found, Node{sel: s})
	})
	return found
}

// FindFirst returns the first descendant of the given kind.
func (n Node) FindFirst(kind Kind) (Node, bool) {
	selector, ok := selectors[kind]
	if n.Empty() || !ok {
		return Node{}, false
	}
	first := n.sel.Find(selector).First()
	if first.Length() == 0 {
		return Node{}, false
	}
	return Node{sel: first}, true
}

// Rows returns every table row nested below n.
func (n Node) Rows() []Node {
	return n.FindAll(KindTableRow)
}

// Cells returns the direct cells of a row node.
func (n Node) Cells() []Node {
	if n.Empty() {
		return nil
	}
	var cells []Node
	n.sel.ChildrenFiltered(selectors[KindCell]).Each(func(_ int, s *goquery.Selection) {
		cells = append(cells, Node{sel: s})
	})
	return cells
}

// Attr returns the value of the named attribute.
func (n Node) Attr(name string) (string, bool) {
	if n.Empty() {
		return "", false
	}
	return n.sel.Attr(name)
}

// HTML returns the inner HTML of n.
func (n Node) HTML() string {
	if n.Empty() {
		return ""
	}
	inner, err := n.sel.Html()
	if err != nil {
		return ""
	}
	return inner
}
