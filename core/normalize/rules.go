package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gaurav-prasanna/periodicdata/core/content"
	"github.com/gaurav-prasanna/periodicdata/core/numeric"
	"github.com/gaurav-prasanna/periodicdata/core/unit"
)

const (
	listSeparator    = ", "
	percentPrefixLen = len("% in ")
)

var annotationFolder = strings.NewReplacer(content.Annotation, "", "\u00a0", " ")

// stripAnnotation removes every "[note]" marker, folds no-break spaces to
// plain spaces and trims.
func stripAnnotation(text string) string {
	return strings.TrimSpace(annotationFolder.Replace(text))
}

// notApplicable reports text the source uses for "no data".
func notApplicable(text string) bool {
	return text == "" || text == "N/A" || text == "None"
}

// defaultValue passes the text through, with "None" and "N/A" as null.
func defaultValue(label string, n content.Node) Field {
	text := n.Text()
	var v any = text
	if text == "None" || text == "N/A" {
		v = nil
	}
	return single(label, Value{Label: label, Value: v})
}

// integerValue does not special-case N/A; it yields NaN.
func integerValue(label string, n content.Node) Field {
	return single(label, Value{Label: label, Value: numeric.ParseInt(n.Text())})
}

// floatValue does not special-case N/A; it yields NaN.
func floatValue(label string, n content.Node) Field {
	return single(label, Value{Label: label, Value: numeric.ParseFloat(n.Text())})
}

// quantity splits "444 m/s" into its magnitude and unit. Units are nil
// when the magnitude is NaN or no unit can be read.
func quantity(text string) (numeric.Number, *unit.Unit) {
	head, tail := text, ""
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		_, size := utf8.DecodeRuneInString(text[i:])
		head, tail = text[:i], text[i+size:]
	}
	magnitude := numeric.ParseFloat(head)
	if magnitude.IsNaN() {
		return magnitude, nil
	}
	u, err := unit.Parse(tail)
	if err != nil {
		return magnitude, nil
	}
	return magnitude, &u
}

func floatWithUnit(label string, n content.Node) Field {
	text := stripAnnotation(n.Text())
	if notApplicable(text) {
		return single(label, Value{Label: label, Value: nil})
	}
	magnitude, units := quantity(text)
	return single(label, Value{Label: label, Value: magnitude, Units: units})
}

// percentKey keys "% in Earth's Crust" as "percentEarthsCrust".
func percentKey(label string) string {
	tail := label
	if len(label) >= percentPrefixLen {
		tail = label[percentPrefixLen:]
	}
	return CamelCase("percent " + strings.ReplaceAll(tail, "'", ""))
}

// percent parses only the content ahead of the first annotation, so
// "1×10<sup>-5</sup>%" keeps its exponent while a trailing "[note]" is
// ignored.
func percent(label string, n content.Node) Field {
	key := percentKey(label)

	var b strings.Builder
	for _, child := range n.Children() {
		if child.IsAnnotation() {
			break
		}
		b.WriteString(child.RawText())
	}
	v := Value{Label: label, Value: numeric.ParseFloat(b.String())}
	return Field{Keys: []string{key}, Values: []Value{v}}
}

func nfpaLabel(label string, n content.Node) Field {
	var v any
	if img, ok := n.FindFirst(content.KindImage); ok {
		if src, ok := img.Attr("src"); ok && src != "" {
			v = src
		}
	}
	return single(label, Value{Label: label, Value: v})
}

// electronConfiguration reads "[Xe]4f<sup>14</sup>5d<sup>10</sup>...".
// Text nodes name a subshell, superscripts commit the electron count of
// the subshell named last.
func electronConfiguration(label string, n content.Node) Field {
	cfg := ElectronConfiguration{Shells: Shells{}}
	children := n.Children()
	if len(children) == 0 {
		return single(label, Value{Label: label, Value: cfg})
	}

	shell := children[0].RawText()
	if base, rest, ok := strings.Cut(shell, "]"); ok {
		symbol := strings.TrimPrefix(strings.TrimSpace(base), "[")
		cfg.Base = &symbol
		shell = rest
	}

	for _, child := range children[1:] {
		if child.Kind() == content.KindSuperscript && !child.IsAnnotation() {
			cfg.Shells = cfg.Shells.set(strings.TrimSpace(shell), numeric.ParseInt(child.Text()))
			continue
		}
		shell = child.RawText()
	}
	return single(label, Value{Label: label, Value: cfg})
}

// parseDiscovery reads "1759 BC in United Kingdom and New Zealand".
func parseDiscovery(n content.Node) Discovery {
	parts := SplitKeepTail(stripAnnotation(n.Text()), " in ", 2)
	year := numeric.ParseInt(parts[0])
	if year.IsNaN() {
		return Discovery{Year: year}
	}
	if strings.HasSuffix(strings.TrimSpace(parts[0]), "BC") {
		year = -year
	}

	var countries []string
	if country := strings.TrimSpace(parts[1]); country != "" {
		countries = strings.Split(country, " and ")
	}
	return Discovery{Year: year, Countries: countries}
}

func discovery(label string, n content.Node) Field {
	return single(label, Value{Label: label, Value: parseDiscovery(n)})
}

// expandedDiscovery splats year and countries into two keys.
func expandedDiscovery(label string, n content.Node) Field {
	d := parseDiscovery(n)
	return Field{
		Keys: []string{CamelCase(label + " year"), CamelCase(label + " countries")},
		Values: []Value{
			{Label: label, Value: d.Year},
			{Label: label, Value: d.Countries},
		},
	}
}

// splitList strips annotations and splits on ", ". ok is false for N/A.
func splitList(n content.Node) (items []string, ok bool) {
	text := stripAnnotation(n.Text())
	if notApplicable(text) {
		return nil, false
	}
	return strings.Split(text, listSeparator), true
}

func parseFloats(items []string) []numeric.Number {
	values := make([]numeric.Number, 0, len(items))
	for _, item := range items {
		values = append(values, numeric.ParseFloat(item))
	}
	return values
}

func latticeConstants(label string, n content.Node) Field {
	items, ok := splitList(n)
	if !ok {
		return single(label, Value{Label: label, Value: nil})
	}
	return single(label, Value{Label: label, Value: parseFloats(items)})
}

// floatCSVWithUnit reads "1312, 2372.3 kJ/mol"; the unit comes from the
// last item. Items that are not numbers stay in the list as NaN.
func floatCSVWithUnit(label string, n content.Node) Field {
	items, ok := splitList(n)
	if !ok {
		return single(label, Value{Label: label, Value: nil})
	}
	_, units := quantity(items[len(items)-1])
	return single(label, Value{Label: label, Value: parseFloats(items), Units: units})
}

func csv(label string, n content.Node) Field {
	items, ok := splitList(n)
	if !ok {
		return single(label, Value{Label: label, Value: nil})
	}
	return single(label, Value{Label: label, Value: items})
}

// quantumNumbers reads <sup>2S+1</sup>L<sub>J</sub> by position.
// Whitespace-only text nodes do not count as positions.
func quantumNumbers(label string, n content.Node) Field {
	if notApplicable(stripAnnotation(n.Text())) {
		return single(label, Value{Label: label, Value: nil})
	}

	var parts []content.Node
	for _, child := range n.Children() {
		if child.Kind() == content.KindText && child.Text() == "" {
			continue
		}
		parts = append(parts, child)
	}
	at := func(i int) string {
		if i < len(parts) {
			return parts[i].Text()
		}
		return ""
	}

	term := TermSymbol{
		SpinMultiplicity: numeric.ParseInt(at(0)),
		AngularMomentum:  at(1),
		Orbital:          at(2),
	}
	return single(label, Value{Label: label, Value: term})
}

// isotopes collects the mass numbers written as superscripts, in order.
func isotopes(label string, n content.Node) Field {
	masses := []numeric.Number{}
	for _, sup := range n.FindAll(content.KindSuperscript) {
		if sup.IsAnnotation() {
			continue
		}
		masses = append(masses, numeric.ParseInt(sup.Text()))
	}
	return single(label, Value{Label: label, Value: masses})
}

// isotopicAbundances reads a nested table whose rows are
// <td><sup>74</sup>Se</td> ... <td>0.89%</td>. No rows gives null.
func isotopicAbundances(label string, n content.Node) Field {
	var abundances Abundances
	for _, row := range n.Rows() {
		cells := row.Cells()
		if len(cells) == 0 {
			continue
		}
		sup, ok := cells[0].FindFirst(content.KindSuperscript)
		if !ok {
			continue
		}
		mass := numeric.ParseInt(sup.Text())
		if mass.IsNaN() {
			continue
		}
		abundances = abundances.set(mass.Int(), numeric.ParseFloat(cells[len(cells)-1].Text()))
	}

	v := Value{Label: label}
	if len(abundances) > 0 {
		v.Value = abundances
	}
	return single(label, v)
}
