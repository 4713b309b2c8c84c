// Package render provides output renderers for the periodicdata pipeline.
// This file holds the shared helpers that order a record and print its
// typed values as text for the Markdown and PDF renderers.
package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/periodicdata/core/normalize"
	"github.com/gaurav-prasanna/periodicdata/core/numeric"
)

const notAvailable = "N/A"

// entry is one printable row of a record.
type entry struct {
	Key   string
	Label string
	Value string
}

// entries orders a record by registry position; unregistered labels
// follow, sorted by key.
func entries(record normalize.Record) []entry {
	position := make(map[string]int)
	for i, field := range normalize.Fields() {
		position[field.Label] = i
	}
	rank := func(label string) int {
		if i, ok := position[label]; ok {
			return i
		}
		return len(position)
	}

	out := make([]entry, 0, len(record))
	for key, v := range record {
		out = append(out, entry{Key: key, Label: v.Label, Value: formatValue(v)})
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := rank(out[i].Label), rank(out[j].Label)
		if ri != rj {
			return ri < rj
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// formatValue prints a normalized value with its unit.
func formatValue(v normalize.Value) string {
	text := formatAny(v.Value)
	if v.Units != nil && text != notAvailable {
		text += " " + v.Units.String()
	}
	return text
}

func formatAny(v any) string {
	switch val := v.(type) {
	case nil:
		return notAvailable
	case string:
		return val
	case numeric.Number:
		return formatNumber(val)
	case []numeric.Number:
		parts := make([]string, len(val))
		for i, n := range val {
			parts[i] = formatNumber(n)
		}
		return strings.Join(parts, ", ")
	case []string:
		if val == nil {
			return notAvailable
		}
		return strings.Join(val, ", ")
	case normalize.ElectronConfiguration:
		var parts []string
		if val.Base != nil {
			parts = append(parts, "["+*val.Base+"]")
		}
		for _, shell := range val.Shells {
			parts = append(parts, shell.Name+formatNumber(shell.Electrons))
		}
		return strings.Join(parts, " ")
	case normalize.Discovery:
		if val.Year.IsNaN() {
			return notAvailable
		}
		year := strconv.FormatInt(val.Year.Int(), 10)
		if val.Year < 0 {
			year = strconv.FormatInt(-val.Year.Int(), 10) + " BC"
		}
		if len(val.Countries) == 0 {
			return year
		}
		return year + " in " + strings.Join(val.Countries, " and ")
	case normalize.TermSymbol:
		return fmt.Sprintf("%s%s%s", formatNumber(val.SpinMultiplicity), val.AngularMomentum, val.Orbital)
	case normalize.Abundances:
		parts := make([]string, len(val))
		for i, a := range val {
			parts[i] = fmt.Sprintf("%d: %s%%", a.MassNumber, formatNumber(a.Percent))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(val)
	}
}

func formatNumber(n numeric.Number) string {
	if n.IsNaN() {
		return notAvailable
	}
	return strconv.FormatFloat(n.Float(), 'g', -1, 64)
}
