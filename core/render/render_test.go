package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/periodicdata/core"
	"github.com/gaurav-prasanna/periodicdata/core/content"
	"github.com/gaurav-prasanna/periodicdata/core/normalize"
	"github.com/gaurav-prasanna/periodicdata/core/numeric"
	"github.com/gaurav-prasanna/periodicdata/core/unit"
)

func parseCell(t *testing.T, fragment string) content.Node {
	t.Helper()
	n, err := content.ParseCell(fragment)
	require.NoError(t, err)
	return n
}

func sampleElement(t *testing.T) core.Element {
	t.Helper()
	z := normalize.New()
	rows := []struct{ label, fragment string }{
		{"Name", `<td>Selenium</td>`},
		{"Atomic Number", `<td>34</td>`},
		{"Thermal Conductivity", `<td>0.52 W/(m K)</td>`},
		{"Electron Configuration", `<td>[Ar]3d<sup>10</sup>4s<sup>2</sup>4p<sup>4</sup></td>`},
		{"Discovery", `<td>1817 in Sweden</td>`},
		{"Heat of Combustion", `<td>N/A</td>`},
	}
	record := normalize.Record{}
	for _, row := range rows {
		record.Add(z.Normalize(row.label, parseCell(t, row.fragment)))
	}
	return core.Element{AtomicNumber: 34, Source: "http://periodictable.com/Elements/034/data.html", Record: record}
}

func TestJSONRenderer(t *testing.T) {
	r := NewJSONRenderer()
	assert.Equal(t, ".json", r.Extension())

	data, err := r.Render(sampleElement(t))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    \"atomicNumber\": {")

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(34), decoded["atomicNumber"]["value"])
	assert.Nil(t, decoded["heatOfCombustion"]["value"])
	assert.Equal(t, map[string]any{"numerator": "W", "denominator": "m K"}, decoded["thermalConductivity"]["units"])
}

func TestMarkdownRenderer(t *testing.T) {
	r := NewMarkdownRenderer()
	assert.Equal(t, ".md", r.Extension())

	data, err := r.Render(sampleElement(t))
	require.NoError(t, err)
	md := string(data)
	assert.Contains(t, md, "# Selenium (34)")
	assert.Contains(t, md, "**Atomic Number**: 34")
	assert.Contains(t, md, "**Thermal Conductivity**: 0.52 W/(m K)")
	assert.Contains(t, md, "**Discovery**: 1817 in Sweden")
	assert.Contains(t, md, "**Heat of Combustion**: N/A")
}

func TestPDFRenderer(t *testing.T) {
	r := NewPDFRenderer()
	assert.Equal(t, ".pdf", r.Extension())

	data, err := r.Render(sampleElement(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestEntries_Order(t *testing.T) {
	record := normalize.Record{
		"zeta":         {Label: "Zeta", Value: "z"},
		"discovery":    {Label: "Discovery", Value: nil},
		"atomicNumber": {Label: "Atomic Number", Value: numeric.Number(1)},
		"alpha":        {Label: "Alpha", Value: "a"},
	}
	var keys []string
	for _, e := range entries(record) {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"atomicNumber", "discovery", "alpha", "zeta"}, keys)
}

func TestFormatValue(t *testing.T) {
	base := "Xe"
	ratio := unit.Ratio("m", "s")
	tests := []struct {
		name string
		in   normalize.Value
		want string
	}{
		{"nil", normalize.Value{}, "N/A"},
		{"NaN", normalize.Value{Value: numeric.NaN()}, "N/A"},
		{"quantity", normalize.Value{Value: numeric.Number(444), Units: &ratio}, "444 m/s"},
		{"null quantity drops unit", normalize.Value{Value: nil, Units: &ratio}, "N/A"},
		{"floats", normalize.Value{Value: []numeric.Number{1312, 2372.3}}, "1312, 2372.3"},
		{"strings", normalize.Value{Value: []string{"π/2", "π/2"}}, "π/2, π/2"},
		{"configuration", normalize.Value{Value: normalize.ElectronConfiguration{
			Base:   &base,
			Shells: normalize.Shells{{Name: "6s", Electrons: 2}},
		}}, "[Xe] 6s2"},
		{"discovery BC", normalize.Value{Value: normalize.Discovery{Year: -3, Countries: []string{"Egypt"}}}, "3 BC in Egypt"},
		{"discovery unknown", normalize.Value{Value: normalize.Discovery{Year: numeric.NaN()}}, "N/A"},
		{"term symbol", normalize.Value{Value: normalize.TermSymbol{SpinMultiplicity: 2, AngularMomentum: "S", Orbital: "1/2"}}, "2S1/2"},
		{"abundances", normalize.Value{Value: normalize.Abundances{{MassNumber: 1, Percent: 99.985}}}, "1: 99.985%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.in))
		})
	}
}
