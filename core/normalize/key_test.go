package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelCase(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Atomic Number", "atomicNumber"},
		{"Speed of Sound", "speedOfSound"},
		{"NFPA Label", "nfpaLabel"},
		{"NFPA Fire Rating", "nfpaFireRating"},
		{"DOT Numbers", "dotNumbers"},
		{"Density (Liquid)", "densityLiquid"},
		{"Van der Waals Radius", "vanDerWaalsRadius"},
		{"Half-Life", "halfLife"},
		{"ElectronAffinity", "electronAffinity"},
		{"NFPALabel", "nfpaLabel"},
		{"percent Earth's Crust", "percentEarthsCrust"},
		{"Néel Point", "neelPoint"},
		{"Default Rules", "defaultRules"},
		{"  spaced   out  ", "spacedOut"},
		{"Group 18", "group18"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, CamelCase(tt.label))
		})
	}
}

func TestCamelCase_Deterministic(t *testing.T) {
	for _, field := range Fields() {
		assert.Equal(t, CamelCase(field.Label), CamelCase(field.Label))
		assert.Regexp(t, `^[a-z][A-Za-z0-9]*$`, CamelCase(field.Label), field.Label)
	}
}

func TestSplitKeepTail(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		delimiter string
		n         int
		want      []string
	}{
		{"simple unit", "180 pm", " ", 2, []string{"180", "pm"}},
		{"compound unit", "250.14 m Ω", " ", 2, []string{"250.14", "m Ω"}},
		{"no delimiter", "1991", " in ", 2, []string{"1991", ""}},
		{"country keeps tail", "1844 in Russia in winter", " in ", 2, []string{"1844", "Russia in winter"}},
		{"three parts", "a b c d", " ", 3, []string{"a", "b", "c d"}},
		{"fewer parts than n", "a", " ", 3, []string{"a", ""}},
		{"n of one", "a b", " ", 1, []string{"a b"}},
		{"n below one", "a b", " ", 0, []string{"a b"}},
		{"empty text", "", " ", 2, []string{"", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitKeepTail(tt.text, tt.delimiter, tt.n))
		})
	}
}
