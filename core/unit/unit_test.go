package unit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want Unit
	}{
		{"pm", Primitive("pm")},
		{"  pm  ", Primitive("pm")},
		{"pm[note]", Primitive("pm")},
		{"pm (1.8×10⁻¹⁰ m)", Primitive("pm")},
		{"pm (1.8×10-10 m)", Primitive("pm")},
		{"m Ω", Primitive("m Ω")},
		{"m Ω[note]", Primitive("m Ω")},
		{"m Ω (800.14 PSI)", Primitive("m Ω")},
		{"m Ω (800.14 km/h)", Primitive("m Ω")},
		{"m/s", Ratio("m", "s")},
		{"m/s[note]", Ratio("m", "s")},
		{"m/s (1598.4 km/h)", Ratio("m", "s")},
		{"W/(m K)", Ratio("W", "m K")},
		{"W/(m K)[note]", Ratio("W", "m K")},
		{"W/(m K) (3.85×10-3 W/(in °C))", Ratio("W", "m K")},
		{"kJ/mol", Ratio("kJ", "mol")},
		{"g/cm3", Ratio("g", "cm3")},
		{"J/(kg K)", Ratio("J", "kg K")},
		{"W/°C", Ratio("W", "°C")},
		{"m³/mol", Ratio("m³", "mol")},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		raw  string
		want error
	}{
		{"", ErrNoUnit},
		{"   ", ErrNoUnit},
		{"[note]", ErrNoUnit},
		{" (1598.4 km/h)", ErrNoUnit},
		{"/s", ErrUnparseableUnit},
		{"m/", ErrUnparseableUnit},
		{"m/()", ErrUnparseableUnit},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := Parse(tt.raw)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnit_JSON(t *testing.T) {
	data, err := json.Marshal(Primitive("pm"))
	require.NoError(t, err)
	assert.JSONEq(t, `"pm"`, string(data))

	data, err = json.Marshal(Ratio("W", "m K"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"numerator":"W","denominator":"m K"}`, string(data))

	var u Unit
	require.NoError(t, json.Unmarshal(data, &u))
	assert.Equal(t, Ratio("W", "m K"), u)

	require.NoError(t, json.Unmarshal([]byte(`"K"`), &u))
	assert.Equal(t, Primitive("K"), u)
}

func TestUnit_String(t *testing.T) {
	assert.Equal(t, "pm", Primitive("pm").String())
	assert.Equal(t, "m/s", Ratio("m", "s").String())
	assert.Equal(t, "W/(m K)", Ratio("W", "m K").String())
	assert.True(t, Ratio("m", "s").IsRatio())
	assert.False(t, Primitive("m").IsRatio())
}
