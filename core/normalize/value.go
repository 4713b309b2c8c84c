package normalize

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/gaurav-prasanna/periodicdata/core/numeric"
	"github.com/gaurav-prasanna/periodicdata/core/unit"
)

// Value is the normalized form of one field: the verbatim row label, the
// typed value and, for quantities, the unit.
type Value struct {
	Label string     `json:"label"`
	Value any        `json:"value"`
	Units *unit.Unit `json:"units,omitempty"`
}

// Field is the result of normalizing one row. Keys and Values are
// parallel; most rules produce exactly one of each.
type Field struct {
	Keys   []string
	Values []Value
}

func single(label string, v Value) Field {
	return Field{Keys: []string{CamelCase(label)}, Values: []Value{v}}
}

// Key returns the first key.
func (f Field) Key() string {
	if len(f.Keys) == 0 {
		return ""
	}
	return f.Keys[0]
}

// Value returns the first value.
func (f Field) Value() Value {
	if len(f.Values) == 0 {
		return Value{}
	}
	return f.Values[0]
}

// Multiple reports whether the field expands into several keys.
func (f Field) Multiple() bool {
	return len(f.Keys) > 1
}

// Record accumulates the normalized fields of one element.
type Record map[string]Value

// Add merges f into r, one entry per key. Later fields overwrite earlier
// ones with the same key.
func (r Record) Add(f Field) {
	for i, key := range f.Keys {
		if i < len(f.Values) {
			r[key] = f.Values[i]
		}
	}
}

// Shell is one subshell of an electron configuration.
type Shell struct {
	Name      string
	Electrons numeric.Number
}

// Shells keeps subshells in the order they are written and encodes as a
// JSON object {"4f": 14, ...}.
type Shells []Shell

// Get returns the electron count of the named subshell.
func (s Shells) Get(name string) (numeric.Number, bool) {
	for _, shell := range s {
		if shell.Name == name {
			return shell.Electrons, true
		}
	}
	return 0, false
}

func (s Shells) set(name string, electrons numeric.Number) Shells {
	for i := range s {
		if s[i].Name == name {
			s[i].Electrons = electrons
			return s
		}
	}
	return append(s, Shell{Name: name, Electrons: electrons})
}

func (s Shells) MarshalJSON() ([]byte, error) {
	return marshalObject(len(s), func(i int) (string, any) {
		return s[i].Name, s[i].Electrons
	})
}

// ElectronConfiguration is a noble-gas base ("Xe") plus the subshells
// filled on top of it. Base is nil when the configuration is written out
// in full.
type ElectronConfiguration struct {
	Base   *string `json:"base"`
	Shells Shells  `json:"shells"`
}

// Discovery is the year (negative for BC) and countries of discovery.
// Countries is nil when no country is given or the year is unknown.
type Discovery struct {
	Year      numeric.Number `json:"year"`
	Countries []string       `json:"countries"`
}

// TermSymbol is the ground-state term symbol ²ˢ⁺¹L_J. Orbital stays a
// string since it is often a fraction such as "11/5".
type TermSymbol struct {
	SpinMultiplicity numeric.Number `json:"spinMultiplicity"`
	AngularMomentum  string         `json:"angularMomentum"`
	Orbital          string         `json:"orbital"`
}

// Abundance is the natural abundance, in percent, of one isotope.
type Abundance struct {
	MassNumber int64
	Percent    numeric.Number
}

// Abundances keeps isotopes in table order and encodes as a JSON object
// keyed by mass number.
type Abundances []Abundance

// Get returns the abundance of the isotope with the given mass number.
func (a Abundances) Get(massNumber int64) (numeric.Number, bool) {
	for _, ab := range a {
		if ab.MassNumber == massNumber {
			return ab.Percent, true
		}
	}
	return 0, false
}

func (a Abundances) set(massNumber int64, percent numeric.Number) Abundances {
	for i := range a {
		if a[i].MassNumber == massNumber {
			a[i].Percent = percent
			return a
		}
	}
	return append(a, Abundance{MassNumber: massNumber, Percent: percent})
}

func (a Abundances) MarshalJSON() ([]byte, error) {
	return marshalObject(len(a), func(i int) (string, any) {
		return strconv.FormatInt(a[i].MassNumber, 10), a[i].Percent
	})
}

// marshalObject writes n key/value pairs as a JSON object, in order.
func marshalObject(n int, entry func(i int) (string, any)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; i < n; i++ {
		key, val := entry(i)
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
