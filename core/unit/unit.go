// Package unit parses the unit text that trails a quantity in an element
// data cell into either a plain unit ("pm") or a ratio ("m/s", "W/(m K)").
package unit

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// Annotation is the footnote marker the source pages append to values.
const Annotation = "[note]"

var (
	// ErrNoUnit is returned for an empty unit fragment.
	ErrNoUnit = errors.New("no unit")
	// ErrUnparseableUnit is returned for a ratio whose numerator or
	// denominator cannot be found.
	ErrUnparseableUnit = errors.New("unparseable unit")
)

// Unit is either a primitive unit (Symbol set) or a ratio
// (Numerator and Denominator set).
type Unit struct {
	Symbol      string
	Numerator   string
	Denominator string
}

// Ratio builds a ratio unit.
func Ratio(numerator, denominator string) Unit {
	return Unit{Numerator: numerator, Denominator: denominator}
}

// Primitive builds a non-ratio unit.
func Primitive(symbol string) Unit {
	return Unit{Symbol: symbol}
}

// IsRatio reports whether u is a numerator/denominator pair.
func (u Unit) IsRatio() bool {
	return u.Denominator != ""
}

// String prints the unit the way the source writes it.
func (u Unit) String() string {
	if !u.IsRatio() {
		return u.Symbol
	}
	if strings.Contains(u.Denominator, " ") {
		return u.Numerator + "/(" + u.Denominator + ")"
	}
	return u.Numerator + "/" + u.Denominator
}

type ratioJSON struct {
	Numerator   string `json:"numerator"`
	Denominator string `json:"denominator"`
}

// MarshalJSON encodes a primitive unit as a string and a ratio as
// {"numerator": ..., "denominator": ...}.
func (u Unit) MarshalJSON() ([]byte, error) {
	if u.IsRatio() {
		return json.Marshal(ratioJSON{Numerator: u.Numerator, Denominator: u.Denominator})
	}
	return json.Marshal(u.Symbol)
}

// UnmarshalJSON accepts both encodings produced by MarshalJSON.
func (u *Unit) UnmarshalJSON(data []byte) error {
	var symbol string
	if err := json.Unmarshal(data, &symbol); err == nil {
		*u = Primitive(symbol)
		return nil
	}
	var r ratioJSON
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*u = Ratio(r.Numerator, r.Denominator)
	return nil
}

var (
	// secondaryQuantity matches a restatement such as " (1.8×10⁻¹⁰ m)".
	// The group must be preceded by whitespace so "W/(m K)" survives.
	secondaryQuantity = regexp.MustCompile(`\s+\(.*$`)
	// denominatorTokens matches the first run of space-separated tokens
	// that contain no whitespace, parentheses or brackets.
	denominatorTokens = regexp.MustCompile(`[^\s()\[\]]+(?: [^\s()\[\]]+)*`)
)

// Parse turns a raw unit fragment into a Unit.
func Parse(raw string) (Unit, error) {
	raw = secondaryQuantity.ReplaceAllString(strings.ReplaceAll(raw, Annotation, ""), "")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Unit{}, ErrNoUnit
	}

	numerator, rest, isRatio := strings.Cut(raw, "/")
	if !isRatio {
		return Primitive(raw), nil
	}

	numerator = strings.TrimSpace(numerator)
	denominator := strings.TrimSpace(denominatorTokens.FindString(rest))
	if numerator == "" || denominator == "" {
		return Unit{}, ErrUnparseableUnit
	}
	return Ratio(numerator, denominator), nil
}
