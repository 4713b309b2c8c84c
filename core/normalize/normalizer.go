// Package normalize implements the field-normalization engine.
// It maps a row label to one of a fixed set of rules and turns the raw
// content of the row's value cell into a typed value: numbers, quantities
// with units, electron configurations, isotope tables and so on.
//
// Normalization never fails. Absent data comes back as a nil value or as
// the numeric NaN sentinel, depending on the rule.
package normalize

import (
	"github.com/gaurav-prasanna/periodicdata/core/content"
)

// Normalizer dispatches labels to rules. It holds no mutable state and is
// safe for concurrent use.
type Normalizer struct {
	expandDiscovery bool
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithDiscoveryExpansion makes the Discovery rule produce two keys,
// discoveryYear and discoveryCountries, instead of one composite value.
func WithDiscoveryExpansion() Option {
	return func(n *Normalizer) {
		n.expandDiscovery = true
	}
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize converts the value cell of the row labeled label. Labels that
// are not registered use the default rule.
func (z *Normalizer) Normalize(label string, cell content.Node) Field {
	rule, ok := Lookup(label)
	if !ok {
		rule = RuleDefault
	}
	return z.Apply(rule, label, cell)
}

// Apply runs rule directly, bypassing the label lookup.
func (z *Normalizer) Apply(rule Rule, label string, cell content.Node) Field {
	switch rule {
	case RuleDefault:
		return defaultValue(label, cell)
	case RuleInteger:
		return integerValue(label, cell)
	case RuleFloat:
		return floatValue(label, cell)
	case RuleFloatWithUnit:
		return floatWithUnit(label, cell)
	case RulePercent:
		return percent(label, cell)
	case RuleNFPALabel:
		return nfpaLabel(label, cell)
	case RuleElectronConfiguration:
		return electronConfiguration(label, cell)
	case RuleDiscovery:
		if z.expandDiscovery {
			return expandedDiscovery(label, cell)
		}
		return discovery(label, cell)
	case RuleLatticeConstants:
		return latticeConstants(label, cell)
	case RuleQuantumNumbers:
		return quantumNumbers(label, cell)
	case RuleIsotopes:
		return isotopes(label, cell)
	case RuleIsotopicAbundances:
		return isotopicAbundances(label, cell)
	case RuleCSV:
		return csv(label, cell)
	case RuleFloatCSVWithUnit:
		return floatCSVWithUnit(label, cell)
	default:
		return defaultValue(label, cell)
	}
}
