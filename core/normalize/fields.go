package normalize

import "fmt"

// Rule identifies how the content of a field is normalized.
type Rule int

const (
	RuleDefault Rule = iota
	RuleInteger
	RuleFloat
	RuleFloatWithUnit
	RulePercent
	RuleNFPALabel
	RuleElectronConfiguration
	RuleDiscovery
	RuleLatticeConstants
	RuleQuantumNumbers
	RuleIsotopes
	RuleIsotopicAbundances
	RuleCSV
	RuleFloatCSVWithUnit

	ruleCount
)

var ruleNames = [ruleCount]string{
	RuleDefault:               "default",
	RuleInteger:               "integer",
	RuleFloat:                 "float",
	RuleFloatWithUnit:         "float-with-unit",
	RulePercent:               "percent",
	RuleNFPALabel:             "nfpa-label",
	RuleElectronConfiguration: "electron-configuration",
	RuleDiscovery:             "discovery",
	RuleLatticeConstants:      "lattice-constants",
	RuleQuantumNumbers:        "quantum-numbers",
	RuleIsotopes:              "isotopes",
	RuleIsotopicAbundances:    "isotopic-abundances",
	RuleCSV:                   "csv",
	RuleFloatCSVWithUnit:      "float-csv-with-unit",
}

func (r Rule) String() string {
	if r >= 0 && r < ruleCount {
		return ruleNames[r]
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// FieldSpec binds a row label, matched exactly, to its rule.
type FieldSpec struct {
	Label string
	Rule  Rule
}

// Key returns the record key the field is stored under. An expanded
// Discovery field is stored under this key's Year and Countries variants.
func (f FieldSpec) Key() string {
	return ruleKey(f.Rule, f.Label)
}

// KeyFor returns the record key of a row label. Unregistered labels use
// the default rule's key.
func KeyFor(label string) string {
	rule, _ := Lookup(label)
	return ruleKey(rule, label)
}

func ruleKey(rule Rule, label string) string {
	if rule == RulePercent {
		return percentKey(label)
	}
	return CamelCase(label)
}

// fieldSpecs lists every known row label, grouped by the page section it
// appears in.
var fieldSpecs = []FieldSpec{
	// Overview
	{"Atomic Number", RuleInteger},
	{"Atomic Weight", RuleFloat},
	{"Density", RuleFloatWithUnit},
	{"Melting Point", RuleFloatWithUnit},
	{"Boiling Point", RuleFloatWithUnit},

	// Thermal properties
	{"Critical Pressure", RuleFloatWithUnit},
	{"Critical Temperature", RuleFloatWithUnit},
	{"Absolute Melting Point", RuleFloatWithUnit},
	{"Absolute Boiling Point", RuleFloatWithUnit},
	{"Heat of Fusion", RuleFloatWithUnit},
	{"Heat of Vaporization", RuleFloatWithUnit},
	{"Heat of Combustion", RuleFloatWithUnit},
	{"Specific Heat", RuleFloatWithUnit},
	{"Adiabatic Index", RuleFloat},
	{"Neel Point", RuleFloatWithUnit},
	{"Thermal Conductivity", RuleFloatWithUnit},
	{"Thermal Expansion", RuleFloatWithUnit},

	// Bulk physical properties
	{"Density (Liquid)", RuleFloatWithUnit},
	{"Molar Volume", RuleFloat},
	{"Brinell Hardness", RuleFloatWithUnit},
	{"Mohs Hardness", RuleFloatWithUnit},
	{"Vickers Hardness", RuleFloatWithUnit},
	{"Bulk Modulus", RuleFloatWithUnit},
	{"Shear Modulus", RuleFloatWithUnit},
	{"Young Modulus", RuleFloatWithUnit},
	{"Poisson Ratio", RuleFloat},
	{"Refractive Index", RuleFloat},
	{"Speed of Sound", RuleFloatWithUnit},

	// Reactivity
	{"Valence", RuleInteger},
	{"Electronegativity", RuleFloat},
	{"ElectronAffinity", RuleFloatWithUnit},
	{"Ionization Energies", RuleFloatCSVWithUnit},

	// Health and Safety
	{"Autoignition Point", RuleFloatWithUnit},
	{"Flashpoint", RuleFloatWithUnit},
	{"DOT Numbers", RuleInteger},
	{"NFPA Fire Rating", RuleInteger},
	{"NFPA Health Rating", RuleInteger},
	{"NFPA Reactivity Rating", RuleInteger},
	{"NFPA Label", RuleNFPALabel},

	// Classifications
	{"Group", RuleInteger},
	{"Period", RuleInteger},
	{"Electron Configuration", RuleElectronConfiguration},
	{"Discovery", RuleDiscovery},

	// Electrical properties
	{"Electrical Conductivity", RuleFloatWithUnit},
	{"Resistivity", RuleFloatWithUnit},
	{"Superconducting Point", RuleFloat},

	// Magnetic properties
	{"Curie Point", RuleFloatWithUnit},
	{"Mass Magnetic Susceptibility", RuleFloat},
	{"Molar Magnetic Susceptibility", RuleFloat},
	{"Volume Magnetic Susceptibility", RuleFloat},

	// Abundances
	{"% in Universe", RulePercent},
	{"% in Sun", RulePercent},
	{"% in Meteorites", RulePercent},
	{"% in Earth's Crust", RulePercent},
	{"% in Oceans", RulePercent},
	{"% in Humans", RulePercent},

	// Atomic dimensions and structure
	{"Atomic Radius", RuleFloatWithUnit},
	{"Covalent Radius", RuleFloatWithUnit},
	{"Van der Waals Radius", RuleFloatWithUnit},
	{"Lattice Angles", RuleCSV},
	{"Lattice Constants", RuleLatticeConstants},
	{"Space Group Number", RuleInteger},

	// Nuclear Properties
	{"Half-Life", RuleFloatWithUnit},
	{"Lifetime", RuleFloatWithUnit},
	{"Quantum Numbers", RuleQuantumNumbers},
	{"Neutron Cross Section", RuleFloat},
	{"Neutron Mass Absorption", RuleFloat},
	{"Known Isotopes", RuleIsotopes},
	{"Stable Isotopes", RuleIsotopes},
	{"Isotopic Abundances", RuleIsotopicAbundances},
}

var fieldIndex = func() map[string]Rule {
	index := make(map[string]Rule, len(fieldSpecs))
	for _, field := range fieldSpecs {
		index[field.Label] = field.Rule
	}
	return index
}()

// Lookup returns the rule bound to label, matched exactly.
func Lookup(label string) (Rule, bool) {
	rule, ok := fieldIndex[label]
	return rule, ok
}

// Fields returns a copy of the registry in declaration order.
func Fields() []FieldSpec {
	out := make([]FieldSpec, len(fieldSpecs))
	copy(out, fieldSpecs)
	return out
}
