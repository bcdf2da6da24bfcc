// Package units converts quantities and per-unit costs between the base
// units inventory fields are denominated in, and manages the stored mapping
// that picks the unit each base unit reports in.
package units

import "encoding/json"

// Base units. The identifiers are stored in the database and must stay
// stable; Label gives the display form.
const (
	Ounce      = "ounce"
	Gram       = "gram"
	Each       = "each"
	Millilitre = "millilitre"
)

// BaseUnits lists the base units in a fixed order for deterministic form
// rendering.
var BaseUnits = []string{Ounce, Gram, Each, Millilitre}

var labels = map[string]string{
	Ounce:      "Ounce",
	Gram:       "Gram",
	Each:       "Each",
	Millilitre: "Millilitre",
}

// factors maps a source unit to the multiplier that converts a quantity
// expressed in it to each supported target unit.
var factors = map[string]map[string]float64{
	Each: {Each: 1},
	Ounce: {
		Ounce:      1,
		Gram:       28.349523125,
		Millilitre: 29.5735295625,
	},
	Gram: {
		Gram:  1,
		Ounce: 1 / 28.349523125,
	},
	Millilitre: {
		Millilitre: 1,
		Ounce:      0.0338140227,
	},
}

// Label returns the display label for a unit. Unknown units display as
// themselves and an empty unit displays as nothing.
func Label(unit string) string {
	if unit == "" {
		return ""
	}
	if l, ok := labels[unit]; ok {
		return l
	}
	return unit
}

// AllowedTargets returns the units a base unit can report in, in base unit
// order.
func AllowedTargets(base string) []string {
	m := factors[base]
	if len(m) == 0 {
		return nil
	}
	targets := make([]string, 0, len(m))
	for _, u := range BaseUnits {
		if _, ok := m[u]; ok {
			targets = append(targets, u)
		}
	}
	return targets
}

// ConversionFactor returns the multiplier that converts quantities from one
// unit to another and whether that conversion is supported.
func ConversionFactor(from, to string) (float64, bool) {
	f, ok := factors[from][to]
	return f, ok
}

// ConversionError is an error indicating a conversion between units that do
// not translate into each other.
type ConversionError struct {
	From string
	To   string
}

func (err *ConversionError) Error() string {
	return "unsupported conversion from " + err.From + " to " + err.To
}

// ConvertQuantity converts a quantity between units. A unit always converts
// to itself.
func ConvertQuantity(v float64, from, to string) (float64, error) {
	if from == to {
		return v, nil
	}
	f, ok := ConversionFactor(from, to)
	if !ok {
		return 0, &ConversionError{From: from, To: to}
	}
	return v * f, nil
}

// ConvertUnitCost converts a per-unit cost between units. Costs divide where
// quantities multiply: a gram of something costs less than an ounce of it.
func ConvertUnitCost(v float64, from, to string) (float64, error) {
	if from == to {
		return v, nil
	}
	f, ok := ConversionFactor(from, to)
	if !ok || f == 0 {
		return 0, &ConversionError{From: from, To: to}
	}
	return v / f, nil
}

// Conversions maps each base unit to the unit its quantities report in.
type Conversions map[string]string

// DefaultConversions returns the identity mapping, each unit reporting as
// itself.
func DefaultConversions() Conversions {
	m := make(Conversions, len(BaseUnits))
	for _, u := range BaseUnits {
		m[u] = u
	}
	return m
}

// Normalized returns a full mapping with every base unit present and any
// unsupported target clamped back to identity.
func (c Conversions) Normalized() Conversions {
	m := DefaultConversions()
	for _, unit := range BaseUnits {
		if target, ok := c[unit]; ok && allowed(unit, target) {
			m[unit] = target
		}
	}
	return m
}

// ParseConversionSetting parses the stored JSON conversion setting. Missing
// entries, unknown units, targets a base unit cannot convert to, and
// malformed JSON all fall back to the identity mapping.
func ParseConversionSetting(value string) Conversions {
	if value == "" {
		return DefaultConversions()
	}
	var data Conversions
	if err := json.Unmarshal([]byte(value), &data); err != nil {
		return DefaultConversions()
	}
	return data.Normalized()
}

func allowed(base, target string) bool {
	_, ok := factors[base][target]
	return ok
}

// Serialize renders the mapping for storage with sorted keys, clamping
// unsupported targets back to identity.
func (c Conversions) Serialize() string {
	b, _ := json.Marshal(c.Normalized())
	return string(b)
}

// QuantityForReporting converts a quantity into the reporting unit
// configured for its base unit. Unmapped or unconvertible units report
// unchanged.
func QuantityForReporting(q float64, base string, conv Conversions) (float64, string) {
	if base == "" {
		return q, base
	}
	target, ok := conv[base]
	if !ok || target == base {
		return q, base
	}
	f, ok := ConversionFactor(base, target)
	if !ok {
		return q, base
	}
	return q * f, target
}

// CostForReporting converts a per-unit cost into the reporting unit
// configured for its base unit.
func CostForReporting(cost float64, base string, conv Conversions) float64 {
	if base == "" {
		return cost
	}
	target, ok := conv[base]
	if !ok || target == base {
		return cost
	}
	f, ok := ConversionFactor(base, target)
	if !ok || f == 0 {
		return cost
	}
	return cost / f
}
