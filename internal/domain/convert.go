package domain

const (
	// LbToKg is the factor applied to pounds to obtain kilograms.
	LbToKg = 0.453592
	// KgToLb is the factor applied to kilograms to obtain pounds.
	KgToLb = 2.20462
)

// ToKg returns v, expressed in unit, in kilograms.
func ToKg(v float64, unit Unit) float64 {
	if unit == UnitLbs {
		return v * LbToKg
	}
	return v
}

// KgToLbs converts a canonical weight to pounds.
func KgToLbs(kg float64) float64 {
	return kg * KgToLb
}

// ConvertWeight converts a weight value between units.
// Returns v unchanged if from == to or if the units are unrecognised.
func ConvertWeight(v float64, from, to Unit) float64 {
	if from == to {
		return v
	}
	if from == UnitKg && to == UnitLbs {
		return v / LbToKg
	}
	if from == UnitLbs && to == UnitKg {
		return v * LbToKg
	}
	return v
}
