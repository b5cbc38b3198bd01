package reportengine

import (
	"github.com/shopspring/decimal"

	"github.com/echub/compliance-hub-backend/internal/domain/report"
	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

// fineRule holds a regulation's statutory penalty regime: a fixed cap in
// EUR, a percentage-of-revenue cap, and whether the higher of the two
// applies (the usual EU regime).
type fineRule struct {
	Fixed       int64
	Percent     decimal.Decimal
	HigherOfTwo bool
}

var fineRules = map[string]fineRule{
	"dsgvo":    {Fixed: 20_000_000, Percent: decimal.RequireFromString("4"), HigherOfTwo: true},
	"nis2":     {Fixed: 10_000_000, Percent: decimal.RequireFromString("2"), HigherOfTwo: true},
	"ai_act":   {Fixed: 35_000_000, Percent: decimal.RequireFromString("7"), HigherOfTwo: true},
	"dora":     {Fixed: 10_000_000, Percent: decimal.RequireFromString("2"), HigherOfTwo: true},
	"cra":      {Fixed: 15_000_000, Percent: decimal.RequireFromString("2.5"), HigherOfTwo: true},
	"csrd":     {Fixed: 10_000_000, Percent: decimal.RequireFromString("5"), HigherOfTwo: true},
	"data_act": {Fixed: 20_000_000, Percent: decimal.RequireFromString("4"), HigherOfTwo: true},
	"dsa":      {Fixed: 0, Percent: decimal.RequireFromString("6"), HigherOfTwo: true},
	"eprivacy": {Fixed: 300_000},
	"bfsg":     {Fixed: 100_000},
	"hinschg":  {Fixed: 50_000},
	"gpsr":     {Fixed: 100_000},
	// eidas and pld carry national / liability regimes with no
	// comparable cap; they have no fine rule on purpose.
}

// CalculateFineExposure computes the statutory maximum fine for one
// regulation. It reports false when revenue is non-positive or no fine
// rule exists: unknown revenue must not silently become zero risk.
func CalculateFineExposure(key string, revenue values.Money) (report.FineExposure, bool) {
	rule, ok := fineRules[key]
	if !ok || !revenue.IsPositive() {
		return report.FineExposure{}, false
	}

	meta := regulationIndex[key]
	fixed := values.Euros(rule.Fixed)

	if !rule.HigherOfTwo {
		return report.FineExposure{
			Key:      key,
			Name:     meta.Name,
			MaxFine:  fixed,
			Basis:    "Fester gesetzlicher Höchstbetrag",
			BasisKey: "fine.basis.fixed",
		}, true
	}

	percentFine := revenue.Percent(rule.Percent)
	if percentFine.GreaterThan(fixed) {
		return report.FineExposure{
			Key:      key,
			Name:     meta.Name,
			MaxFine:  percentFine,
			Basis:    rule.Percent.String() + " % des weltweiten Jahresumsatzes, da höher als der Festbetrag",
			BasisKey: "fine.basis.percent",
		}, true
	}
	return report.FineExposure{
		Key:      key,
		Name:     meta.Name,
		MaxFine:  fixed,
		Basis:    "Festbetrag, da höher als der umsatzbezogene Höchstbetrag",
		BasisKey: "fine.basis.fixed_higher",
	}, true
}
