package reportengine

import (
	"sort"

	"github.com/echub/compliance-hub-backend/internal/domain/report"
	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

// Risk level thresholds in EUR and maturity percent.
const (
	kritischFineThreshold = 10_000_000
	hochFineThreshold     = 5_000_000
	kritischMaturityPct   = 30
	maxCriticalRisks      = 5
)

var riskColors = map[values.RiskLevel]string{
	values.RiskKritisch: "#dc2626",
	values.RiskHoch:     "#ea580c",
	values.RiskMittel:   "#d97706",
}

var riskDescriptions = map[values.RiskLevel]struct {
	Key  string
	Text string
}{
	values.RiskKritisch: {Key: "risk.desc.kritisch", Text: "Hohes Bußgeldrisiko bei sehr niedrigem Umsetzungsstand"},
	values.RiskHoch:     {Key: "risk.desc.hoch", Text: "Erhebliches Bußgeldrisiko, Umsetzung priorisieren"},
	values.RiskMittel:   {Key: "risk.desc.mittel", Text: "Relevante Anforderungen, Umsetzung einplanen"},
}

// CriticalRisks ranks the regulations with relevance "hoch" by combining
// fine magnitude and overall maturity. Level precedence: kritisch when
// maturity is below 30% and the fine reaches 10M EUR, else hoch when the
// fine reaches 5M EUR, else mittel. Regulations without a computable fine
// still appear, defaulted to mittel. The list is capped at five entries,
// most severe first.
func CriticalRisks(regs []report.EvaluatedRegulation, fines []report.FineExposure, overallPct float64) []report.CriticalRisk {
	fineByKey := make(map[string]values.Money, len(fines))
	for _, f := range fines {
		fineByKey[f.Key] = f.MaxFine
	}

	out := make([]report.CriticalRisk, 0, len(regs))
	for _, reg := range regs {
		if reg.Relevance != values.RelevanceHoch {
			continue
		}

		fine, hasFine := fineByKey[reg.Key]
		level := values.RiskMittel
		if hasFine {
			switch {
			case overallPct < kritischMaturityPct && fine.GreaterThanOrEqual(values.Euros(kritischFineThreshold)):
				level = values.RiskKritisch
			case fine.GreaterThanOrEqual(values.Euros(hochFineThreshold)):
				level = values.RiskHoch
			}
		}

		desc := riskDescriptions[level]
		risk := report.CriticalRisk{
			Key:         reg.Key,
			Name:        reg.Name,
			Level:       level,
			Description: desc.Text,
			Color:       riskColors[level],
		}
		if hasFine {
			risk.MaxFine = fine
		}
		out = append(out, risk)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].Level.Compare(out[j].Level); c != 0 {
			return c < 0
		}
		return out[i].MaxFine.GreaterThan(out[j].MaxFine)
	})

	if len(out) > maxCriticalRisks {
		out = out[:maxCriticalRisks]
	}
	return out
}
