package reportengine

import (
	"github.com/shopspring/decimal"

	"github.com/echub/compliance-hub-backend/internal/domain/report"
	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

// costItem is one named line item of a regulation's base cost range, in
// EUR for a small company at maturity level 0.
type costItem struct {
	ID    string
	Label string
	Min   int64
	Max   int64
}

// costTables covers the regulations with meaningful implementation cost
// data. Keys absent here are silently skipped by the estimator; cost
// estimation is best-effort enrichment, not a required computation.
var costTables = map[string][]costItem{
	"nis2": {
		{ID: "cost.nis2.gap", Label: "Gap-Analyse und Risikobewertung", Min: 8000, Max: 15000},
		{ID: "cost.nis2.isms", Label: "Technische Maßnahmen und ISMS", Min: 15000, Max: 40000},
		{ID: "cost.nis2.incident", Label: "Melde- und Incident-Prozesse", Min: 4000, Max: 10000},
		{ID: "cost.nis2.training", Label: "Schulungen und Awareness", Min: 3000, Max: 8000},
	},
	"dsgvo": {
		{ID: "cost.dsgvo.audit", Label: "Datenschutz-Audit", Min: 3000, Max: 8000},
		{ID: "cost.dsgvo.tom", Label: "Technische und organisatorische Maßnahmen", Min: 5000, Max: 15000},
		{ID: "cost.dsgvo.records", Label: "Verzeichnis und Dokumentation", Min: 2000, Max: 6000},
		{ID: "cost.dsgvo.dpo", Label: "Externer Datenschutzbeauftragter (Jahr)", Min: 3000, Max: 9000},
	},
	"ai_act": {
		{ID: "cost.ai_act.inventory", Label: "KI-Inventar und Risikoklassifizierung", Min: 5000, Max: 12000},
		{ID: "cost.ai_act.conformity", Label: "Konformitätsbewertung", Min: 10000, Max: 30000},
		{ID: "cost.ai_act.governance", Label: "KI-Governance und Aufsicht", Min: 4000, Max: 10000},
	},
	"dora": {
		{ID: "cost.dora.risk", Label: "IKT-Risikomanagement", Min: 10000, Max: 25000},
		{ID: "cost.dora.testing", Label: "Resilienz-Tests", Min: 8000, Max: 20000},
		{ID: "cost.dora.thirdparty", Label: "Auslagerungs- und Drittparteienmanagement", Min: 5000, Max: 12000},
	},
	"cra": {
		{ID: "cost.cra.assessment", Label: "Produkt-Sicherheitsbewertung", Min: 8000, Max: 20000},
		{ID: "cost.cra.sdlc", Label: "Secure-Development-Prozesse", Min: 10000, Max: 25000},
		{ID: "cost.cra.vuln", Label: "Schwachstellenmanagement", Min: 5000, Max: 12000},
	},
	"csrd": {
		{ID: "cost.csrd.materiality", Label: "Wesentlichkeitsanalyse", Min: 6000, Max: 15000},
		{ID: "cost.csrd.data", Label: "ESG-Datenerhebung", Min: 10000, Max: 30000},
		{ID: "cost.csrd.reporting", Label: "Berichtserstellung und Prüfung", Min: 8000, Max: 25000},
	},
	"eprivacy": {
		{ID: "cost.eprivacy.cmp", Label: "Consent-Management-Plattform", Min: 2000, Max: 6000},
		{ID: "cost.eprivacy.audit", Label: "Tracking-Audit", Min: 1000, Max: 4000},
	},
	"bfsg": {
		{ID: "cost.bfsg.audit", Label: "Barrierefreiheits-Audit", Min: 3000, Max: 8000},
		{ID: "cost.bfsg.wcag", Label: "Umsetzung WCAG-Anforderungen", Min: 5000, Max: 20000},
	},
	"hinschg": {
		{ID: "cost.hinschg.channel", Label: "Interne Meldestelle einrichten", Min: 2000, Max: 5000},
		{ID: "cost.hinschg.process", Label: "Prozesse und Schulung", Min: 1000, Max: 4000},
	},
	"gpsr": {
		{ID: "cost.gpsr.docs", Label: "Produktsicherheitsdokumentation", Min: 2000, Max: 6000},
		{ID: "cost.gpsr.surveillance", Label: "Marktüberwachungs-Prozesse", Min: 2000, Max: 5000},
	},
}

// sizeFactors scale costs monotonically with company size.
var sizeFactors = map[values.CompanySize]decimal.Decimal{
	values.SizeMicro:  decimal.RequireFromString("0.6"),
	values.SizeSmall:  decimal.RequireFromString("1.0"),
	values.SizeMedium: decimal.RequireFromString("1.6"),
	values.SizeLarge:  decimal.RequireFromString("2.5"),
}

// maturityDiscounts shrink the gap-closing cost as existing maturity
// rises, indexed by maturity level 0-3.
var maturityDiscounts = [report.MaxMaturityLevel + 1]decimal.Decimal{
	decimal.RequireFromString("1.0"),
	decimal.RequireFromString("0.85"),
	decimal.RequireFromString("0.7"),
	decimal.RequireFromString("0.55"),
}

// EstimateCosts scales the cost table for the requested regulation keys
// by company size and existing maturity. Unknown keys are skipped. Each
// line item is rounded to hundreds; the totals are sums of the rounded
// items, so the breakdown always adds up exactly.
func EstimateCosts(keys []string, size values.CompanySize, maturityLevel int) []report.RegulationCost {
	if maturityLevel < 0 {
		maturityLevel = 0
	}
	if maturityLevel > report.MaxMaturityLevel {
		maturityLevel = report.MaxMaturityLevel
	}

	factor, ok := sizeFactors[size]
	if !ok {
		factor = sizeFactors[values.SizeSmall]
	}
	scale := factor.Mul(maturityDiscounts[maturityLevel])

	out := make([]report.RegulationCost, 0, len(keys))
	for _, key := range keys {
		items, ok := costTables[key]
		if !ok {
			continue
		}
		rule := regulationIndex[key]

		cost := report.RegulationCost{
			Key:       key,
			Name:      rule.Name,
			Min:       values.Zero(values.EUR),
			Max:       values.Zero(values.EUR),
			Breakdown: make([]report.CostLineItem, 0, len(items)),
		}
		for _, item := range items {
			min := values.Euros(item.Min).Mul(scale).RoundToHundreds()
			max := values.Euros(item.Max).Mul(scale).RoundToHundreds()
			cost.Breakdown = append(cost.Breakdown, report.CostLineItem{
				Label:    item.Label,
				LabelKey: item.ID,
				Min:      min,
				Max:      max,
			})
			cost.Min = cost.Min.Add(min)
			cost.Max = cost.Max.Add(max)
		}
		out = append(out, cost)
	}
	return out
}
