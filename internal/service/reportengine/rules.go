// Package reportengine implements the report generation pipeline: a
// synchronous, side-effect-free transformation from a self-reported
// company profile to one immutable, localized ReportData aggregate.
//
// All rule tables in this package are hand-curated, versioned constant
// data. They are loaded once and never mutated at runtime, which keeps
// every stage pure and safe for concurrent invocation.
package reportengine

import (
	"github.com/echub/compliance-hub-backend/internal/domain/report"
	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

// RuleTableVersion identifies the curated data set a report was built
// from. Bumped whenever regulations, costs, fines or deadlines change.
const RuleTableVersion = "2026-08"

// regulationRule is one entry of the static regulation table. Evaluate
// yields a relevance tier, a catalog reason key and the German source
// reason for any profile; it never excludes the regulation.
type regulationRule struct {
	Key      string
	Name     string
	Subtitle string
	Color    string
	Evaluate func(p report.CompanyProfile) (values.RelevanceTier, string, string)
}

// nis2Sectors are the Annex I/II sectors the rule table treats as in
// scope for NIS2.
var nis2Sectors = []string{
	report.SectorEnergy, report.SectorHealth, report.SectorTransport,
	report.SectorFinance, report.SectorIT, report.SectorTelecom,
	report.SectorPublic,
}

// regulationRules is evaluated in table order; output order is part of
// the deterministic contract.
var regulationRules = []regulationRule{
	{
		Key: "dsgvo", Name: "DSGVO", Subtitle: "Datenschutz-Grundverordnung", Color: "#2563eb",
		Evaluate: func(p report.CompanyProfile) (values.RelevanceTier, string, string) {
			switch {
			case p.HasAnyDataType(report.DataSensitive, report.DataHealth, report.DataBiometric):
				return values.RelevanceHoch, "reason.dsgvo.sensitive",
					"Ihr Unternehmen verarbeitet besondere Kategorien personenbezogener Daten (Art. 9 DSGVO)"
			case p.HasDataType(report.DataPersonal):
				return values.RelevanceHoch, "reason.dsgvo.personal",
					"Ihr Unternehmen verarbeitet personenbezogene Daten"
			default:
				return values.RelevanceMittel, "reason.dsgvo.default",
					"Beschäftigten- und Kontaktdaten machen die DSGVO für praktisch jedes Unternehmen relevant"
			}
		},
	},
	{
		Key: "nis2", Name: "NIS2", Subtitle: "Richtlinie zur Netz- und Informationssicherheit", Color: "#dc2626",
		// Precedence is fixed: critical-infrastructure activity first,
		// then sector membership combined with the size threshold,
		// then the default. Failing a test downgrades, never excludes.
		Evaluate: func(p report.CompanyProfile) (values.RelevanceTier, string, string) {
			if p.HasActivity(report.ActivityCriticalInfra) {
				return values.RelevanceHoch, "reason.nis2.kritis",
					"Ihr Unternehmen betreibt kritische Infrastruktur"
			}
			if p.HasAnySector(nis2Sectors...) {
				if p.Size.AtLeast(values.SizeLarge) {
					return values.RelevanceHoch, "reason.nis2.essential",
						"Ihr Sektor fällt unter NIS2 und die Unternehmensgröße erreicht die Schwelle wesentlicher Einrichtungen"
				}
				if p.Size.AtLeast(values.SizeMedium) {
					return values.RelevanceMittel, "reason.nis2.important",
						"Ihr Sektor fällt unter NIS2; die Unternehmensgröße liegt unterhalb der Schwelle wesentlicher Einrichtungen"
				}
				return values.RelevanceNiedrig, "reason.nis2.small",
					"Ihr Sektor ist erfasst, die Unternehmensgröße liegt aber unterhalb der NIS2-Schwellenwerte"
			}
			return values.RelevanceNiedrig, "reason.nis2.nosector",
				"Ihr Sektor fällt nicht unter die NIS2-Richtlinie"
		},
	},
	{
		Key: "ai_act", Name: "EU AI Act", Subtitle: "Verordnung über künstliche Intelligenz", Color: "#7c3aed",
		Evaluate: func(p report.CompanyProfile) (values.RelevanceTier, string, string) {
			switch {
			case p.HasActivity(report.ActivityAISystems):
				return values.RelevanceHoch, "reason.ai_act.deploys",
					"Ihr Unternehmen setzt KI-Systeme ein oder entwickelt sie"
			case p.HasDataType(report.DataBiometric):
				return values.RelevanceHoch, "reason.ai_act.biometric",
					"Die Verarbeitung biometrischer Daten fällt in sensible Anwendungsbereiche des AI Act"
			case p.HasSector(report.SectorIT) || p.HasActivity(report.ActivitySoftware):
				return values.RelevanceMittel, "reason.ai_act.software",
					"Als Software- bzw. IT-Unternehmen ist ein KI-Einsatz kurzfristig wahrscheinlich"
			default:
				return values.RelevanceNiedrig, "reason.ai_act.none",
					"Kein KI-Einsatz angegeben"
			}
		},
	},
	{
		Key: "dora", Name: "DORA", Subtitle: "Digital Operational Resilience Act", Color: "#0891b2",
		Evaluate: func(p report.CompanyProfile) (values.RelevanceTier, string, string) {
			switch {
			case p.HasSector(report.SectorFinance):
				return values.RelevanceHoch, "reason.dora.financial",
					"Ihr Unternehmen ist ein Finanzunternehmen im Sinne von DORA"
			case p.HasActivity(report.ActivityICTFinance):
				return values.RelevanceMittel, "reason.dora.ict",
					"Als IKT-Dienstleister für Finanzunternehmen greifen DORA-Pflichten vertraglich durch"
			default:
				return values.RelevanceNiedrig, "reason.dora.none",
					"Kein Bezug zum Finanzsektor angegeben"
			}
		},
	},
	{
		Key: "cra", Name: "CRA", Subtitle: "Cyber Resilience Act", Color: "#ea580c",
		Evaluate: func(p report.CompanyProfile) (values.RelevanceTier, string, string) {
			switch {
			case p.HasAnyActivity(report.ActivityIoTProducts, report.ActivitySoftware):
				return values.RelevanceHoch, "reason.cra.products",
					"Ihr Unternehmen bringt Produkte mit digitalen Elementen in Verkehr"
			case p.HasDataType(report.DataIoT):
				return values.RelevanceMittel, "reason.cra.iot",
					"Vernetzte Komponenten im Einsatz: CRA-Anforderungen an zugekaufte Produkte beachten"
			default:
				return values.RelevanceNiedrig, "reason.cra.none",
					"Keine Produkte mit digitalen Elementen angegeben"
			}
		},
	},
	{
		Key: "csrd", Name: "CSRD", Subtitle: "Corporate Sustainability Reporting Directive", Color: "#16a34a",
		Evaluate: func(p report.CompanyProfile) (values.RelevanceTier, string, string) {
			switch {
			case p.Size.AtLeast(values.SizeLarge):
				return values.RelevanceHoch, "reason.csrd.large",
					"Große Unternehmen sind nach CSRD berichtspflichtig"
			case p.Size.AtLeast(values.SizeMedium):
				return values.RelevanceMittel, "reason.csrd.medium",
					"Die Berichtspflicht rückt mit den nächsten CSRD-Wellen näher"
			default:
				return values.RelevanceNiedrig, "reason.csrd.small",
					"Für Ihre Unternehmensgröße ist keine Berichtspflicht absehbar"
			}
		},
	},
	{
		Key: "data_act", Name: "Data Act", Subtitle: "EU-Datenverordnung", Color: "#0d9488",
		Evaluate: func(p report.CompanyProfile) (values.RelevanceTier, string, string) {
			switch {
			case p.HasActivity(report.ActivityIoTProducts) || p.HasDataType(report.DataIoT):
				return values.RelevanceHoch, "reason.data_act.connected",
					"Vernetzte Produkte unterliegen den Datenzugangs- und Teilungspflichten des Data Act"
			case p.HasSector(report.SectorIT):
				return values.RelevanceMittel, "reason.data_act.cloud",
					"Cloud- und Datenverarbeitungsdienste müssen die Wechselpflichten des Data Act erfüllen"
			default:
				return values.RelevanceNiedrig, "reason.data_act.none",
					"Keine vernetzten Produkte oder Datendienste angegeben"
			}
		},
	},
	{
		Key: "eprivacy", Name: "ePrivacy / TTDSG", Subtitle: "Cookies und elektronische Kommunikation", Color: "#4f46e5",
		Evaluate: func(p report.CompanyProfile) (values.RelevanceTier, string, string) {
			if p.HasAnyActivity(report.ActivityEcommerce, report.ActivityPlatform) {
				return values.RelevanceHoch, "reason.eprivacy.ecommerce",
					"Tracking und Cookies im Online-Vertrieb erfordern eine rechtskonforme Einwilligung"
			}
			return values.RelevanceMittel, "reason.eprivacy.website",
				"Bereits eine Unternehmenswebsite mit Cookies fällt unter die ePrivacy-Regeln"
		},
	},
	{
		Key: "eidas", Name: "eIDAS 2.0", Subtitle: "Europäische digitale Identität", Color: "#b45309",
		Evaluate: func(p report.CompanyProfile) (values.RelevanceTier, string, string) {
			switch {
			case p.HasActivity(report.ActivityEID):
				return values.RelevanceHoch, "reason.eidas.provider",
					"Ihr Unternehmen bietet elektronische Identifizierungs- oder Vertrauensdienste an"
			case p.HasAnySector(report.SectorFinance, report.SectorPublic):
				return values.RelevanceMittel, "reason.eidas.acceptance",
					"Akzeptanzpflichten für die EUDI-Wallet treffen Ihren Sektor zuerst"
			default:
				return values.RelevanceNiedrig, "reason.eidas.none",
					"Keine Pflichten zur digitalen Identität angegeben"
			}
		},
	},
	{
		Key: "bfsg", Name: "BFSG", Subtitle: "Barrierefreiheitsstärkungsgesetz", Color: "#be185d",
		Evaluate: func(p report.CompanyProfile) (values.RelevanceTier, string, string) {
			if p.HasActivity(report.ActivityEcommerce) {
				if p.Size == values.SizeMicro {
					return values.RelevanceNiedrig, "reason.bfsg.micro",
						"Kleinstunternehmen sind bei Dienstleistungen vom BFSG ausgenommen"
				}
				return values.RelevanceHoch, "reason.bfsg.ecommerce",
					"B2C-Onlinehandel fällt seit Juni 2025 unter das BFSG"
			}
			return values.RelevanceNiedrig, "reason.bfsg.none",
				"Keine erfassten Produkte oder Verbraucherdienstleistungen angegeben"
		},
	},
	{
		Key: "hinschg", Name: "HinSchG", Subtitle: "Hinweisgeberschutzgesetz", Color: "#64748b",
		Evaluate: func(p report.CompanyProfile) (values.RelevanceTier, string, string) {
			if p.Size.AtLeast(values.SizeMedium) {
				return values.RelevanceHoch, "reason.hinschg.threshold",
					"Ab 50 Beschäftigten ist eine interne Meldestelle verpflichtend"
			}
			return values.RelevanceNiedrig, "reason.hinschg.below",
				"Unterhalb der Schwelle von 50 Beschäftigten"
		},
	},
	{
		Key: "gpsr", Name: "GPSR", Subtitle: "Produktsicherheitsverordnung", Color: "#a16207",
		Evaluate: func(p report.CompanyProfile) (values.RelevanceTier, string, string) {
			if p.HasActivity(report.ActivityEcommerce) || p.HasSector(report.SectorManufacturing) {
				return values.RelevanceHoch, "reason.gpsr.consumer",
					"Verbraucherprodukte im (Online-)Vertrieb unterliegen der GPSR"
			}
			return values.RelevanceNiedrig, "reason.gpsr.none",
				"Keine Verbraucherprodukte angegeben"
		},
	},
	{
		Key: "pld", Name: "Produkthaftung", Subtitle: "Neue EU-Produkthaftungsrichtlinie", Color: "#475569",
		Evaluate: func(p report.CompanyProfile) (values.RelevanceTier, string, string) {
			if p.HasAnyActivity(report.ActivitySoftware, report.ActivityIoTProducts) || p.HasSector(report.SectorManufacturing) {
				return values.RelevanceMittel, "reason.pld.software",
					"Die neue Produkthaftung erfasst auch Software und digitale Produkte"
			}
			return values.RelevanceNiedrig, "reason.pld.none",
				"Keine haftungsrelevanten Produkte angegeben"
		},
	},
	{
		Key: "dsa", Name: "DSA", Subtitle: "Digital Services Act", Color: "#9333ea",
		Evaluate: func(p report.CompanyProfile) (values.RelevanceTier, string, string) {
			switch {
			case p.HasActivity(report.ActivityPlatform):
				return values.RelevanceHoch, "reason.dsa.platform",
					"Online-Plattformen unterliegen den Sorgfaltspflichten des DSA"
			case p.HasActivity(report.ActivityEcommerce):
				return values.RelevanceMittel, "reason.dsa.hosting",
					"Hosting- und Vermittlungsdienste im Online-Handel fallen unter Basispflichten des DSA"
			default:
				return values.RelevanceNiedrig, "reason.dsa.none",
					"Keine Vermittlungsdienste angegeben"
			}
		},
	},
}

// regulationIndex resolves a key to its rule table entry.
var regulationIndex = func() map[string]*regulationRule {
	idx := make(map[string]*regulationRule, len(regulationRules))
	for i := range regulationRules {
		idx[regulationRules[i].Key] = &regulationRules[i]
	}
	return idx
}()

// RegulationCount is the size of the static rule table.
func RegulationCount() int {
	return len(regulationRules)
}

// Evaluate applies the full rule table to a company profile. It is total:
// every regulation in the table yields exactly one result, tier "niedrig"
// meaning considered-but-not-relevant. Missing or empty answer sets simply
// fail the gating predicates and drop to the lowest tier.
func Evaluate(profile report.CompanyProfile) []report.EvaluatedRegulation {
	out := make([]report.EvaluatedRegulation, 0, len(regulationRules))
	for _, rule := range regulationRules {
		tier, reasonKey, reason := rule.Evaluate(profile)
		out = append(out, report.EvaluatedRegulation{
			Key:       rule.Key,
			Name:      rule.Name,
			Subtitle:  rule.Subtitle,
			Relevance: tier,
			Reason:    reason,
			ReasonKey: reasonKey,
			Color:     rule.Color,
		})
	}
	return out
}
