package reportengine

import (
	"github.com/echub/compliance-hub-backend/internal/domain/report"
	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

// checklistItem is one obligation of a regulation's static checklist.
type checklistItem struct {
	ID   string
	Text string
}

// checklists holds the curated per-regulation obligation lists, in
// display order.
var checklists = map[string][]checklistItem{
	"nis2": {
		{ID: "nis2-1", Text: "Risikoanalyse und Sicherheitskonzept für Netz- und Informationssysteme"},
		{ID: "nis2-2", Text: "Incident-Response-Plan mit 24h/72h-Meldewegen"},
		{ID: "nis2-3", Text: "Sicherheit in der Lieferkette bewertet"},
		{ID: "nis2-4", Text: "Business Continuity und Backup-Management"},
		{ID: "nis2-5", Text: "Leitungsebene geschult und Verantwortung übernommen"},
	},
	"dsgvo": {
		{ID: "dsgvo-1", Text: "Verzeichnis von Verarbeitungstätigkeiten geführt"},
		{ID: "dsgvo-2", Text: "Technische und organisatorische Maßnahmen dokumentiert"},
		{ID: "dsgvo-3", Text: "Auftragsverarbeitungsverträge geschlossen"},
		{ID: "dsgvo-4", Text: "Prozesse für Betroffenenrechte etabliert"},
		{ID: "dsgvo-5", Text: "Meldeprozess für Datenpannen (72h) eingerichtet"},
	},
	"ai_act": {
		{ID: "ai_act-1", Text: "KI-Inventar aller eingesetzten Systeme"},
		{ID: "ai_act-2", Text: "Risikoklassifizierung je KI-System"},
		{ID: "ai_act-3", Text: "Menschliche Aufsicht geregelt"},
		{ID: "ai_act-4", Text: "Daten-Governance für Trainingsdaten"},
		{ID: "ai_act-5", Text: "Transparenzpflichten gegenüber Nutzern umgesetzt"},
	},
	"dora": {
		{ID: "dora-1", Text: "IKT-Risikomanagement-Rahmenwerk etabliert"},
		{ID: "dora-2", Text: "IKT-Vorfälle klassifiziert und gemeldet"},
		{ID: "dora-3", Text: "Digitale Resilienz regelmäßig getestet"},
		{ID: "dora-4", Text: "Register der IKT-Drittanbieter gepflegt"},
		{ID: "dora-5", Text: "Exit-Strategien für kritische Anbieter"},
	},
	"cra": {
		{ID: "cra-1", Text: "Security-by-Design im Entwicklungsprozess"},
		{ID: "cra-2", Text: "Software Bill of Materials (SBOM) gepflegt"},
		{ID: "cra-3", Text: "Prozess zur koordinierten Schwachstellen-Offenlegung"},
		{ID: "cra-4", Text: "Sicherheitsupdates über den Supportzeitraum"},
		{ID: "cra-5", Text: "Konformitätsbewertung und CE-Kennzeichnung"},
	},
	"csrd": {
		{ID: "csrd-1", Text: "Doppelte Wesentlichkeitsanalyse durchgeführt"},
		{ID: "csrd-2", Text: "ESG-Kennzahlen systematisch erhoben"},
		{ID: "csrd-3", Text: "Klimadaten (Scope 1-3) ermittelt"},
		{ID: "csrd-4", Text: "Berichtsprozess mit Verantwortlichkeiten etabliert"},
		{ID: "csrd-5", Text: "Prüfungsbereitschaft der Nachhaltigkeitsdaten"},
	},
}

// maturityImpact maps a maturity category to the checklist items it can
// upgrade, per regulation. Items not referenced by any category stay
// unchecked no matter how high other categories score: the engine never
// claims compliance the user did not demonstrate.
var maturityImpact = map[string]map[string][]string{
	"governance": {
		"nis2":   {"nis2-5"},
		"dsgvo":  {"dsgvo-1"},
		"ai_act": {"ai_act-3"},
		"dora":   {"dora-1"},
		"csrd":   {"csrd-4"},
	},
	"datenschutz": {
		"dsgvo":  {"dsgvo-2", "dsgvo-3", "dsgvo-4"},
		"ai_act": {"ai_act-4"},
	},
	"informationssicherheit": {
		"nis2": {"nis2-1", "nis2-3"},
		"cra":  {"cra-1", "cra-2"},
		"dora": {"dora-3"},
	},
	"risikomanagement": {
		"nis2":   {"nis2-1"},
		"dora":   {"dora-1", "dora-4"},
		"ai_act": {"ai_act-2"},
		"csrd":   {"csrd-1"},
	},
	"notfallmanagement": {
		"nis2":  {"nis2-2", "nis2-4"},
		"dsgvo": {"dsgvo-5"},
		"dora":  {"dora-2"},
		"cra":   {"cra-3", "cra-4"},
	},
	"schulung": {
		"nis2":   {"nis2-5"},
		"ai_act": {"ai_act-5"},
	},
}

// Status upgrade thresholds on the 0-3 maturity scale.
const (
	compliantLevel = 3
	partialLevel   = 2
)

// ChecklistStatuses derives per-item completion for every relevant
// regulation's checklist. Default is unchecked; a mapped category at
// level >= 2 upgrades to partial and >= 3 to compliant. When several
// categories reference the same item the best demonstrated level wins.
func ChecklistStatuses(answers []report.MaturityAnswer, regs []report.EvaluatedRegulation) map[string][]report.ChecklistItemStatus {
	levels := make(map[string]int, len(answers))
	for _, a := range answers {
		if a.Level > levels[a.Category] {
			levels[a.Category] = a.Level
		}
	}

	// best achieved level per item id
	itemLevels := make(map[string]int)
	for category, perReg := range maturityImpact {
		level := levels[category]
		if level < partialLevel {
			continue
		}
		for _, itemIDs := range perReg {
			for _, id := range itemIDs {
				if level > itemLevels[id] {
					itemLevels[id] = level
				}
			}
		}
	}

	out := make(map[string][]report.ChecklistItemStatus)
	for _, reg := range regs {
		if reg.Relevance == values.RelevanceNiedrig {
			continue
		}
		items, ok := checklists[reg.Key]
		if !ok {
			continue
		}
		statuses := make([]report.ChecklistItemStatus, 0, len(items))
		for _, item := range items {
			status := report.StatusUnchecked
			switch {
			case itemLevels[item.ID] >= compliantLevel:
				status = report.StatusCompliant
			case itemLevels[item.ID] >= partialLevel:
				status = report.StatusPartial
			}
			statuses = append(statuses, report.ChecklistItemStatus{
				ItemID: item.ID,
				Text:   item.Text,
				Status: status,
			})
		}
		out[reg.Key] = statuses
	}
	return out
}
