package reportengine

import (
	"fmt"

	"github.com/echub/compliance-hub-backend/internal/domain/report"
	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

// Roadmap thresholds. These numbers are the report's core recommendation
// logic and are fixed deliberately.
const (
	appointOwnerBelowPct = 40
	trainingBelowPct     = 60
	urgentDeadlineDays   = 90
	maxGapAnalyses       = 2
	maxMediumTermPlans   = 3
)

var phaseLabels = map[int]struct {
	Key   string
	Text  string
	Color string
}{
	report.PhaseImmediate:  {Key: "roadmap.phase.1", Text: "Sofortmaßnahmen", Color: "#dc2626"},
	report.PhaseShortTerm:  {Key: "roadmap.phase.2", Text: "Kurzfristig (3–6 Monate)", Color: "#f59e0b"},
	report.PhaseMediumTerm: {Key: "roadmap.phase.3", Text: "Mittelfristig (6–12 Monate)", Color: "#10b981"},
}

// German source templates for parameterized roadmap actions, shared with
// the localization stage.
var actionTemplates = map[string]string{
	"roadmap.action.appoint":   "Compliance-Verantwortlichen benennen und Mandat festlegen",
	"roadmap.action.deadline":  "Frist „%s“ in %d Tagen: Sofortmaßnahmen priorisieren",
	"roadmap.action.gap":       "Gap-Analyse %s durchführen",
	"roadmap.action.implement": "%s vollständig umsetzen",
	"roadmap.action.training":  "Schulungsprogramm für Mitarbeitende aufsetzen",
	"roadmap.action.plan":      "%s beobachten und Umsetzung planen",
	"roadmap.action.review":    "Regelmäßiges Compliance-Review etablieren (quartalsweise)",
}

// Responsible role labels.
const (
	roleManagement = "Geschäftsführung"
	roleCompliance = "Compliance-Team"
	roleITBusiness = "Fachbereich & IT"
	roleHR         = "HR & Compliance"
)

// BuildRoadmap derives the three-phase action plan. Phase 1 covers
// ownership, urgent deadlines and gap analyses for the top "hoch"
// regulations; phase 2 the full implementations plus training; phase 3
// planning for "mittel" regulations and the standing review. Items are
// grouped by phase and not deduplicated across regulations.
func BuildRoadmap(regs []report.EvaluatedRegulation, nextDeadline *report.Deadline, overallPct float64) []report.RoadmapItem {
	var hoch, mittel []report.EvaluatedRegulation
	for _, r := range regs {
		switch r.Relevance {
		case values.RelevanceHoch:
			hoch = append(hoch, r)
		case values.RelevanceMittel:
			mittel = append(mittel, r)
		}
	}

	var items []report.RoadmapItem
	add := func(phase int, item report.RoadmapItem) {
		label := phaseLabels[phase]
		item.Phase = phase
		item.PhaseLabel = label.Text
		item.Color = label.Color
		items = append(items, item)
	}

	regItem := func(actionKey string, reg report.EvaluatedRegulation, effort values.EffortTier, role string) report.RoadmapItem {
		return report.RoadmapItem{
			Action:     fmt.Sprintf(actionTemplates[actionKey], reg.Name),
			ActionKey:  actionKey,
			Regulation: reg.Key,
			Name:       reg.Name,
			NameKey:    "regulation." + reg.Key + ".name",
			Effort:     effort,
			Role:       role,
		}
	}

	// Phase 1: immediate
	if overallPct < appointOwnerBelowPct {
		add(report.PhaseImmediate, report.RoadmapItem{
			Action:    actionTemplates["roadmap.action.appoint"],
			ActionKey: "roadmap.action.appoint",
			Effort:    values.EffortNiedrig,
			Role:      roleManagement,
		})
	}
	if nextDeadline != nil && nextDeadline.DaysLeft >= 0 && nextDeadline.DaysLeft < urgentDeadlineDays {
		add(report.PhaseImmediate, report.RoadmapItem{
			Action:     fmt.Sprintf(actionTemplates["roadmap.action.deadline"], nextDeadline.Title, nextDeadline.DaysLeft),
			ActionKey:  "roadmap.action.deadline",
			Regulation: nextDeadline.Regulation,
			Name:       nextDeadline.Title,
			NameKey:    nextDeadline.TitleKey + ".title",
			Days:       nextDeadline.DaysLeft,
			Effort:     values.EffortMittel,
			Role:       roleCompliance,
		})
	}
	for i, reg := range hoch {
		if i >= maxGapAnalyses {
			break
		}
		add(report.PhaseImmediate, regItem("roadmap.action.gap", reg, values.EffortMittel, roleCompliance))
	}

	// Phase 2: short term
	for _, reg := range hoch {
		add(report.PhaseShortTerm, regItem("roadmap.action.implement", reg, values.EffortHoch, roleITBusiness))
	}
	if overallPct < trainingBelowPct {
		add(report.PhaseShortTerm, report.RoadmapItem{
			Action:    actionTemplates["roadmap.action.training"],
			ActionKey: "roadmap.action.training",
			Effort:    values.EffortNiedrig,
			Role:      roleHR,
		})
	}

	// Phase 3: medium term
	for i, reg := range mittel {
		if i >= maxMediumTermPlans {
			break
		}
		add(report.PhaseMediumTerm, regItem("roadmap.action.plan", reg, values.EffortNiedrig, roleCompliance))
	}
	add(report.PhaseMediumTerm, report.RoadmapItem{
		Action:    actionTemplates["roadmap.action.review"],
		ActionKey: "roadmap.action.review",
		Effort:    values.EffortNiedrig,
		Role:      roleCompliance,
	})

	return items
}
