package report

import (
	"time"

	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

// EvaluatedRegulation is one regulation from the static rule table with
// its computed relevance. Every regulation in the table appears exactly
// once per evaluation, including tier "niedrig" (considered, not
// relevant), so the UI can always show why something was excluded.
type EvaluatedRegulation struct {
	Key       string               `json:"key"`
	Name      string               `json:"name"`
	Subtitle  string               `json:"subtitle,omitempty"`
	Relevance values.RelevanceTier `json:"relevance"`
	Reason    string               `json:"reason"`
	ReasonKey string               `json:"reason_key,omitempty"`
	Color     string               `json:"color"`
}

// CostLineItem is one named sub-range of a regulation's cost estimate.
type CostLineItem struct {
	Label    string       `json:"label"`
	LabelKey string       `json:"label_key,omitempty"`
	Min      values.Money `json:"min"`
	Max      values.Money `json:"max"`
}

// RegulationCost is the scaled per-regulation cost estimate. The totals
// equal the sums of the breakdown exactly.
type RegulationCost struct {
	Key       string         `json:"key"`
	Name      string         `json:"name"`
	Min       values.Money   `json:"min"`
	Max       values.Money   `json:"max"`
	Breakdown []CostLineItem `json:"breakdown"`
}

// FineExposure is the statutory maximum fine computed for one regulation.
type FineExposure struct {
	Key      string       `json:"key"`
	Name     string       `json:"name"`
	MaxFine  values.Money `json:"max_fine"`
	Basis    string       `json:"basis"`
	BasisKey string       `json:"basis_key,omitempty"`
	// Display is the locale-formatted amount, filled by the
	// localization stage.
	Display string `json:"display,omitempty"`
}

// CategoryResult is one maturity category's normalized score.
type CategoryResult struct {
	Category string  `json:"category"`
	Title    string  `json:"title"`
	Percent  float64 `json:"percent"`
}

// MaturityResult is the scored self-assessment: per-category percentages,
// the overall percentage and the derived letter grade.
type MaturityResult struct {
	Categories     []CategoryResult     `json:"categories"`
	OverallPercent float64              `json:"overall_percent"`
	Grade          values.MaturityGrade `json:"grade"`
	GradeLabel     string               `json:"grade_label"`
}

// Deadline is one entry of the static deadline calendar annotated with
// the signed day count to the date. Negative means already in effect.
type Deadline struct {
	Regulation  string    `json:"regulation"`
	Date        time.Time `json:"date"`
	Title       string    `json:"title"`
	TitleKey    string    `json:"title_key,omitempty"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	DaysLeft    int       `json:"days_left"`
}

// ItemStatus is the derived completion state of a checklist item.
type ItemStatus string

const (
	StatusUnchecked ItemStatus = "unchecked"
	StatusPartial   ItemStatus = "partial"
	StatusCompliant ItemStatus = "compliant"
)

// ChecklistItemStatus pairs an obligation item with its derived status.
// Statuses are never stored; they are recomputed from maturity answers.
type ChecklistItemStatus struct {
	ItemID string     `json:"item_id"`
	Text   string     `json:"text"`
	Status ItemStatus `json:"status"`
}

// CriticalRisk is one entry of the ranked risk list.
type CriticalRisk struct {
	Key         string           `json:"key"`
	Name        string           `json:"name"`
	Level       values.RiskLevel `json:"level"`
	Description string           `json:"description"`
	MaxFine     values.Money     `json:"max_fine"`
	// FineDisplay is the locale-formatted fine, filled by the
	// localization stage. Empty when no fine exposure was computable.
	FineDisplay string `json:"fine_display,omitempty"`
	Color       string `json:"color"`
}

// Roadmap phases.
const (
	PhaseImmediate  = 1
	PhaseShortTerm  = 2
	PhaseMediumTerm = 3
)

// RoadmapItem is one recommended action in the three-phase roadmap.
// Name/NameKey and Days carry the arguments of parameterized action
// templates so the localization stage can re-render them per locale.
type RoadmapItem struct {
	Phase      int               `json:"phase"`
	PhaseLabel string            `json:"phase_label"`
	Action     string            `json:"action"`
	ActionKey  string            `json:"action_key,omitempty"`
	Regulation string            `json:"regulation,omitempty"`
	Name       string            `json:"regulation_name,omitempty"`
	NameKey    string            `json:"name_key,omitempty"`
	Days       int               `json:"days,omitempty"`
	Effort     values.EffortTier `json:"effort"`
	Role       string            `json:"role"`
	Color      string            `json:"color"`
}
