package reportengine

import (
	"math"

	"github.com/echub/compliance-hub-backend/internal/domain/report"
	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

// maturityCategory is one self-assessment domain of the questionnaire.
type maturityCategory struct {
	ID    string
	Title string
}

// maturityCategories is the fixed questionnaire catalog. Every category
// participates in the overall score; an unanswered category scores 0 so
// an incomplete questionnaire can only lower the result.
var maturityCategories = []maturityCategory{
	{ID: "governance", Title: "Governance und Verantwortlichkeiten"},
	{ID: "datenschutz", Title: "Datenschutz"},
	{ID: "informationssicherheit", Title: "Informationssicherheit"},
	{ID: "risikomanagement", Title: "Risikomanagement"},
	{ID: "notfallmanagement", Title: "Notfall- und Incident-Management"},
	{ID: "schulung", Title: "Schulung und Awareness"},
}

var gradeLabels = map[values.MaturityGrade]string{
	values.GradeA: "Sehr gut aufgestellt",
	values.GradeB: "Gut aufgestellt",
	values.GradeC: "Ausbaufähig",
	values.GradeD: "Deutliche Lücken",
	values.GradeE: "Kritische Lücken",
}

// ScoreMaturity computes per-category and overall percentages from the
// ordinal answers and derives the letter grade. Category scores average
// the category's answer levels against the maximum attainable level; the
// overall score averages category percentages, not raw levels.
func ScoreMaturity(answers []report.MaturityAnswer) report.MaturityResult {
	sums := make(map[string]int, len(maturityCategories))
	counts := make(map[string]int, len(maturityCategories))
	for _, a := range answers {
		level := a.Level
		if level < 0 {
			level = 0
		}
		if level > report.MaxMaturityLevel {
			level = report.MaxMaturityLevel
		}
		sums[a.Category] += level
		counts[a.Category]++
	}

	result := report.MaturityResult{
		Categories: make([]report.CategoryResult, 0, len(maturityCategories)),
	}

	var total float64
	for _, cat := range maturityCategories {
		var pct float64
		if n := counts[cat.ID]; n > 0 {
			avg := float64(sums[cat.ID]) / float64(n)
			pct = round1(avg / report.MaxMaturityLevel * 100)
		}
		result.Categories = append(result.Categories, report.CategoryResult{
			Category: cat.ID,
			Title:    cat.Title,
			Percent:  pct,
		})
		total += pct
	}

	result.OverallPercent = round1(total / float64(len(maturityCategories)))
	result.Grade = values.GradeFromPercent(result.OverallPercent)
	result.GradeLabel = gradeLabels[result.Grade]
	return result
}

// OverallMaturityLevel collapses the answers back onto the 0-3 scale for
// the cost estimator's maturity discount. No answers means level 0.
func OverallMaturityLevel(answers []report.MaturityAnswer) int {
	if len(answers) == 0 {
		return 0
	}
	var sum int
	for _, a := range answers {
		level := a.Level
		if level < 0 {
			level = 0
		}
		if level > report.MaxMaturityLevel {
			level = report.MaxMaturityLevel
		}
		sum += level
	}
	level := int(math.Round(float64(sum) / float64(len(answers))))
	if level > report.MaxMaturityLevel {
		level = report.MaxMaturityLevel
	}
	return level
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
