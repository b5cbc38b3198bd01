package reportengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echub/compliance-hub-backend/internal/domain/report"
	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

func fullAnswers(level int) []report.MaturityAnswer {
	answers := make([]report.MaturityAnswer, 0, len(maturityCategories))
	for _, cat := range maturityCategories {
		answers = append(answers, report.MaturityAnswer{Category: cat.ID, Level: level})
	}
	return answers
}

func TestScoreMaturityNoAnswers(t *testing.T) {
	result := ScoreMaturity(nil)

	require.Len(t, result.Categories, len(maturityCategories))
	for _, cat := range result.Categories {
		assert.Zero(t, cat.Percent)
		assert.NotEmpty(t, cat.Title)
	}
	assert.Zero(t, result.OverallPercent)
	assert.Equal(t, values.GradeE, result.Grade)
	assert.Equal(t, "Kritische Lücken", result.GradeLabel)
}

func TestScoreMaturityAllMax(t *testing.T) {
	result := ScoreMaturity(fullAnswers(report.MaxMaturityLevel))

	assert.Equal(t, float64(100), result.OverallPercent)
	assert.Equal(t, values.GradeA, result.Grade)
	for _, cat := range result.Categories {
		assert.Equal(t, float64(100), cat.Percent)
	}
}

func TestScoreMaturityUnansweredCategoryScoresZero(t *testing.T) {
	// five categories at max, one unanswered
	answers := fullAnswers(report.MaxMaturityLevel)[:len(maturityCategories)-1]
	result := ScoreMaturity(answers)

	last := result.Categories[len(result.Categories)-1]
	assert.Zero(t, last.Percent)
	// 5 * 100 / 6 = 83.3
	assert.InDelta(t, 83.3, result.OverallPercent, 0.05)
	assert.Equal(t, values.GradeA, result.Grade)
}

func TestScoreMaturityAveragesWithinCategory(t *testing.T) {
	answers := []report.MaturityAnswer{
		{Category: "governance", Level: 1},
		{Category: "governance", Level: 2},
	}
	result := ScoreMaturity(answers)

	// avg 1.5 of 3 = 50%
	assert.Equal(t, float64(50), result.Categories[0].Percent)
}

func TestScoreMaturityClampsLevels(t *testing.T) {
	answers := []report.MaturityAnswer{
		{Category: "governance", Level: 99},
		{Category: "datenschutz", Level: -4},
	}
	result := ScoreMaturity(answers)

	assert.Equal(t, float64(100), result.Categories[0].Percent)
	assert.Zero(t, result.Categories[1].Percent)
}

func TestScoreMaturityGradeBoundaries(t *testing.T) {
	tests := []struct {
		level int
		grade values.MaturityGrade
	}{
		{0, values.GradeE},
		{1, values.GradeC}, // 33.3%
		{2, values.GradeB}, // 66.7%
		{3, values.GradeA},
	}
	for _, tt := range tests {
		result := ScoreMaturity(fullAnswers(tt.level))
		assert.Equal(t, tt.grade, result.Grade, "uniform level %d", tt.level)
	}
}

func TestOverallMaturityLevel(t *testing.T) {
	assert.Equal(t, 0, OverallMaturityLevel(nil))
	assert.Equal(t, 3, OverallMaturityLevel(fullAnswers(3)))
	assert.Equal(t, 2, OverallMaturityLevel([]report.MaturityAnswer{
		{Category: "governance", Level: 1},
		{Category: "datenschutz", Level: 2},
		{Category: "schulung", Level: 2},
	})) // avg 1.67 rounds to 2
	assert.Equal(t, 3, OverallMaturityLevel([]report.MaturityAnswer{
		{Category: "governance", Level: 99},
	}))
}
