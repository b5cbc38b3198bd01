package reportengine

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echub/compliance-hub-backend/internal/domain/report"
	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

func evaluated(key string, tier values.RelevanceTier) report.EvaluatedRegulation {
	return report.EvaluatedRegulation{Key: key, Name: key, Relevance: tier}
}

func TestRelevantDeadlinesFiltersByRelevance(t *testing.T) {
	today := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	regs := []report.EvaluatedRegulation{
		evaluated("cra", values.RelevanceHoch),
		evaluated("eidas", values.RelevanceNiedrig),
	}

	deadlines := RelevantDeadlines(regs, today)
	require.NotEmpty(t, deadlines)
	for _, d := range deadlines {
		assert.Equal(t, "cra", d.Regulation, "niedrig regulations contribute no deadlines")
	}
}

func TestRelevantDeadlinesDropsOldEntries(t *testing.T) {
	// NIS2 transposition was 2024-10-17; more than a year later it is gone
	regs := []report.EvaluatedRegulation{evaluated("nis2", values.RelevanceHoch)}

	within := RelevantDeadlines(regs, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, within, 1)
	assert.Negative(t, within[0].DaysLeft)

	after := RelevantDeadlines(regs, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, after)
}

func TestRelevantDeadlinesSortedAscending(t *testing.T) {
	today := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	regs := []report.EvaluatedRegulation{
		evaluated("cra", values.RelevanceHoch),
		evaluated("ai_act", values.RelevanceHoch),
		evaluated("csrd", values.RelevanceMittel),
		evaluated("bfsg", values.RelevanceHoch),
	}

	deadlines := RelevantDeadlines(regs, today)
	require.NotEmpty(t, deadlines)
	assert.True(t, sort.SliceIsSorted(deadlines, func(i, j int) bool {
		return deadlines[i].DaysLeft < deadlines[j].DaysLeft
	}))
}

func TestRelevantDeadlinesDayCount(t *testing.T) {
	// DORA applies 2025-01-17
	regs := []report.EvaluatedRegulation{evaluated("dora", values.RelevanceHoch)}

	deadlines := RelevantDeadlines(regs, time.Date(2025, time.January, 7, 23, 59, 0, 0, time.UTC))
	require.Len(t, deadlines, 1)
	assert.Equal(t, 10, deadlines[0].DaysLeft, "time of day must not affect the count")
	assert.Equal(t, "deadline.dora.anwendung", deadlines[0].TitleKey)
	assert.NotEmpty(t, deadlines[0].Color)
}

func TestNextDeadline(t *testing.T) {
	deadlines := []report.Deadline{
		{Regulation: "nis2", DaysLeft: -100},
		{Regulation: "dora", DaysLeft: 14},
		{Regulation: "cra", DaysLeft: 200},
	}

	next := NextDeadline(deadlines)
	require.NotNil(t, next)
	assert.Equal(t, "dora", next.Regulation)

	assert.Nil(t, NextDeadline([]report.Deadline{{DaysLeft: -5}}))
	assert.Nil(t, NextDeadline(nil))
}

func TestNextDeadlineTodayCounts(t *testing.T) {
	next := NextDeadline([]report.Deadline{{Regulation: "bfsg", DaysLeft: 0}})
	require.NotNil(t, next)
	assert.Equal(t, "bfsg", next.Regulation)
}
