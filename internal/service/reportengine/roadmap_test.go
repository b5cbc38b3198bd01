package reportengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echub/compliance-hub-backend/internal/domain/report"
	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

func actionsByKey(items []report.RoadmapItem, key string) []report.RoadmapItem {
	var out []report.RoadmapItem
	for _, item := range items {
		if item.ActionKey == key {
			out = append(out, item)
		}
	}
	return out
}

func TestBuildRoadmapAppointOwnerThreshold(t *testing.T) {
	regs := []report.EvaluatedRegulation{evaluated("dsgvo", values.RelevanceHoch)}

	low := BuildRoadmap(regs, nil, 39)
	require.Len(t, actionsByKey(low, "roadmap.action.appoint"), 1)
	appoint := actionsByKey(low, "roadmap.action.appoint")[0]
	assert.Equal(t, report.PhaseImmediate, appoint.Phase)
	assert.Equal(t, roleManagement, appoint.Role)

	high := BuildRoadmap(regs, nil, 40)
	assert.Empty(t, actionsByKey(high, "roadmap.action.appoint"), "threshold is exclusive")
}

func TestBuildRoadmapUrgentDeadline(t *testing.T) {
	regs := []report.EvaluatedRegulation{evaluated("dora", values.RelevanceHoch)}
	deadline := &report.Deadline{
		Regulation: "dora", Title: "DORA gilt", TitleKey: "deadline.dora.anwendung", DaysLeft: 45,
	}

	items := BuildRoadmap(regs, deadline, 80)
	urgent := actionsByKey(items, "roadmap.action.deadline")
	require.Len(t, urgent, 1)
	assert.Equal(t, report.PhaseImmediate, urgent[0].Phase)
	assert.Equal(t, 45, urgent[0].Days)
	assert.Contains(t, urgent[0].Action, "DORA gilt")
	assert.Contains(t, urgent[0].Action, "45")

	// 90 days or more is not urgent
	farOff := BuildRoadmap(regs, &report.Deadline{DaysLeft: 90}, 80)
	assert.Empty(t, actionsByKey(farOff, "roadmap.action.deadline"))

	// overdue deadlines are not urgent either
	overdue := BuildRoadmap(regs, &report.Deadline{DaysLeft: -3}, 80)
	assert.Empty(t, actionsByKey(overdue, "roadmap.action.deadline"))
}

func TestBuildRoadmapGapAnalysesCapped(t *testing.T) {
	regs := []report.EvaluatedRegulation{
		evaluated("dsgvo", values.RelevanceHoch),
		evaluated("nis2", values.RelevanceHoch),
		evaluated("ai_act", values.RelevanceHoch),
	}

	items := BuildRoadmap(regs, nil, 80)
	gaps := actionsByKey(items, "roadmap.action.gap")
	require.Len(t, gaps, 2, "gap analyses are capped at two")
	assert.Equal(t, "dsgvo", gaps[0].Regulation)
	assert.Equal(t, "nis2", gaps[1].Regulation)

	// every hoch regulation still gets a full implementation item
	assert.Len(t, actionsByKey(items, "roadmap.action.implement"), 3)
}

func TestBuildRoadmapTrainingThreshold(t *testing.T) {
	regs := []report.EvaluatedRegulation{evaluated("dsgvo", values.RelevanceHoch)}

	low := BuildRoadmap(regs, nil, 59)
	require.Len(t, actionsByKey(low, "roadmap.action.training"), 1)
	assert.Equal(t, report.PhaseShortTerm, actionsByKey(low, "roadmap.action.training")[0].Phase)

	high := BuildRoadmap(regs, nil, 60)
	assert.Empty(t, actionsByKey(high, "roadmap.action.training"))
}

func TestBuildRoadmapMediumTermPlansCapped(t *testing.T) {
	regs := []report.EvaluatedRegulation{
		evaluated("csrd", values.RelevanceMittel),
		evaluated("data_act", values.RelevanceMittel),
		evaluated("pld", values.RelevanceMittel),
		evaluated("dsa", values.RelevanceMittel),
	}

	items := BuildRoadmap(regs, nil, 80)
	plans := actionsByKey(items, "roadmap.action.plan")
	require.Len(t, plans, 3)
	for _, p := range plans {
		assert.Equal(t, report.PhaseMediumTerm, p.Phase)
	}
}

func TestBuildRoadmapReviewAlwaysPresent(t *testing.T) {
	// even an empty evaluation keeps the standing review
	items := BuildRoadmap(nil, nil, 100)
	reviews := actionsByKey(items, "roadmap.action.review")
	require.Len(t, reviews, 1)
	assert.Equal(t, report.PhaseMediumTerm, reviews[0].Phase)
	assert.Equal(t, roleCompliance, reviews[0].Role)
}

func TestBuildRoadmapPhasesOrderedAndLabeled(t *testing.T) {
	regs := []report.EvaluatedRegulation{
		evaluated("dsgvo", values.RelevanceHoch),
		evaluated("csrd", values.RelevanceMittel),
	}
	items := BuildRoadmap(regs, nil, 10)

	lastPhase := 0
	for _, item := range items {
		assert.GreaterOrEqual(t, item.Phase, lastPhase, "items are grouped by phase")
		lastPhase = item.Phase
		assert.NotEmpty(t, item.PhaseLabel)
		assert.NotEmpty(t, item.Color)
		assert.NotEmpty(t, item.Action)
		assert.NotEmpty(t, item.Role)
	}
}
