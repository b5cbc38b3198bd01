package reportengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echub/compliance-hub-backend/internal/domain/report"
	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

func statusOf(t *testing.T, items []report.ChecklistItemStatus, id string) report.ItemStatus {
	t.Helper()
	for _, item := range items {
		if item.ItemID == id {
			return item.Status
		}
	}
	require.Failf(t, "item missing", "item %q not in checklist", id)
	return ""
}

func TestChecklistStatusesDefaultsUnchecked(t *testing.T) {
	regs := []report.EvaluatedRegulation{evaluated("nis2", values.RelevanceHoch)}
	out := ChecklistStatuses(nil, regs)

	require.Contains(t, out, "nis2")
	require.Len(t, out["nis2"], 5)
	for _, item := range out["nis2"] {
		assert.Equal(t, report.StatusUnchecked, item.Status)
		assert.NotEmpty(t, item.Text)
	}
}

func TestChecklistStatusesUpgrades(t *testing.T) {
	regs := []report.EvaluatedRegulation{evaluated("dsgvo", values.RelevanceHoch)}

	partial := ChecklistStatuses([]report.MaturityAnswer{
		{Category: "datenschutz", Level: 2},
	}, regs)
	assert.Equal(t, report.StatusPartial, statusOf(t, partial["dsgvo"], "dsgvo-2"))
	assert.Equal(t, report.StatusPartial, statusOf(t, partial["dsgvo"], "dsgvo-3"))

	compliant := ChecklistStatuses([]report.MaturityAnswer{
		{Category: "datenschutz", Level: 3},
	}, regs)
	assert.Equal(t, report.StatusCompliant, statusOf(t, compliant["dsgvo"], "dsgvo-2"))
}

func TestChecklistStatusesLevelOneStaysUnchecked(t *testing.T) {
	regs := []report.EvaluatedRegulation{evaluated("dsgvo", values.RelevanceHoch)}
	out := ChecklistStatuses([]report.MaturityAnswer{
		{Category: "datenschutz", Level: 1},
	}, regs)

	for _, item := range out["dsgvo"] {
		assert.Equal(t, report.StatusUnchecked, item.Status)
	}
}

func TestChecklistStatusesUnmappedItemsStayUnchecked(t *testing.T) {
	// dora-5 (exit strategies) is not reachable from any maturity category
	regs := []report.EvaluatedRegulation{evaluated("dora", values.RelevanceHoch)}
	out := ChecklistStatuses(fullAnswers(3), regs)

	assert.Equal(t, report.StatusUnchecked, statusOf(t, out["dora"], "dora-5"))
	assert.Equal(t, report.StatusCompliant, statusOf(t, out["dora"], "dora-1"))
}

func TestChecklistStatusesBestLevelWins(t *testing.T) {
	// nis2-5 is reachable from governance and schulung; the higher answer wins
	regs := []report.EvaluatedRegulation{evaluated("nis2", values.RelevanceHoch)}
	out := ChecklistStatuses([]report.MaturityAnswer{
		{Category: "governance", Level: 2},
		{Category: "schulung", Level: 3},
	}, regs)

	assert.Equal(t, report.StatusCompliant, statusOf(t, out["nis2"], "nis2-5"))
}

func TestChecklistStatusesOnlyRelevantRegulations(t *testing.T) {
	regs := []report.EvaluatedRegulation{
		evaluated("nis2", values.RelevanceNiedrig),
		evaluated("dsgvo", values.RelevanceMittel),
		evaluated("eprivacy", values.RelevanceMittel), // no checklist exists
	}
	out := ChecklistStatuses(nil, regs)

	assert.NotContains(t, out, "nis2")
	assert.Contains(t, out, "dsgvo")
	assert.NotContains(t, out, "eprivacy")
}

func TestChecklistIDsResolve(t *testing.T) {
	// every item id referenced by the maturity mapping must exist
	known := make(map[string]bool)
	for _, items := range checklists {
		for _, item := range items {
			known[item.ID] = true
		}
	}
	for category, perReg := range maturityImpact {
		for reg, ids := range perReg {
			for _, id := range ids {
				assert.True(t, known[id], "category %s maps %s to unknown item %s", category, reg, id)
			}
		}
	}
}
