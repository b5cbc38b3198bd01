package reportengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echub/compliance-hub-backend/internal/domain/report"
	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

func fineFor(key string, amount int64) report.FineExposure {
	return report.FineExposure{Key: key, Name: key, MaxFine: values.Euros(amount)}
}

func TestCriticalRisksLevels(t *testing.T) {
	regs := []report.EvaluatedRegulation{
		evaluated("dsgvo", values.RelevanceHoch),
		evaluated("nis2", values.RelevanceHoch),
		evaluated("hinschg", values.RelevanceHoch),
	}
	fines := []report.FineExposure{
		fineFor("dsgvo", 20_000_000),
		fineFor("nis2", 10_000_000),
		fineFor("hinschg", 50_000),
	}

	// below 30% maturity, fines at 10M or more are kritisch
	risks := CriticalRisks(regs, fines, 20)
	require.Len(t, risks, 3)
	assert.Equal(t, values.RiskKritisch, risks[0].Level)
	assert.Equal(t, "dsgvo", risks[0].Key, "higher fine sorts first within level")
	assert.Equal(t, values.RiskKritisch, risks[1].Level)
	assert.Equal(t, values.RiskMittel, risks[2].Level)

	// at 30% the kritisch condition no longer holds
	risks = CriticalRisks(regs, fines, 30)
	assert.Equal(t, values.RiskHoch, risks[0].Level)
}

func TestCriticalRisksOnlyHochRelevance(t *testing.T) {
	regs := []report.EvaluatedRegulation{
		evaluated("dsgvo", values.RelevanceHoch),
		evaluated("csrd", values.RelevanceMittel),
		evaluated("dsa", values.RelevanceNiedrig),
	}
	risks := CriticalRisks(regs, []report.FineExposure{fineFor("dsgvo", 20_000_000)}, 50)

	require.Len(t, risks, 1)
	assert.Equal(t, "dsgvo", risks[0].Key)
}

func TestCriticalRisksMissingFineDefaultsMittel(t *testing.T) {
	regs := []report.EvaluatedRegulation{evaluated("eidas", values.RelevanceHoch)}
	risks := CriticalRisks(regs, nil, 10)

	require.Len(t, risks, 1)
	assert.Equal(t, values.RiskMittel, risks[0].Level)
	assert.False(t, risks[0].MaxFine.IsPositive())
	assert.NotEmpty(t, risks[0].Description)
	assert.NotEmpty(t, risks[0].Color)
}

func TestCriticalRisksCappedAtFive(t *testing.T) {
	keys := []string{"dsgvo", "nis2", "ai_act", "dora", "cra", "csrd", "gpsr"}
	regs := make([]report.EvaluatedRegulation, 0, len(keys))
	fines := make([]report.FineExposure, 0, len(keys))
	for i, key := range keys {
		regs = append(regs, evaluated(key, values.RelevanceHoch))
		fines = append(fines, fineFor(key, int64(30-i)*1_000_000))
	}

	risks := CriticalRisks(regs, fines, 10)
	require.Len(t, risks, 5)
	// the two smallest fines fell off the end
	for _, r := range risks {
		assert.NotEqual(t, "csrd", r.Key)
		assert.NotEqual(t, "gpsr", r.Key)
	}
}

func TestCriticalRisksFineThresholdBoundary(t *testing.T) {
	regs := []report.EvaluatedRegulation{evaluated("cra", values.RelevanceHoch)}

	at := CriticalRisks(regs, []report.FineExposure{fineFor("cra", 5_000_000)}, 50)
	require.Len(t, at, 1)
	assert.Equal(t, values.RiskHoch, at[0].Level, "threshold is inclusive")

	below := CriticalRisks(regs, []report.FineExposure{fineFor("cra", 4_999_999)}, 50)
	assert.Equal(t, values.RiskMittel, below[0].Level)
}
