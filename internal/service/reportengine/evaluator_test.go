package reportengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echub/compliance-hub-backend/internal/domain/report"
	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

func findRegulation(t *testing.T, regs []report.EvaluatedRegulation, key string) report.EvaluatedRegulation {
	t.Helper()
	for _, r := range regs {
		if r.Key == key {
			return r
		}
	}
	require.Failf(t, "regulation missing", "key %q not in evaluation output", key)
	return report.EvaluatedRegulation{}
}

func TestEvaluateIsTotal(t *testing.T) {
	// even a completely empty profile yields one result per table entry
	regs := Evaluate(report.CompanyProfile{})

	require.Len(t, regs, RegulationCount())
	seen := make(map[string]bool, len(regs))
	for _, r := range regs {
		assert.False(t, seen[r.Key], "duplicate key %q", r.Key)
		seen[r.Key] = true
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Reason, "reason must never be empty for %q", r.Key)
		assert.NotEmpty(t, r.ReasonKey)
		assert.Contains(t, []values.RelevanceTier{
			values.RelevanceHoch, values.RelevanceMittel, values.RelevanceNiedrig,
		}, r.Relevance, "tier for %q", r.Key)
	}
}

func TestEvaluateOrderIsStable(t *testing.T) {
	a := Evaluate(report.CompanyProfile{Size: values.SizeMedium, Sectors: []string{report.SectorIT}})
	b := Evaluate(report.CompanyProfile{Size: values.SizeMedium, Sectors: []string{report.SectorIT}})

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Key, b[i].Key)
		assert.Equal(t, a[i].Relevance, b[i].Relevance)
	}
}

func TestEvaluateNIS2Precedence(t *testing.T) {
	tests := []struct {
		name       string
		profile    report.CompanyProfile
		wantTier   values.RelevanceTier
		wantReason string
	}{
		{
			name: "critical infrastructure wins regardless of size",
			profile: report.CompanyProfile{
				Size:       values.SizeMicro,
				Activities: []string{report.ActivityCriticalInfra},
			},
			wantTier:   values.RelevanceHoch,
			wantReason: "reason.nis2.kritis",
		},
		{
			name: "covered sector and large size",
			profile: report.CompanyProfile{
				Size:    values.SizeLarge,
				Sectors: []string{report.SectorEnergy},
			},
			wantTier:   values.RelevanceHoch,
			wantReason: "reason.nis2.essential",
		},
		{
			name: "covered sector and medium size",
			profile: report.CompanyProfile{
				Size:    values.SizeMedium,
				Sectors: []string{report.SectorIT},
			},
			wantTier:   values.RelevanceMittel,
			wantReason: "reason.nis2.important",
		},
		{
			name: "covered sector below threshold",
			profile: report.CompanyProfile{
				Size:    values.SizeSmall,
				Sectors: []string{report.SectorHealth},
			},
			wantTier:   values.RelevanceNiedrig,
			wantReason: "reason.nis2.small",
		},
		{
			name: "no covered sector",
			profile: report.CompanyProfile{
				Size:    values.SizeLarge,
				Sectors: []string{report.SectorRetail},
			},
			wantTier:   values.RelevanceNiedrig,
			wantReason: "reason.nis2.nosector",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nis2 := findRegulation(t, Evaluate(tt.profile), "nis2")
			assert.Equal(t, tt.wantTier, nis2.Relevance)
			assert.Equal(t, tt.wantReason, nis2.ReasonKey)
		})
	}
}

func TestEvaluateGDPRTiers(t *testing.T) {
	sensitive := findRegulation(t, Evaluate(report.CompanyProfile{
		DataTypes: []string{report.DataHealth},
	}), "dsgvo")
	assert.Equal(t, values.RelevanceHoch, sensitive.Relevance)
	assert.Equal(t, "reason.dsgvo.sensitive", sensitive.ReasonKey)

	personal := findRegulation(t, Evaluate(report.CompanyProfile{
		DataTypes: []string{report.DataPersonal},
	}), "dsgvo")
	assert.Equal(t, values.RelevanceHoch, personal.Relevance)

	// GDPR never drops below mittel
	none := findRegulation(t, Evaluate(report.CompanyProfile{}), "dsgvo")
	assert.Equal(t, values.RelevanceMittel, none.Relevance)
}

func TestEvaluateTagMatchingIsCaseInsensitive(t *testing.T) {
	regs := Evaluate(report.CompanyProfile{
		Size:    values.SizeMedium,
		Sectors: []string{"  IT  "},
	})
	assert.Equal(t, values.RelevanceMittel, findRegulation(t, regs, "nis2").Relevance)
}

func TestEvaluateBFSGMicroExemption(t *testing.T) {
	micro := findRegulation(t, Evaluate(report.CompanyProfile{
		Size:       values.SizeMicro,
		Activities: []string{report.ActivityEcommerce},
	}), "bfsg")
	assert.Equal(t, values.RelevanceNiedrig, micro.Relevance)
	assert.Equal(t, "reason.bfsg.micro", micro.ReasonKey)

	small := findRegulation(t, Evaluate(report.CompanyProfile{
		Size:       values.SizeSmall,
		Activities: []string{report.ActivityEcommerce},
	}), "bfsg")
	assert.Equal(t, values.RelevanceHoch, small.Relevance)
}

func TestEvaluateEPrivacyNeverNiedrig(t *testing.T) {
	// a company website is assumed, so ePrivacy is always at least mittel
	ep := findRegulation(t, Evaluate(report.CompanyProfile{}), "eprivacy")
	assert.Equal(t, values.RelevanceMittel, ep.Relevance)

	shop := findRegulation(t, Evaluate(report.CompanyProfile{
		Activities: []string{report.ActivityEcommerce},
	}), "eprivacy")
	assert.Equal(t, values.RelevanceHoch, shop.Relevance)
}
