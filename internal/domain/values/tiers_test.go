package values

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelevanceTier_Ordering(t *testing.T) {
	tiers := []RelevanceTier{RelevanceNiedrig, RelevanceHoch, RelevanceMittel}

	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].Compare(tiers[j]) < 0
	})

	assert.Equal(t, []RelevanceTier{RelevanceHoch, RelevanceMittel, RelevanceNiedrig}, tiers)
}

func TestRelevanceTier_Weight(t *testing.T) {
	assert.Greater(t, RelevanceHoch.Weight(), RelevanceMittel.Weight())
	assert.Greater(t, RelevanceMittel.Weight(), RelevanceNiedrig.Weight())
}

func TestRiskLevel_Ordering(t *testing.T) {
	levels := []RiskLevel{RiskMittel, RiskKritisch, RiskHoch}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Compare(levels[j]) < 0
	})

	assert.Equal(t, []RiskLevel{RiskKritisch, RiskHoch, RiskMittel}, levels)
}

func TestCompanySize(t *testing.T) {
	tests := []struct {
		input   string
		want    CompanySize
		wantErr bool
	}{
		{input: "medium", want: SizeMedium},
		{input: " Large ", want: SizeLarge},
		{input: "micro", want: SizeMicro},
		{input: "enterprise", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			size, err := NewCompanySize(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, size)
		})
	}
}

func TestCompanySize_AtLeast(t *testing.T) {
	assert.True(t, SizeLarge.AtLeast(SizeMedium))
	assert.True(t, SizeMedium.AtLeast(SizeMedium))
	assert.False(t, SizeSmall.AtLeast(SizeMedium))
	assert.False(t, SizeMicro.AtLeast(SizeSmall))
}

func TestGradeFromPercent_Boundaries(t *testing.T) {
	tests := []struct {
		pct  float64
		want MaturityGrade
	}{
		{pct: 0, want: GradeE},
		{pct: 19.9, want: GradeE},
		{pct: 20, want: GradeD},
		{pct: 39.9, want: GradeD},
		{pct: 40, want: GradeC},
		{pct: 59.9, want: GradeC},
		{pct: 60, want: GradeB},
		{pct: 79, want: GradeB},
		{pct: 80, want: GradeA},
		{pct: 81, want: GradeA},
		{pct: 100, want: GradeA},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFromPercent(tt.pct), "pct=%v", tt.pct)
	}
}

func TestGradeFromPercent_Monotonic(t *testing.T) {
	gradeOrd := map[MaturityGrade]int{GradeE: 0, GradeD: 1, GradeC: 2, GradeB: 3, GradeA: 4}

	prev := GradeFromPercent(0)
	for pct := 1; pct <= 100; pct++ {
		cur := GradeFromPercent(float64(pct))
		assert.GreaterOrEqual(t, gradeOrd[cur], gradeOrd[prev], "grade regressed at %d%%", pct)
		prev = cur
	}
}
