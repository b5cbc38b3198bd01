package reportengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

func TestCalculateFineExposureHigherOfTwo(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		revenue  int64
		wantFine int64
		wantKey  string
	}{
		{
			// 2% of 1B = 20M beats the fixed 10M cap
			name:     "percent wins at high revenue",
			key:      "nis2",
			revenue:  1_000_000_000,
			wantFine: 20_000_000,
			wantKey:  "fine.basis.percent",
		},
		{
			// 2% of 100M = 2M, the fixed 10M cap wins
			name:     "fixed cap wins at low revenue",
			key:      "nis2",
			revenue:  100_000_000,
			wantFine: 10_000_000,
			wantKey:  "fine.basis.fixed_higher",
		},
		{
			// tie: percent must be strictly greater to win
			name:     "tie keeps fixed cap",
			key:      "nis2",
			revenue:  500_000_000,
			wantFine: 10_000_000,
			wantKey:  "fine.basis.fixed_higher",
		},
		{
			name:     "gdpr four percent",
			key:      "dsgvo",
			revenue:  1_000_000_000,
			wantFine: 40_000_000,
			wantKey:  "fine.basis.percent",
		},
		{
			// dsa has no fixed cap, revenue share always applies
			name:     "percent only regime",
			key:      "dsa",
			revenue:  10_000_000,
			wantFine: 600_000,
			wantKey:  "fine.basis.percent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fine, ok := CalculateFineExposure(tt.key, values.Euros(tt.revenue))
			require.True(t, ok)
			assert.Equal(t, tt.wantFine, fine.MaxFine.IntPart())
			assert.Equal(t, tt.wantKey, fine.BasisKey)
			assert.NotEmpty(t, fine.Basis)
			assert.NotEmpty(t, fine.Name)
		})
	}
}

func TestCalculateFineExposureFixedOnly(t *testing.T) {
	// eprivacy ignores revenue entirely
	small, ok := CalculateFineExposure("eprivacy", values.Euros(10_000))
	require.True(t, ok)
	large, ok := CalculateFineExposure("eprivacy", values.Euros(5_000_000_000))
	require.True(t, ok)

	assert.Equal(t, int64(300_000), small.MaxFine.IntPart())
	assert.True(t, small.MaxFine.Equal(large.MaxFine))
	assert.Equal(t, "fine.basis.fixed", small.BasisKey)
}

func TestCalculateFineExposureNoRule(t *testing.T) {
	// eidas and pld deliberately carry no fine rule
	_, ok := CalculateFineExposure("eidas", values.Euros(1_000_000))
	assert.False(t, ok)
	_, ok = CalculateFineExposure("pld", values.Euros(1_000_000))
	assert.False(t, ok)
	_, ok = CalculateFineExposure("nonexistent", values.Euros(1_000_000))
	assert.False(t, ok)
}

func TestCalculateFineExposureNonPositiveRevenue(t *testing.T) {
	_, ok := CalculateFineExposure("dsgvo", values.Euros(0))
	assert.False(t, ok, "zero revenue must not produce a fine estimate")

	_, ok = CalculateFineExposure("dsgvo", values.Euros(-100))
	assert.False(t, ok)
}
