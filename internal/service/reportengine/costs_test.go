package reportengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

func TestEstimateCostsBreakdownAddsUp(t *testing.T) {
	sizes := []values.CompanySize{values.SizeMicro, values.SizeSmall, values.SizeMedium, values.SizeLarge}
	keys := []string{"nis2", "dsgvo", "ai_act", "dora", "cra", "csrd", "eprivacy", "bfsg", "hinschg", "gpsr"}

	for _, size := range sizes {
		for level := 0; level <= 3; level++ {
			costs := EstimateCosts(keys, size, level)
			require.Len(t, costs, len(keys))

			for _, cost := range costs {
				min := values.Zero(values.EUR)
				max := values.Zero(values.EUR)
				for _, item := range cost.Breakdown {
					// every line item is rounded to full hundreds
					assert.Zero(t, item.Min.IntPart()%100, "%s/%s min", cost.Key, item.Label)
					assert.Zero(t, item.Max.IntPart()%100, "%s/%s max", cost.Key, item.Label)
					assert.False(t, item.Min.GreaterThan(item.Max))
					min = min.Add(item.Min)
					max = max.Add(item.Max)
				}
				assert.True(t, cost.Min.Equal(min), "%s min total %s != breakdown sum %s", cost.Key, cost.Min, min)
				assert.True(t, cost.Max.Equal(max), "%s max total %s != breakdown sum %s", cost.Key, cost.Max, max)
			}
		}
	}
}

func TestEstimateCostsScaling(t *testing.T) {
	// nis2 gap analysis: base min 8000. micro = x0.6, large = x2.5.
	micro := EstimateCosts([]string{"nis2"}, values.SizeMicro, 0)
	large := EstimateCosts([]string{"nis2"}, values.SizeLarge, 0)
	require.Len(t, micro, 1)
	require.Len(t, large, 1)

	assert.Equal(t, int64(4800), micro[0].Breakdown[0].Min.IntPart())
	assert.Equal(t, int64(20000), large[0].Breakdown[0].Min.IntPart())
	assert.True(t, large[0].Min.GreaterThan(micro[0].Min))
}

func TestEstimateCostsMaturityDiscount(t *testing.T) {
	base := EstimateCosts([]string{"dsgvo"}, values.SizeSmall, 0)
	mature := EstimateCosts([]string{"dsgvo"}, values.SizeSmall, 3)
	require.Len(t, base, 1)
	require.Len(t, mature, 1)

	// level 3 discounts to 55% of the base estimate
	assert.True(t, base[0].Min.GreaterThan(mature[0].Min))
	assert.Equal(t, int64(13000), base[0].Min.IntPart())
	// 3000*0.55=1650->1700, 5000*0.55=2750->2800, 2000*0.55=1100->1100, 3000*0.55->1700
	assert.Equal(t, int64(7300), mature[0].Min.IntPart())
}

func TestEstimateCostsClampsMaturityLevel(t *testing.T) {
	low := EstimateCosts([]string{"dsgvo"}, values.SizeSmall, -5)
	high := EstimateCosts([]string{"dsgvo"}, values.SizeSmall, 42)
	want0 := EstimateCosts([]string{"dsgvo"}, values.SizeSmall, 0)
	want3 := EstimateCosts([]string{"dsgvo"}, values.SizeSmall, 3)

	assert.True(t, low[0].Min.Equal(want0[0].Min))
	assert.True(t, high[0].Min.Equal(want3[0].Min))
}

func TestEstimateCostsUnknownKeysSkipped(t *testing.T) {
	// data_act and eidas carry no cost table and must be skipped, not zeroed
	costs := EstimateCosts([]string{"data_act", "nis2", "eidas", "pld", "dsa"}, values.SizeSmall, 0)
	require.Len(t, costs, 1)
	assert.Equal(t, "nis2", costs[0].Key)
}

func TestEstimateCostsEmptyInput(t *testing.T) {
	assert.Empty(t, EstimateCosts(nil, values.SizeSmall, 0))
	assert.Empty(t, EstimateCosts([]string{}, values.SizeLarge, 2))
}

func TestEstimateCostsUnknownSizeUsesSmallFactor(t *testing.T) {
	unknown := EstimateCosts([]string{"dsgvo"}, values.CompanySize("weird"), 0)
	small := EstimateCosts([]string{"dsgvo"}, values.SizeSmall, 0)
	require.Len(t, unknown, 1)
	assert.True(t, unknown[0].Min.Equal(small[0].Min))
	assert.True(t, unknown[0].Max.Equal(small[0].Max))
}
