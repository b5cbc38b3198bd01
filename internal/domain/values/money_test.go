package values

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		currency string
		wantErr  bool
	}{
		{
			name:     "valid EUR amount",
			amount:   decimal.NewFromInt(20000000),
			currency: EUR,
			wantErr:  false,
		},
		{
			name:     "zero amount",
			amount:   decimal.Zero,
			currency: EUR,
			wantErr:  false,
		},
		{
			name:     "negative amount",
			amount:   decimal.NewFromInt(-500),
			currency: EUR,
			wantErr:  false,
		},
		{
			name:     "empty currency",
			amount:   decimal.NewFromInt(100),
			currency: "",
			wantErr:  true,
		},
		{
			name:     "unsupported currency",
			amount:   decimal.NewFromInt(100),
			currency: "XXX",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			money, err := NewMoney(tt.amount, tt.currency)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, money.Amount().Equal(tt.amount))
			assert.Equal(t, tt.currency, money.Currency())
		})
	}
}

func TestMoney_RoundToHundreds(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{name: "already round", amount: "8000", expected: "8000"},
		{name: "rounds down", amount: "8049", expected: "8000"},
		{name: "rounds up", amount: "8050", expected: "8100"},
		{name: "fractional", amount: "1275.5", expected: "1300"},
		{name: "zero", amount: "0", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMoneyFromString(tt.amount, EUR)
			require.NoError(t, err)

			rounded := m.RoundToHundreds()
			assert.Equal(t, tt.expected, rounded.Amount().String())
		})
	}
}

func TestMoney_Percent(t *testing.T) {
	revenue := Euros(1000000000)
	fine := revenue.Percent(decimal.NewFromInt(2))
	assert.Equal(t, int64(20000000), fine.IntPart())
}

func TestMoney_Max(t *testing.T) {
	fixed := Euros(10000000)

	higher := fixed.Max(Euros(20000000))
	assert.Equal(t, int64(20000000), higher.IntPart())

	same := fixed.Max(Euros(2000000))
	assert.Equal(t, int64(10000000), same.IntPart())
}

func TestMoney_Add(t *testing.T) {
	sum := Euros(8000).Add(Euros(15000))
	assert.Equal(t, int64(23000), sum.IntPart())

	assert.Panics(t, func() {
		Euros(100).Add(MustNewMoney(decimal.NewFromInt(100), USD))
	})
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m := Euros(35000000)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equal(decoded))
}
