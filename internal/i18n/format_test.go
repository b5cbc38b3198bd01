package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		amount int64
		want   string
	}{
		{"de billions", "de", 2_000_000_000, "2 Mrd. €"},
		{"de millions", "de", 20_000_000, "20 Mio. €"},
		{"de fractional millions", "de", 1_500_000, "1,5 Mio. €"},
		{"de thousands", "de", 750_000, "750 Tsd. €"},
		{"de below thousand", "de", 500, "500 €"},
		{"en billions", "en", 2_000_000_000, "€2B"},
		{"en millions", "en", 20_000_000, "€20M"},
		{"en fractional millions", "en", 1_500_000, "€1.5M"},
		{"en thousands", "en", 750_000, "€750k"},
		{"en below thousand", "en", 500, "€500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(tt.locale)
			assert.Equal(t, tt.want, f.FormatMoney(values.Euros(tt.amount)))
		})
	}
}

func TestFormatMoneyThresholdBoundaries(t *testing.T) {
	de := NewFormatter("de")

	// exactly at a threshold switches to the abbreviated unit
	assert.Equal(t, "1 Tsd. €", de.FormatMoney(values.Euros(1_000)))
	assert.Equal(t, "1 Mio. €", de.FormatMoney(values.Euros(1_000_000)))
	assert.Equal(t, "1 Mrd. €", de.FormatMoney(values.Euros(1_000_000_000)))
	assert.Equal(t, "999 €", de.FormatMoney(values.Euros(999)))
}

func TestFormatMoneyRange(t *testing.T) {
	de := NewFormatter("de")
	got := de.FormatMoneyRange(values.Euros(31_000), values.Euros(73_000))
	assert.Equal(t, "31 Tsd. € – 73 Tsd. €", got)

	en := NewFormatter("en")
	assert.Equal(t, "€31k – €73k", en.FormatMoneyRange(values.Euros(31_000), values.Euros(73_000)))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "45 %", NewFormatter("de").FormatPercent(45))
	assert.Equal(t, "33,3 %", NewFormatter("de").FormatPercent(33.3))
	assert.Equal(t, "45%", NewFormatter("en").FormatPercent(45))
	assert.Equal(t, "33.3%", NewFormatter("en").FormatPercent(33.3))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1.234.567", NewFormatter("de").FormatNumber(1_234_567))
	assert.Equal(t, "1,234,567", NewFormatter("en").FormatNumber(1_234_567))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.January, 17, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "17. Januar 2025", NewFormatter("de").FormatDate(d))
	assert.Equal(t, "January 17, 2025", NewFormatter("en").FormatDate(d))
}

func TestNewFormatterUnparseableLocale(t *testing.T) {
	f := NewFormatter("not a locale!")
	// falls back to German conventions
	assert.Equal(t, "45 %", f.FormatPercent(45))
}
