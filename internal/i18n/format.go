package i18n

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

// Formatter renders numbers, money amounts, percentages and dates per
// locale. The fine-exposure formatter and the generic currency formatter
// share this one implementation so abbreviation thresholds never drift.
type Formatter struct {
	locale  string
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter creates a formatter for the locale tag, defaulting to
// German for anything unparseable.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		locale = LocaleDE
		tag = language.German
	}
	return &Formatter{
		locale:  locale,
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

// FormatNumber renders an integer with the locale's grouping separators.
func (f *Formatter) FormatNumber(v int64) string {
	return f.printer.Sprint(number.Decimal(v))
}

// Money abbreviation thresholds, shared by all money rendering.
const (
	billion  = 1_000_000_000
	million  = 1_000_000
	thousand = 1_000
)

// FormatMoney renders a money amount with locale conventions, collapsing
// to abbreviated forms above fixed magnitude thresholds.
func (f *Formatter) FormatMoney(m values.Money) string {
	amount := m.Float64()
	abs := amount
	if abs < 0 {
		abs = -abs
	}

	german := !strings.HasPrefix(f.locale, LocaleEN)

	var scaled float64
	var unit string
	switch {
	case abs >= billion:
		scaled = amount / billion
		if german {
			unit = "Mrd."
		} else {
			unit = "B"
		}
	case abs >= million:
		scaled = amount / million
		if german {
			unit = "Mio."
		} else {
			unit = "M"
		}
	case abs >= thousand:
		scaled = amount / thousand
		if german {
			unit = "Tsd."
		} else {
			unit = "k"
		}
	default:
		if german {
			return f.printer.Sprint(number.Decimal(amount)) + " €"
		}
		return "€" + f.printer.Sprint(number.Decimal(amount))
	}

	digits := trimScaled(f.printer.Sprint(number.Decimal(scaled, number.MaxFractionDigits(1))))
	if german {
		return digits + " " + unit + " €"
	}
	return "€" + digits + unit
}

// FormatMoneyRange renders "min – max" using full money formatting for
// both ends.
func (f *Formatter) FormatMoneyRange(min, max values.Money) string {
	return f.FormatMoney(min) + " – " + f.FormatMoney(max)
}

// FormatPercent renders a percentage. German typography separates the
// sign with a narrow space; we use a regular space.
func (f *Formatter) FormatPercent(pct float64) string {
	digits := trimScaled(f.printer.Sprint(number.Decimal(pct, number.MaxFractionDigits(1))))
	if strings.HasPrefix(f.locale, LocaleEN) {
		return digits + "%"
	}
	return digits + " %"
}

var monthNamesDE = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

var monthNamesEN = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// FormatDate renders a calendar date with the locale's month names
// ("17. Januar 2025" / "January 17, 2025").
func (f *Formatter) FormatDate(t time.Time) string {
	if strings.HasPrefix(f.locale, LocaleEN) {
		return fmt.Sprintf("%s %d, %d", monthNamesEN[t.Month()-1], t.Day(), t.Year())
	}
	return fmt.Sprintf("%d. %s %d", t.Day(), monthNamesDE[t.Month()-1], t.Year())
}

// trimScaled drops a trailing ",0" / ".0" fraction left over from
// one-decimal abbreviation.
func trimScaled(s string) string {
	s = strings.TrimSuffix(s, ",0")
	s = strings.TrimSuffix(s, ".0")
	return s
}
