package reportengine

import (
	"sort"
	"time"

	"github.com/echub/compliance-hub-backend/internal/domain/report"
	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

// calendarEntry is one row of the static deadline calendar.
type calendarEntry struct {
	ID          string
	RegKey      string
	Date        time.Time
	Title       string
	Description string
}

func isoDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var deadlineCalendar = []calendarEntry{
	{
		ID: "deadline.nis2.umsetzung", RegKey: "nis2", Date: isoDate(2024, time.October, 17),
		Title:       "NIS2-Umsetzungsfrist",
		Description: "Frist zur Umsetzung der NIS2-Richtlinie in nationales Recht",
	},
	{
		ID: "deadline.gpsr.anwendung", RegKey: "gpsr", Date: isoDate(2024, time.December, 13),
		Title:       "GPSR gilt",
		Description: "Die Produktsicherheitsverordnung gilt unmittelbar",
	},
	{
		ID: "deadline.dora.anwendung", RegKey: "dora", Date: isoDate(2025, time.January, 17),
		Title:       "DORA gilt",
		Description: "Finanzunternehmen müssen die DORA-Anforderungen erfüllen",
	},
	{
		ID: "deadline.bfsg.inkrafttreten", RegKey: "bfsg", Date: isoDate(2025, time.June, 28),
		Title:       "BFSG tritt in Kraft",
		Description: "Barrierefreiheitsanforderungen für Produkte und Dienstleistungen",
	},
	{
		ID: "deadline.ai_act.gpai", RegKey: "ai_act", Date: isoDate(2025, time.August, 2),
		Title:       "AI Act: GPAI-Pflichten",
		Description: "Pflichten für Anbieter von KI-Modellen mit allgemeinem Verwendungszweck",
	},
	{
		ID: "deadline.data_act.anwendung", RegKey: "data_act", Date: isoDate(2025, time.September, 12),
		Title:       "Data Act gilt",
		Description: "Datenzugangs- und Wechselpflichten werden anwendbar",
	},
	{
		ID: "deadline.csrd.welle", RegKey: "csrd", Date: isoDate(2026, time.January, 1),
		Title:       "CSRD: nächste Berichtswelle",
		Description: "Berichtspflicht für das Geschäftsjahr 2025 großer Unternehmen",
	},
	{
		ID: "deadline.ai_act.hochrisiko", RegKey: "ai_act", Date: isoDate(2026, time.August, 2),
		Title:       "AI Act: Hochrisiko-Systeme",
		Description: "Volle Pflichten für Hochrisiko-KI-Systeme",
	},
	{
		ID: "deadline.cra.meldung", RegKey: "cra", Date: isoDate(2026, time.September, 11),
		Title:       "CRA: Meldepflichten",
		Description: "Meldepflichten für aktiv ausgenutzte Schwachstellen beginnen",
	},
	{
		ID: "deadline.eidas.wallet", RegKey: "eidas", Date: isoDate(2027, time.May, 1),
		Title:       "EUDI-Wallet: Akzeptanzpflichten",
		Description: "Verpflichtete Sektoren müssen die EUDI-Wallet akzeptieren",
	},
	{
		ID: "deadline.cra.anwendung", RegKey: "cra", Date: isoDate(2027, time.December, 11),
		Title:       "CRA: volle Anwendung",
		Description: "Der Cyber Resilience Act gilt vollständig",
	},
}

// displayWindowDays keeps recently passed deadlines visible; anything
// further in the past is no longer shown.
const displayWindowDays = 365

// RelevantDeadlines maps the evaluated regulations onto the static
// calendar. Only regulations above tier "niedrig" contribute; entries
// more than a year in the past are dropped; results are sorted ascending
// by signed day count, so the most urgent (or most recently overdue)
// entry comes first.
func RelevantDeadlines(regs []report.EvaluatedRegulation, today time.Time) []report.Deadline {
	relevant := make(map[string]bool, len(regs))
	for _, r := range regs {
		if r.Relevance != values.RelevanceNiedrig {
			relevant[r.Key] = true
		}
	}

	day := today.UTC().Truncate(24 * time.Hour)

	out := make([]report.Deadline, 0, len(deadlineCalendar))
	for _, entry := range deadlineCalendar {
		if !relevant[entry.RegKey] {
			continue
		}
		daysLeft := int(entry.Date.Sub(day).Hours() / 24)
		if daysLeft < -displayWindowDays {
			continue
		}
		out = append(out, report.Deadline{
			Regulation:  entry.RegKey,
			Date:        entry.Date,
			Title:       entry.Title,
			TitleKey:    entry.ID,
			Description: entry.Description,
			Color:       regulationIndex[entry.RegKey].Color,
			DaysLeft:    daysLeft,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysLeft < out[j].DaysLeft
	})
	return out
}

// NextDeadline returns the soonest upcoming deadline, if any. Overdue
// entries do not count as upcoming.
func NextDeadline(deadlines []report.Deadline) *report.Deadline {
	for i := range deadlines {
		if deadlines[i].DaysLeft >= 0 {
			d := deadlines[i]
			return &d
		}
	}
	return nil
}
