package report

import (
	"crypto/rand"
	"fmt"
	"time"
)

// ReportData is the root aggregate. It owns every derived structure by
// value plus the original profile, and is immutable after construction.
// Regenerating a report means running the pipeline again, never patching
// a stored aggregate.
type ReportData struct {
	ID          string         `json:"id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Locale      string         `json:"locale"`
	Profile     CompanyProfile `json:"profile"`

	Regulations []EvaluatedRegulation            `json:"regulations"`
	Costs       []RegulationCost                 `json:"costs"`
	Fines       []FineExposure                   `json:"fines,omitempty"`
	Maturity    MaturityResult                   `json:"maturity"`
	Deadlines   []Deadline                       `json:"deadlines"`
	Checklists  map[string][]ChecklistItemStatus `json:"checklists"`
	Risks       []CriticalRisk                   `json:"risks"`
	Roadmap     []RoadmapItem                    `json:"roadmap"`
}

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewReportID generates a report identifier of the form
// ECH-{YYYYMMDD}-{6 uppercase base36 chars}. The id doubles as the PDF
// download token; it is collision-resistant but not a secret, so the
// download endpoint additionally gates on the stored token.
func NewReportID(now time.Time) string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(fmt.Sprintf("report id entropy unavailable: %v", err))
	}
	suffix := make([]byte, 6)
	for i, b := range buf {
		suffix[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return fmt.Sprintf("ECH-%s-%s", now.UTC().Format("20060102"), suffix)
}
