package report

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewReportID_Format(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	pattern := regexp.MustCompile(`^ECH-20260314-[0-9A-Z]{6}$`)

	for i := 0; i < 100; i++ {
		id := NewReportID(now)
		assert.Regexp(t, pattern, id)
	}
}

func TestNewReportID_UsesUTCDate(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	// 01:30 on the 15th in UTC+9 is still the 14th in UTC
	now := time.Date(2026, 3, 15, 1, 30, 0, 0, loc)

	id := NewReportID(now)
	assert.Contains(t, id, "ECH-20260314-")
}

func TestNewReportID_Uniqueness(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewReportID(now)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestCompanyProfile_TagLookups(t *testing.T) {
	p := CompanyProfile{
		Sectors:    []string{"IT", " health "},
		DataTypes:  []string{"personal"},
		Activities: nil,
	}

	assert.True(t, p.HasSector(SectorIT))
	assert.True(t, p.HasSector(SectorHealth))
	assert.False(t, p.HasSector(SectorEnergy))
	assert.True(t, p.HasAnySector(SectorEnergy, SectorIT))
	assert.True(t, p.HasDataType(DataPersonal))
	assert.False(t, p.HasActivity(ActivityCriticalInfra))
	assert.False(t, CompanyProfile{}.HasAnySector(SectorIT, SectorHealth))
}
