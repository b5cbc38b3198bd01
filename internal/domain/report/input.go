// Package report contains the data model of the compliance report engine:
// the self-reported company profile on the input side and every derived
// structure the pipeline produces, bundled into the immutable ReportData
// aggregate.
package report

import (
	"strings"

	"github.com/echub/compliance-hub-backend/internal/domain/values"
)

// CompanyProfile is the self-reported company questionnaire. It is
// immutable once submitted and persisted verbatim alongside the generated
// report so a snapshot can be re-rendered later.
type CompanyProfile struct {
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`

	Size       values.CompanySize `json:"company_size"`
	Sectors    []string           `json:"sectors"`
	DataTypes  []string           `json:"data_types"`
	Activities []string           `json:"activities"`
	Locations  []string           `json:"locations"`

	PrivacyConsent   bool `json:"privacy_consent"`
	MarketingConsent bool `json:"marketing_consent"`
}

// Sector tags used by the regulation rule tables.
const (
	SectorIT            = "it"
	SectorHealth        = "health"
	SectorEnergy        = "energy"
	SectorFinance       = "finance"
	SectorTransport     = "transport"
	SectorManufacturing = "manufacturing"
	SectorPublic        = "public"
	SectorTelecom       = "telecom"
	SectorRetail        = "retail"
)

// Data type tags.
const (
	DataPersonal  = "personal"
	DataSensitive = "sensitive"
	DataFinancial = "financial"
	DataHealth    = "health"
	DataBiometric = "biometric"
	DataIoT       = "iot"
)

// Activity tags.
const (
	ActivityCriticalInfra = "critical-infra"
	ActivityEcommerce     = "ecommerce"
	ActivityEID           = "eid"
	ActivityAISystems     = "ai-systems"
	ActivityIoTProducts   = "iot-products"
	ActivitySoftware      = "software-products"
	ActivityPlatform      = "online-platform"
	ActivityICTFinance    = "ict-finance"
)

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(strings.TrimSpace(t), tag) {
			return true
		}
	}
	return false
}

// HasSector reports sector membership; empty sets always answer false.
func (p CompanyProfile) HasSector(sector string) bool {
	return containsTag(p.Sectors, sector)
}

// HasAnySector reports membership in any of the given sectors.
func (p CompanyProfile) HasAnySector(sectors ...string) bool {
	for _, s := range sectors {
		if p.HasSector(s) {
			return true
		}
	}
	return false
}

// HasDataType reports data-type membership.
func (p CompanyProfile) HasDataType(dataType string) bool {
	return containsTag(p.DataTypes, dataType)
}

// HasAnyDataType reports membership in any of the given data types.
func (p CompanyProfile) HasAnyDataType(dataTypes ...string) bool {
	for _, d := range dataTypes {
		if p.HasDataType(d) {
			return true
		}
	}
	return false
}

// HasActivity reports activity membership.
func (p CompanyProfile) HasActivity(activity string) bool {
	return containsTag(p.Activities, activity)
}

// HasAnyActivity reports membership in any of the given activities.
func (p CompanyProfile) HasAnyActivity(activities ...string) bool {
	for _, a := range activities {
		if p.HasActivity(a) {
			return true
		}
	}
	return false
}

// MaturityAnswer is one category-level self-assessment answer on the
// ordinal 0-3 scale, higher = more mature.
type MaturityAnswer struct {
	Category string `json:"category"`
	Level    int    `json:"level"`
}

// MaxMaturityLevel is the top of the self-assessment scale.
const MaxMaturityLevel = 3

// ReportInput is everything the caller supplies for one report request.
// AnnualRevenue is an optional decimal string in EUR; an absent or
// non-positive value omits fine exposure from the report rather than
// zeroing it.
type ReportInput struct {
	Profile       CompanyProfile   `json:"profile"`
	Answers       []MaturityAnswer `json:"answers"`
	AnnualRevenue string           `json:"annual_revenue,omitempty"`
	Locale        string           `json:"locale"`
}
