package rest

// generateReportRequest is the payload of POST /api/v1/reports.
type generateReportRequest struct {
	Profile       profileRequest  `json:"profile" validate:"required"`
	Answers       []answerRequest `json:"answers" validate:"max=50,dive"`
	AnnualRevenue string          `json:"annual_revenue" validate:"omitempty,number"`
	Locale        string          `json:"locale" validate:"omitempty,max=10"`
}

type profileRequest struct {
	CompanyName string `json:"company_name" validate:"required,max=200"`
	ContactName string `json:"contact_name" validate:"max=200"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"max=50"`

	CompanySize string   `json:"company_size" validate:"required,oneof=micro small medium large"`
	Sectors     []string `json:"sectors" validate:"max=20,dive,max=50"`
	DataTypes   []string `json:"data_types" validate:"max=20,dive,max=50"`
	Activities  []string `json:"activities" validate:"max=20,dive,max=50"`
	Locations   []string `json:"locations" validate:"max=20,dive,max=50"`

	// a false consent fails validation on purpose
	PrivacyConsent   bool `json:"privacy_consent" validate:"required"`
	MarketingConsent bool `json:"marketing_consent"`
}

type answerRequest struct {
	Category string `json:"category" validate:"required,max=50"`
	Level    int    `json:"level" validate:"min=0,max=3"`
}

// captureLeadRequest is the payload of POST /api/v1/leads.
type captureLeadRequest struct {
	Email            string                 `json:"email" validate:"required,email"`
	Name             string                 `json:"name" validate:"max=200"`
	Company          string                 `json:"company" validate:"max=200"`
	Phone            string                 `json:"phone" validate:"max=50"`
	Source           string                 `json:"source" validate:"required,max=50"`
	Payload          map[string]interface{} `json:"payload"`
	PrivacyConsent   bool                   `json:"privacy_consent" validate:"required"`
	MarketingConsent bool                   `json:"marketing_consent"`
}
